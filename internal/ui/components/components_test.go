/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ijuttt/nvview/internal/config"
	"github.com/ijuttt/nvview/internal/model"
)

var (
	keyMsgDown = tea.KeyMsg{Type: tea.KeyDown}
	keyMsgUp   = tea.KeyMsg{Type: tea.KeyUp}
)

func loadFixture(t *testing.T) *model.Dump {
	t.Helper()
	dump, err := model.LoadDump("../../model/testdata/dump.json")
	if err != nil {
		t.Fatalf("LoadDump failed: %v", err)
	}
	return dump
}

func assertBox(t *testing.T, view string, width, height int) {
	t.Helper()
	lines := strings.Split(view, "\n")
	if len(lines) != height {
		t.Errorf("view has %d lines, want %d", len(lines), height)
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != width {
			t.Errorf("line %d is %d cells, want %d: %q", i, w, width, l)
		}
	}
}

func TestDevicePanelNavigation(t *testing.T) {
	p := NewDevicePanel()
	p.SetDump(loadFixture(t))
	p.SetSize(60, 24)

	if p.SampleCount() != 2 || p.SampleIdx() != 0 {
		t.Fatalf("SampleCount/SampleIdx = %d/%d", p.SampleCount(), p.SampleIdx())
	}

	p.Update(keyMsgDown)
	if sel := p.Selected(); sel == nil || sel.Index != 1 {
		t.Fatalf("Selected() after down = %+v", sel)
	}
	p.Update(keyMsgDown)
	if p.Selected().Index != 1 {
		t.Error("cursor moved past the last device")
	}

	// The second sample has a single device; the cursor is clamped.
	if !p.NextSample() {
		t.Fatal("NextSample() = false")
	}
	if sel := p.Selected(); sel == nil || sel.Index != 0 {
		t.Errorf("Selected() after NextSample = %+v", sel)
	}
	if p.NextSample() {
		t.Error("NextSample() past the end should be false")
	}
	if !p.PrevSample() || p.PrevSample() {
		t.Error("PrevSample() sequence wrong")
	}

	view := p.View()
	assertBox(t, view, 60, 24)
	for _, want := range []string{"Devices (2)", "Sample 1/2", "[0] NVIDIA A100", "History", "GPU"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDevicePanelEmpty(t *testing.T) {
	p := NewDevicePanel()
	p.SetSize(40, 10)
	if p.Selected() != nil || p.NextSample() || p.PrevSample() {
		t.Error("empty panel should have no selection or samples")
	}
	p.Update(keyMsgDown)
	assertBox(t, p.View(), 40, 10)
}

func TestProcessPanel(t *testing.T) {
	dump := loadFixture(t)
	p := NewProcessPanel()
	p.SetSize(90, 8)
	p.SetProcesses(0, dump.Samples[0].ProcessesOn(0))

	p.Update(keyMsgDown)
	if p.Offset() != 1 {
		t.Errorf("Offset() = %d, want 1", p.Offset())
	}
	p.Update(keyMsgDown)
	if p.Offset() != 1 {
		t.Errorf("Offset() past end = %d, want 1", p.Offset())
	}

	// Same device keeps the scroll position, another device resets it.
	p.SetProcesses(0, dump.Samples[0].ProcessesOn(0))
	if p.Offset() != 1 {
		t.Errorf("Offset() after refresh = %d, want 1", p.Offset())
	}
	p.SetProcesses(1, nil)
	if p.Offset() != 0 {
		t.Errorf("Offset() after device change = %d, want 0", p.Offset())
	}

	view := p.View()
	assertBox(t, view, 90, 8)
	if !strings.Contains(view, "No running processes found") {
		t.Errorf("view = %q", view)
	}

	p.SetProcesses(0, dump.Samples[0].ProcessesOn(0))
	p.Update(keyMsgUp)
	view = p.View()
	for _, want := range []string{"Processes on GPU 0 (2)", "alice", "Xorg"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDumpList(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	d := NewDumpList()
	d.now = func() time.Time { return now }
	d.SetSize(40, 10)
	d.SetFiles([]config.DumpFile{
		{Path: "/data/b.json", Name: "b.json", Size: 2048, ModTime: now.Add(-2 * time.Hour)},
		{Path: "/data/a.json", Name: "a.json", Size: 10, ModTime: now.Add(-3 * time.Hour)},
	})
	d.SetCurrent("/data/b.json")

	d.Update(keyMsgDown)
	if d.Selected() != "/data/a.json" {
		t.Errorf("Selected() = %q", d.Selected())
	}

	view := d.View()
	assertBox(t, view, 40, 10)
	for _, want := range []string{"Dumps (2)", "● b.json", "Size: 10 B", "Modified: 3 hours ago"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	d.SetFiles(nil)
	if d.Selected() != "" || d.FileCount() != 0 {
		t.Error("empty list should have no selection")
	}
}
