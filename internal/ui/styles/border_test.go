/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBuildTitledBorder(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		width     int
		wantTitle bool
	}{
		{"fits", "Devices", 30, true},
		{"exact", "GPU", 9, true},
		{"too narrow", "Processes", 8, false},
		{"no room", "x", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BuildTitledBorder(tt.title, tt.width, lipgloss.RoundedBorder())
			if got := strings.Contains(b.Top, tt.title); got != tt.wantTitle {
				t.Fatalf("title present = %v, want %v (top %q)", got, tt.wantTitle, b.Top)
			}
			if tt.wantTitle {
				if w := lipgloss.Width(b.Top); w != tt.width-2 {
					t.Errorf("top edge width = %d, want %d", w, tt.width-2)
				}
			}
		})
	}
}

func TestPanelDimensions(t *testing.T) {
	out := Panel("Devices", "line one\nline two", 30, 6, true)
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("panel has %d lines, want 6", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 30 {
			t.Errorf("line %d width = %d, want 30", i, w)
		}
	}
	if !strings.Contains(lines[0], "Devices") {
		t.Errorf("top line %q lacks title", lines[0])
	}
}

func TestSeverityColor(t *testing.T) {
	tests := []struct {
		pct  float64
		want lipgloss.Color
	}{
		{10, ColorSuccess},
		{55, ColorYellow},
		{75, ColorWarning},
		{95, ColorDanger},
	}
	for _, tt := range tests {
		if got := SeverityColor(tt.pct); got != tt.want {
			t.Errorf("SeverityColor(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}
