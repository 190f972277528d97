/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ijuttt/nvview/internal/analysis"
	"github.com/ijuttt/nvview/internal/format"
	"github.com/ijuttt/nvview/internal/model"
	"github.com/ijuttt/nvview/internal/ui/styles"
	"github.com/ijuttt/nvview/internal/ui/widgets"
)

const (
	// linesPerDevice is the name line plus the GPU and MEM bars.
	linesPerDevice = 3

	// sparkLabelWidth fits "Power " in front of a history sparkline.
	sparkLabelWidth = 6

	// sparkValueWidth fits " 100%" or " 400W" after a sparkline.
	sparkValueWidth = 6

	// maxDots is the sample count up to which progress is drawn as dots.
	maxDots = 10
)

// DevicePanel lists the GPUs of the current sample with utilization bars
// and the history of the selected one.
type DevicePanel struct {
	dump      *model.Dump
	sampleIdx int
	cursor    int
	width     int
	height    int
	focused   bool
	metrics   []analysis.Metric
}

// NewDevicePanel creates an empty device panel.
func NewDevicePanel() DevicePanel {
	return DevicePanel{metrics: analysis.DefaultMetrics()}
}

// SetDump shows dump starting at its first sample.
func (p *DevicePanel) SetDump(dump *model.Dump) {
	p.dump = dump
	p.sampleIdx = 0
	p.clampCursor()
}

// Dump returns the displayed dump.
func (p *DevicePanel) Dump() *model.Dump {
	return p.dump
}

// SetSize updates the component dimensions.
func (p *DevicePanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets the focus state.
func (p *DevicePanel) SetFocused(focused bool) {
	p.focused = focused
}

// SampleIdx returns the index of the displayed sample.
func (p *DevicePanel) SampleIdx() int {
	return p.sampleIdx
}

// SampleCount returns the number of samples in the dump.
func (p *DevicePanel) SampleCount() int {
	if p.dump == nil {
		return 0
	}
	return len(p.dump.Samples)
}

// Sample returns the displayed sample, or nil.
func (p *DevicePanel) Sample() *model.Sample {
	if p.sampleIdx < 0 || p.sampleIdx >= p.SampleCount() {
		return nil
	}
	return &p.dump.Samples[p.sampleIdx]
}

// Selected returns the device under the cursor, or nil.
func (p *DevicePanel) Selected() *model.DeviceEntry {
	s := p.Sample()
	if s == nil || p.cursor >= len(s.Devices) {
		return nil
	}
	return &s.Devices[p.cursor]
}

// NextSample advances one sample. It reports whether the sample changed.
func (p *DevicePanel) NextSample() bool {
	if p.sampleIdx+1 >= p.SampleCount() {
		return false
	}
	p.sampleIdx++
	p.clampCursor()
	return true
}

// PrevSample steps back one sample. It reports whether the sample changed.
func (p *DevicePanel) PrevSample() bool {
	if p.sampleIdx == 0 || p.SampleCount() == 0 {
		return false
	}
	p.sampleIdx--
	p.clampCursor()
	return true
}

// Update handles device selection.
func (p *DevicePanel) Update(msg tea.Msg) tea.Cmd {
	s := p.Sample()
	if s == nil {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keyUp):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, keyDown):
			if p.cursor < len(s.Devices)-1 {
				p.cursor++
			}
		}
	}
	return nil
}

func (p *DevicePanel) clampCursor() {
	n := 0
	if s := p.Sample(); s != nil {
		n = len(s.Devices)
	}
	p.cursor = min(max(p.cursor, 0), max(n-1, 0))
}

// View renders the panel.
func (p DevicePanel) View() string {
	s := p.Sample()
	if s == nil {
		return styles.Panel("Devices", styles.DimItemStyle.Render("Select a dump to view devices"), p.width, p.height, p.focused)
	}

	w, h := innerSize(p.width, p.height)
	var b strings.Builder

	b.WriteString(p.renderSampleNav())
	b.WriteString("\n\n")

	historyLines := 0
	if len(p.dump.Samples) > 1 {
		historyLines = len(p.metrics) + 2
	}
	rows := max((h-2-historyLines)/linesPerDevice, 1)
	start, end := scrollWindow(p.cursor, len(s.Devices), rows)

	if len(s.Devices) == 0 {
		b.WriteString(styles.DimItemStyle.Render("No devices in this sample"))
	}
	for i := start; i < end; i++ {
		b.WriteString(p.renderDevice(&s.Devices[i], i == p.cursor, w))
	}

	if historyLines > 0 {
		if dev := p.Selected(); dev != nil {
			b.WriteByte('\n')
			b.WriteString(p.renderHistory(dev, w))
		}
	}

	title := fmt.Sprintf("Devices (%d)", len(s.Devices))
	return styles.Panel(title, clipLines(b.String(), h), p.width, p.height, p.focused)
}

func (p DevicePanel) renderDevice(d *model.DeviceEntry, selected bool, width int) string {
	var b strings.Builder

	name := format.FitWidth(format.CutString(fmt.Sprintf("[%d] %s", d.Index, d.DisplayName()), width), width)
	if selected {
		b.WriteString(styles.SelectedItemStyle.Render(name))
	} else {
		b.WriteString(styles.NormalItemStyle.Render(name))
	}
	b.WriteByte('\n')

	b.WriteString(widgets.NewProgressBar("GPU", d.GPUUtil, width).Render())
	b.WriteByte('\n')
	b.WriteString(widgets.NewProgressBar("MEM", d.MemoryPercent(), width).Render())
	b.WriteByte('\n')
	return b.String()
}

// renderHistory draws one sparkline per metric for d, followed by the
// current reading.
func (p DevicePanel) renderHistory(d *model.DeviceEntry, width int) string {
	var b strings.Builder
	b.WriteString(styles.SectionTitleStyle.Render("History"))

	sparkWidth := max(width-sparkLabelWidth-sparkValueWidth, 1)
	for _, m := range p.metrics {
		b.WriteByte('\n')
		b.WriteString(styles.LabelStyle.Render(format.FitWidth(m.Name(), sparkLabelWidth)))

		tl := analysis.BuildTimeline(p.dump, d.Index, m)
		if len(tl.Points) == 0 {
			b.WriteString(styles.DimItemStyle.Render(format.NA))
			continue
		}
		b.WriteString(widgets.FromTimeline(tl, p.sampleIdx, sparkWidth).Render())
		b.WriteString(styles.ValueStyle.Render(" " + metricLabel(d, m)))
	}
	return b.String()
}

// renderSampleNav shows the sample position with progress dots.
func (p DevicePanel) renderSampleNav() string {
	var b strings.Builder
	count := len(p.dump.Samples)

	b.WriteString(styles.LabelStyle.Render("Sample "))
	b.WriteString(styles.ValueStyle.Render(fmt.Sprintf("%d/%d ", p.sampleIdx+1, count)))

	if count <= maxDots {
		for i := 0; i < count; i++ {
			if i <= p.sampleIdx {
				b.WriteString(styles.LabelStyle.Render("●"))
			} else {
				b.WriteString(styles.DimItemStyle.Render("○"))
			}
		}
	} else {
		pct := float64(p.sampleIdx+1) / float64(count) * 100
		b.WriteString(styles.DimItemStyle.Render(fmt.Sprintf("(%.0f%%)", pct)))
	}

	if t := p.dump.Samples[p.sampleIdx].Time(); !t.IsZero() {
		b.WriteString(styles.DimItemStyle.Render("  " + t.Format("15:04:05")))
	}
	return b.String()
}

// metricLabel formats d's current reading for m, e.g. "35%" or "118W".
func metricLabel(d *model.DeviceEntry, m analysis.Metric) string {
	v, ok := m.Extract(d)
	if !ok {
		return format.NA
	}
	return fmt.Sprintf("%.0f%s", v, m.Unit())
}
