/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ijuttt/nvview/internal/color"
	"github.com/ijuttt/nvview/internal/config"
	"github.com/ijuttt/nvview/internal/model"
	"github.com/ijuttt/nvview/internal/render"
	"github.com/ijuttt/nvview/internal/ui/styles"
)

// ProcessPanel shows the process table of one device.
type ProcessPanel struct {
	procs     []model.ProcessEntry
	device    int
	hasDevice bool
	offset    int
	userWidth int
	width     int
	height    int
	focused   bool
}

// NewProcessPanel creates an empty process panel.
func NewProcessPanel() ProcessPanel {
	return ProcessPanel{userWidth: config.DefaultNameWidth}
}

// SetProcesses replaces the table contents. The scroll position is kept
// when the device is unchanged.
func (p *ProcessPanel) SetProcesses(deviceIndex int, procs []model.ProcessEntry) {
	if !p.hasDevice || p.device != deviceIndex {
		p.offset = 0
	}
	p.device = deviceIndex
	p.hasDevice = true
	p.procs = procs
	p.offset = min(p.offset, max(len(procs)-1, 0))
}

// Clear empties the panel.
func (p *ProcessPanel) Clear() {
	p.procs = nil
	p.hasDevice = false
	p.offset = 0
}

// SetUserWidth sets the USER column width.
func (p *ProcessPanel) SetUserWidth(n int) {
	p.userWidth = n
}

// SetSize updates the component dimensions.
func (p *ProcessPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets the focus state.
func (p *ProcessPanel) SetFocused(focused bool) {
	p.focused = focused
}

// Offset returns the index of the first visible process.
func (p *ProcessPanel) Offset() int {
	return p.offset
}

// Update scrolls the table.
func (p *ProcessPanel) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keyUp):
			if p.offset > 0 {
				p.offset--
			}
		case key.Matches(msg, keyDown):
			if p.offset < len(p.procs)-1 {
				p.offset++
			}
		}
	}
	return nil
}

// View renders the panel.
func (p ProcessPanel) View() string {
	if !p.hasDevice {
		return styles.Panel("Processes", styles.DimItemStyle.Render("No device selected"), p.width, p.height, p.focused)
	}

	w, h := innerSize(p.width, p.height)
	rows := max(h-1, 1)
	end := min(p.offset+rows, len(p.procs))

	table := render.ProcessTable(p.procs[p.offset:end], w, p.userWidth, color.Passthrough{})
	lines := strings.Split(strings.TrimSuffix(table, "\n"), "\n")

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i == 0 || len(p.procs) == 0 {
			b.WriteString(styles.TableHeaderStyle.Render(line))
		} else {
			b.WriteString(styles.NormalItemStyle.Render(line))
		}
	}

	title := fmt.Sprintf("Processes on GPU %d (%d)", p.device, len(p.procs))
	if len(p.procs) > rows {
		title += fmt.Sprintf(" [%d-%d]", p.offset+1, end)
	}
	return styles.Panel(title, clipLines(b.String(), h), p.width, p.height, p.focused)
}
