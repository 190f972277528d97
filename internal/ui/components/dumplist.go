/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/ijuttt/nvview/internal/config"
	"github.com/ijuttt/nvview/internal/format"
	"github.com/ijuttt/nvview/internal/ui/styles"
)

// DumpList is a browser over the discovered dump files.
type DumpList struct {
	files   []config.DumpFile
	cursor  int
	current string // path of the loaded dump
	width   int
	height  int
	focused bool
	now     func() time.Time
}

// NewDumpList creates an empty dump browser.
func NewDumpList() DumpList {
	return DumpList{now: time.Now}
}

// SetFiles updates the file list, keeping the cursor in range.
func (d *DumpList) SetFiles(files []config.DumpFile) {
	d.files = files
	if d.cursor >= len(files) {
		d.cursor = max(0, len(files)-1)
	}
}

// SetCurrent marks path as the loaded dump.
func (d *DumpList) SetCurrent(path string) {
	d.current = path
}

// SetSize updates the component dimensions.
func (d *DumpList) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetFocused sets the focus state.
func (d *DumpList) SetFocused(focused bool) {
	d.focused = focused
}

// Selected returns the path under the cursor, or "".
func (d *DumpList) Selected() string {
	if d.cursor >= 0 && d.cursor < len(d.files) {
		return d.files[d.cursor].Path
	}
	return ""
}

// FileCount returns the number of listed dumps.
func (d *DumpList) FileCount() int {
	return len(d.files)
}

// Update handles cursor movement.
func (d *DumpList) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keyUp):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keyDown):
			if d.cursor < len(d.files)-1 {
				d.cursor++
			}
		}
	}
	return nil
}

// View renders the dump list with details of the selected file.
func (d DumpList) View() string {
	w, h := innerSize(d.width, d.height)
	title := fmt.Sprintf("Dumps (%d)", len(d.files))

	if len(d.files) == 0 {
		return styles.Panel(title, styles.DimItemStyle.Render("No dumps found"), d.width, d.height, d.focused)
	}

	// Two detail lines plus a separator sit under the list.
	rows := max(h-3, 1)
	start, end := scrollWindow(d.cursor, len(d.files), rows)

	var b strings.Builder
	for i := start; i < end; i++ {
		f := d.files[i]
		marker := "  "
		if f.Path == d.current {
			marker = "● "
		}
		name := format.FitWidth(marker+format.CutString(f.Name, w-2), w)

		if i == d.cursor {
			b.WriteString(styles.SelectedItemStyle.Render(name))
		} else {
			b.WriteString(styles.NormalItemStyle.Render(name))
		}
		b.WriteByte('\n')
	}

	sel := d.files[d.cursor]
	b.WriteByte('\n')
	b.WriteString(styles.DimItemStyle.Render(format.CutString("Size: "+humanize.IBytes(uint64(max(sel.Size, 0))), w)))
	b.WriteByte('\n')
	b.WriteString(styles.DimItemStyle.Render(format.CutString("Modified: "+humanize.RelTime(sel.ModTime, d.now(), "ago", "from now"), w)))

	return styles.Panel(title, clipLines(b.String(), h), d.width, d.height, d.focused)
}
