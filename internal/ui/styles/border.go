/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BuildTitledBorder returns a lipgloss.Border whose Top field carries the
// panel title, e.g.:
//
//	╭─ Devices (2) ──────────╮
//
// totalWidth is the rendered panel width including both corners.
func BuildTitledBorder(title string, totalWidth int, b lipgloss.Border) lipgloss.Border {
	innerWidth := totalWidth - lipgloss.Width(b.TopLeft) - lipgloss.Width(b.TopRight)
	if innerWidth <= 0 {
		return b
	}

	topChar := b.Top
	if topChar == "" {
		topChar = "─"
	}

	label := topChar + " " + title + " "
	if lipgloss.Width(label) > innerWidth {
		// No room for the title; keep the plain edge.
		return b
	}

	b.Top = label + strings.Repeat(topChar, innerWidth-lipgloss.Width(label))
	return b
}

// Panel frames content in a rounded border titled with title. width and
// height are the outer dimensions.
func Panel(title, content string, width, height int, focused bool) string {
	style := BasePanelStyle
	if focused {
		style = ActivePanelStyle
	}

	style = style.Border(BuildTitledBorder(title, width, lipgloss.RoundedBorder()))

	// Width and Height exclude the border.
	return style.
		Width(max(width-style.GetHorizontalBorderSize(), 0)).
		Height(max(height-style.GetVerticalBorderSize(), 0)).
		Render(content)
}
