/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ijuttt/nvview/internal/format"
	"github.com/ijuttt/nvview/internal/snapshot"
	"github.com/ijuttt/nvview/internal/ui/styles"
)

// ProgressBar renders a "GPU: ████▌ 56%" bar colored by severity.
type ProgressBar struct {
	Prefix     string
	Value      snapshot.Value // percent, may be N/A
	Width      int
	LabelStyle lipgloss.Style
	EmptyStyle lipgloss.Style
}

// NewProgressBar creates a progress bar with default styling.
func NewProgressBar(prefix string, value snapshot.Value, width int) ProgressBar {
	return ProgressBar{
		Prefix:     prefix,
		Value:      value,
		Width:      width,
		LabelStyle: styles.LabelStyle,
		EmptyStyle: styles.EmptyBarStyle,
	}
}

// Render produces the bar. The visible width is exactly p.Width cells.
func (p ProgressBar) Render() string {
	if p.Width <= 0 {
		return ""
	}

	value := p.Value
	if value.IsNil() {
		value = snapshot.NA()
	}
	bar, err := format.MakeBar(p.Prefix, value, p.Width)
	if err != nil {
		value = snapshot.NA()
		bar, _ = format.MakeBar(p.Prefix, value, p.Width)
	}

	label := p.Prefix + ": "
	if !strings.HasPrefix(bar, label) {
		// Too narrow for anything past the label.
		return p.LabelStyle.Render(bar)
	}
	body := bar[len(label):]

	pct, ok := value.Float64()
	if !ok {
		return p.LabelStyle.Render(label) + p.EmptyStyle.Render(body)
	}
	fill := lipgloss.NewStyle().Foreground(styles.SeverityColor(pct))
	return p.LabelStyle.Render(label) + fill.Render(body)
}
