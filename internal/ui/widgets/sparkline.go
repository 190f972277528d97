/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package widgets provides reusable TUI visualization components.
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ijuttt/nvview/internal/analysis"
)

// Sparkline renders a time-series as a Unicode bar chart.
type Sparkline struct {
	Data           []float64
	Width          int
	HighlightIndex int // data index of the current sample, -1 for none
	// Min and Max pin the vertical scale when Max > Min. Otherwise the
	// data range is used.
	Min, Max       float64
	NormalColor    lipgloss.Color
	HighlightColor lipgloss.Color
}

// sparkBlocks are Unicode block elements for 8 levels of height.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// NewSparkline creates a sparkline with default styling.
func NewSparkline(data []float64, width int) Sparkline {
	return Sparkline{
		Data:           data,
		Width:          width,
		HighlightIndex: -1,
		NormalColor:    lipgloss.Color("39"),
		HighlightColor: lipgloss.Color("196"),
	}
}

// FromTimeline builds a sparkline for tl. Percentage metrics are drawn on a
// fixed 0-100 scale and the point for sampleIdx is highlighted.
func FromTimeline(tl analysis.Timeline, sampleIdx, width int) Sparkline {
	s := NewSparkline(tl.Values(), width).WithHighlight(tl.PointIndex(sampleIdx))
	if tl.MetricUnit == "%" {
		s.Min, s.Max = 0, 100
	}
	return s
}

// WithHighlight sets the index to highlight.
func (s Sparkline) WithHighlight(idx int) Sparkline {
	s.HighlightIndex = idx
	return s
}

// Levels returns the block level (0-7) of each rendered column.
func (s Sparkline) Levels() []int {
	if len(s.Data) == 0 || s.Width <= 0 {
		return nil
	}

	lo, hi := s.bounds()
	span := hi - lo
	if span == 0 {
		span = 1
	}

	samples := s.sampleData()
	levels := make([]int, len(samples))
	for i, v := range samples {
		level := int((v - lo) / span * 7)
		levels[i] = min(max(level, 0), 7)
	}
	return levels
}

// Render produces the sparkline string.
func (s Sparkline) Render() string {
	levels := s.Levels()
	if levels == nil {
		return ""
	}

	normalStyle := lipgloss.NewStyle().Foreground(s.NormalColor)
	highlightStyle := lipgloss.NewStyle().Foreground(s.HighlightColor).Bold(true)

	var b strings.Builder
	for i, level := range levels {
		char := string(sparkBlocks[level])
		if s.HighlightIndex >= 0 && s.mapSampleToData(i, len(levels)) == s.HighlightIndex {
			b.WriteString(highlightStyle.Render(char))
		} else {
			b.WriteString(normalStyle.Render(char))
		}
	}
	return b.String()
}

func (s Sparkline) bounds() (float64, float64) {
	if s.Max > s.Min {
		return s.Min, s.Max
	}
	lo, hi := s.Data[0], s.Data[0]
	for _, v := range s.Data {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// sampleData reduces data points to fit within width.
func (s Sparkline) sampleData() []float64 {
	if len(s.Data) <= s.Width {
		return s.Data
	}

	result := make([]float64, s.Width)
	ratio := float64(len(s.Data)) / float64(s.Width)
	for i := range result {
		idx := min(int(float64(i)*ratio), len(s.Data)-1)
		result[i] = s.Data[idx]
	}
	return result
}

// mapSampleToData maps a column back to its data index.
func (s Sparkline) mapSampleToData(sampleIdx, sampleCount int) int {
	if sampleCount >= len(s.Data) {
		return sampleIdx
	}
	ratio := float64(len(s.Data)) / float64(sampleCount)
	return int(float64(sampleIdx) * ratio)
}
