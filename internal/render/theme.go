/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package render

import "github.com/ijuttt/nvview/internal/color"

// Severity thresholds in percent.
const (
	MediumThreshold   = 50
	HighThreshold     = 70
	CriticalThreshold = 90
)

// Severity grades a utilization reading.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// SeverityOf grades pct against the thresholds.
func SeverityOf(pct float64) Severity {
	switch {
	case pct < MediumThreshold:
		return SeverityLow
	case pct < HighThreshold:
		return SeverityMedium
	case pct < CriticalThreshold:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

// Color is the terminal color for the severity. There is no orange in the
// basic palette, so high is bold yellow.
func (s Severity) Color() (color.Color, []color.Attr) {
	switch s {
	case SeverityLow:
		return color.Green, nil
	case SeverityMedium:
		return color.Yellow, nil
	case SeverityHigh:
		return color.Yellow, []color.Attr{color.Bold}
	default:
		return color.Red, []color.Attr{color.Bold}
	}
}
