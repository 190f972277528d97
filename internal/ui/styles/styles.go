/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package styles provides Lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ijuttt/nvview/internal/render"
)

// -----------------------------------------------------------------------------
// Color Palette
// -----------------------------------------------------------------------------

var (
	ColorPrimary   = lipgloss.Color("39")  // Deep Sky Blue
	ColorSecondary = lipgloss.Color("238") // Dark Gray (borders)
	ColorAccent    = lipgloss.Color("201") // Magenta
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorYellow    = lipgloss.Color("226") // Yellow
	ColorDanger    = lipgloss.Color("196") // Bright Red
	ColorMuted     = lipgloss.Color("60")  // Cool Gray
	ColorDarkGray  = lipgloss.Color("240") // empty bar cells

	ColorText        = lipgloss.Color("255")
	ColorTextDim     = lipgloss.Color("246")
	ColorBlack       = lipgloss.Color("16")
	ColorStatusBarBg = lipgloss.Color("235")
)

// SeverityColor maps a utilization percentage to the bar palette.
func SeverityColor(pct float64) lipgloss.Color {
	switch render.SeverityOf(pct) {
	case render.SeverityLow:
		return ColorSuccess
	case render.SeverityMedium:
		return ColorYellow
	case render.SeverityHigh:
		return ColorWarning
	default:
		return ColorDanger
	}
}

// -----------------------------------------------------------------------------
// Panel Styles
// -----------------------------------------------------------------------------

var (
	// BasePanelStyle is the foundation style for all panels.
	BasePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	// ActivePanelStyle is used for the currently focused panel.
	ActivePanelStyle = BasePanelStyle.
				BorderForeground(ColorPrimary)

	// PanelTitleStyle styles the application title.
	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)
)

// -----------------------------------------------------------------------------
// List Item Styles
// -----------------------------------------------------------------------------

var (
	// SelectedItemStyle is for the currently selected list item.
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorBlack).
				Background(ColorPrimary).
				Bold(true)

	// NormalItemStyle is for unselected list items.
	NormalItemStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// DimItemStyle is for less important items.
	DimItemStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// -----------------------------------------------------------------------------
// Data Display Styles
// -----------------------------------------------------------------------------

var (
	// LabelStyle is for field labels and bar prefixes.
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// ValueStyle is for field values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// SectionTitleStyle is for section headers within panels.
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	// EmptyBarStyle colors unavailable bars.
	EmptyBarStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	// PIDStyle is for process IDs.
	PIDStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// TableHeaderStyle is for the process table header row.
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim).
				Bold(true)
)

// -----------------------------------------------------------------------------
// Status Bar Styles
// -----------------------------------------------------------------------------

var (
	// StatusBarStyle is the main status bar style.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorStatusBarBg).
			Padding(0, 1)

	// HelpKeyStyle is for keyboard shortcut keys.
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// HelpDescStyle is for keyboard shortcut descriptions.
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// -----------------------------------------------------------------------------
// Loading & Error Styles
// -----------------------------------------------------------------------------

var (
	// LoadingStyle is for loading indicators.
	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true)

	// ErrorStyle is for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)
)
