/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package components provides the TUI panels.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// -----------------------------------------------------------------------------
// Key Bindings (local to avoid import cycle)
// -----------------------------------------------------------------------------

var (
	keyUp = key.NewBinding(
		key.WithKeys("up", "k"),
	)
	keyDown = key.NewBinding(
		key.WithKeys("down", "j"),
	)
)

// -----------------------------------------------------------------------------
// Layout Helpers
// -----------------------------------------------------------------------------

// panelChrome is the border plus horizontal padding of a panel.
const panelChrome = 4

// innerSize returns the content area of a panel of the given outer size.
func innerSize(width, height int) (int, int) {
	return max(width-panelChrome, 1), max(height-2, 1)
}

// clipLines keeps at most n lines of s.
func clipLines(s string, n int) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[:max(n, 0)]
	}
	return strings.Join(lines, "\n")
}

// scrollWindow returns the [start, end) range of n items that keeps cursor
// visible in a window of size rows.
func scrollWindow(cursor, n, rows int) (int, int) {
	if rows < 1 {
		rows = 1
	}
	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	return start, min(start+rows, n)
}
