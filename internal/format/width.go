/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package format provides fixed-width presentation helpers for the
// terminal views: truncation, block-glyph bars and unit humanizers.
package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cells measures terminal columns. Ambiguous-width runes (the block
// elements among them) count as one cell regardless of locale.
var cells = &runewidth.Condition{EastAsianWidth: false}

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return cells.StringWidth(s)
}

// headCells returns the longest prefix of s that fits in n cells.
func headCells(s string, n int) string {
	if n <= 0 {
		return ""
	}
	w := 0
	for i, r := range s {
		rw := cells.RuneWidth(r)
		if w+rw > n {
			return s[:i]
		}
		w += rw
	}
	return s
}

// tailCells returns the longest suffix of s that fits in n cells.
func tailCells(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	w := 0
	for i := len(runes) - 1; i >= 0; i-- {
		rw := cells.RuneWidth(runes[i])
		if w+rw > n {
			return string(runes[i+1:])
		}
		w += rw
	}
	return s
}

// FitWidth pads s with spaces or cuts it so it spans exactly width cells.
func FitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = headCells(s, width)
	if pad := width - Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
