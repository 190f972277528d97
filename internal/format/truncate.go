/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package format

import (
	"errors"
	"fmt"
)

// Align selects which end of a string survives truncation.
type Align string

const (
	AlignLeft  Align = "left"
	AlignRight Align = "right"
)

// DefaultPad marks the side where text was cut.
const DefaultPad = "..."

var ErrInvalidAlign = errors.New("align must be left or right")

// ParseAlign converts a flag value into an Align.
func ParseAlign(s string) (Align, error) {
	switch a := Align(s); a {
	case AlignLeft, AlignRight:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAlign, s)
}

// CutString truncates v to at most maxLen cells, keeping the head and
// appending "...".
func CutString(v any, maxLen int) string {
	s, _ := CutStringWith(v, maxLen, DefaultPad, AlignLeft)
	return s
}

// CutStringWith truncates v to at most maxLen cells. Text that already fits
// is returned unchanged. AlignLeft keeps the head and appends pad,
// AlignRight keeps the tail and prepends pad. When maxLen is narrower than
// pad, the pad itself is cut so the result never exceeds maxLen.
func CutStringWith(v any, maxLen int, pad string, align Align) (string, error) {
	if align != AlignLeft && align != AlignRight {
		return "", fmt.Errorf("%w: %q", ErrInvalidAlign, string(align))
	}

	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}

	if Width(s) <= maxLen {
		return s, nil
	}
	if maxLen <= 0 {
		return "", nil
	}

	keep := maxLen - Width(pad)
	if keep <= 0 {
		if align == AlignLeft {
			return headCells(pad, maxLen), nil
		}
		return tailCells(pad, maxLen), nil
	}

	if align == AlignLeft {
		return headCells(s, keep) + pad, nil
	}
	return pad + tailCells(s, keep), nil
}
