/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ijuttt/nvview/internal/snapshot"
)

// Glyphs shared with the terminal renderer.
const (
	FullBlock  = "█"
	LightShade = "░"
)

// BlockChars is the eighth-cell ramp: index n draws n/8 of a cell.
var BlockChars = []rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉'}

// barReserve is the space taken by " NN%" after the glyph run.
const barReserve = 4

var ErrInvalidPercent = errors.New("invalid percentage")

// MakeBar renders "prefix: ████▌ 56%" left-justified to exactly width cells.
// percent may be a number, a numeric string with an optional trailing "%",
// a snapshot.Value, or "N/A". At least one eighth of a cell is always
// drawn, so 0% still shows a sliver. Exactly 100% is written as MAX.
// Labels wider than three cells, such as 150%, shorten the glyph run so
// the label stays whole. Only a label wider than the bar itself is cut.
func MakeBar(prefix string, percent any, width int) (string, error) {
	label := prefix + ": "

	pct, na, err := ParsePercent(percent)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(label)

	if na {
		cellsAvail := width - Width(label) - barReserve
		if cellsAvail > 0 {
			b.WriteString(strings.Repeat(LightShade, cellsAvail))
		}
		b.WriteString(" " + NA)
		return FitWidth(b.String(), width), nil
	}

	text := percentLabel(pct)
	cellsAvail := width - Width(label) - max(barReserve, 1+Width(text))
	fraction := math.Min(math.Max(pct/100, 0), 1)
	units := int(math.Floor(8 * float64(cellsAvail) * fraction))
	if units < 1 {
		units = 1
	}
	quotient, remainder := units/8, units%8
	b.WriteString(strings.Repeat(FullBlock, quotient))
	if remainder > 0 {
		b.WriteRune(BlockChars[remainder])
	}

	b.WriteByte(' ')
	b.WriteString(text)
	return FitWidth(b.String(), width), nil
}

// percentLabel truncates toward zero without going through int64, so
// huge inputs keep their sign and digits.
func percentLabel(pct float64) string {
	n := math.Trunc(pct)
	if n == 100 {
		return "MAX"
	}
	if n == 0 {
		n = 0 // drops the sign of -0.4
	}
	return strconv.FormatFloat(n, 'f', 0, 64) + "%"
}

// ParsePercent reads a percentage. na is true for the "N/A" sentinel.
func ParsePercent(v any) (pct float64, na bool, err error) {
	switch x := v.(type) {
	case snapshot.Value:
		if x.IsNA() {
			return 0, true, nil
		}
		if f, ok := x.Float64(); ok {
			return f, false, nil
		}
		if s, ok := x.Str(); ok {
			return ParsePercent(s)
		}
		return 0, false, fmt.Errorf("%w: %s", ErrInvalidPercent, x.Repr())
	case string:
		if x == NA {
			return 0, true, nil
		}
		s := strings.TrimSuffix(strings.TrimSpace(x), "%")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false, fmt.Errorf("%w: %q", ErrInvalidPercent, x)
		}
		return f, false, nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false, fmt.Errorf("%w: %v", ErrInvalidPercent, x)
		}
		return x, false, nil
	case float32:
		return ParsePercent(float64(x))
	}

	if n, ok := toInt64(v); ok {
		return float64(n), false, nil
	}
	return 0, false, fmt.Errorf("%w: %v (%T)", ErrInvalidPercent, v, v)
}
