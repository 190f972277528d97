/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ijuttt/nvview/internal/snapshot"
)

// NA is the "value unavailable" sentinel passed through by the formatters.
const NA = snapshot.NotAvailable

const (
	kib = 1 << 10
	mib = 1 << 20

	secondsPerDay = 86400
	// humanDaysThreshold switches duration output to fractional days.
	humanDaysThreshold = 4
)

var (
	ErrNotInteger  = errors.New("not an integer byte count")
	ErrNotDuration = errors.New("not a duration")
)

// Bytes renders n with binary prefixes: 512B, 2KiB, 3MiB. There is no
// unit above MiB; larger values keep counting in MiB.
func Bytes(n int64) string {
	switch {
	case n < kib:
		return strconv.FormatInt(n, 10) + "B"
	case n < mib:
		return strconv.FormatInt(n>>10, 10) + "KiB"
	}
	return strconv.FormatInt(n>>20, 10) + "MiB"
}

// BytesToHuman is Bytes for loosely typed input. "N/A" passes through.
// Floats are truncated and decimal strings are parsed.
func BytesToHuman(v any) (string, error) {
	switch x := v.(type) {
	case string:
		if x == NA {
			return x, nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrNotInteger, x)
		}
		return Bytes(n), nil
	case snapshot.Value:
		if x.IsNA() {
			return NA, nil
		}
		if s, ok := x.Str(); ok {
			return BytesToHuman(s)
		}
		n, ok := x.Int64()
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrNotInteger, x.Repr())
		}
		return Bytes(n), nil
	case float64:
		n, ok := snapshot.Float(x).Int64()
		if !ok {
			return "", fmt.Errorf("%w: %v", ErrNotInteger, x)
		}
		return Bytes(n), nil
	case float32:
		return BytesToHuman(float64(x))
	}

	n, ok := toInt64(v)
	if !ok {
		return "", fmt.Errorf("%w: %v (%T)", ErrNotInteger, v, v)
	}
	return Bytes(n), nil
}

// Duration renders d as "5.0 days" from four days up, otherwise H:MM:SS
// or M:SS. Sub-second precision is dropped.
func Duration(d time.Duration) string {
	sign := ""
	total := int64(d / time.Second)
	if d < 0 {
		// Negating the seconds rather than d keeps math.MinInt64 in range.
		sign = "-"
		total = -total
	}

	days, seconds := total/secondsPerDay, total%secondsPerDay
	if days >= humanDaysThreshold {
		return fmt.Sprintf("%s%.1f days", sign, float64(days)+float64(seconds)/secondsPerDay)
	}

	hours, rest := total/3600, total%3600
	if hours > 0 {
		return fmt.Sprintf("%s%d:%02d:%02d", sign, hours, rest/60, rest%60)
	}
	return fmt.Sprintf("%s%d:%02d", sign, rest/60, rest%60)
}

// TimedeltaToHuman is Duration for loosely typed input. "N/A" passes
// through. Numeric snapshot values are taken as seconds.
func TimedeltaToHuman(v any) (string, error) {
	switch x := v.(type) {
	case time.Duration:
		return Duration(x), nil
	case string:
		if x == NA {
			return x, nil
		}
		d, err := time.ParseDuration(x)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrNotDuration, x)
		}
		return Duration(d), nil
	case snapshot.Value:
		if x.IsNA() {
			return NA, nil
		}
		d, ok := x.AsDuration()
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrNotDuration, x.Repr())
		}
		return Duration(d), nil
	}
	return "", fmt.Errorf("%w: %v (%T)", ErrNotDuration, v, v)
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return toInt64(uint64(x))
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	}
	return 0, false
}
