/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/ijuttt/nvview/internal/snapshot"
)

func TestMakeBar(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		percent any
		width   int
		want    string
	}{
		{
			name:    "full renders MAX",
			prefix:  "GPU",
			percent: 100,
			width:   20,
			want:    "GPU: ███████████ MAX",
		},
		{
			name:    "zero still shows a sliver",
			prefix:  "GPU",
			percent: 0,
			width:   20,
			want:    "GPU: ▏ 0%" + strings.Repeat(" ", 11),
		},
		{
			name:    "half with partial block",
			prefix:  "MEM",
			percent: 50,
			width:   20,
			// 11 cells * 0.5 = 44 eighths -> 5 full + 4/8
			want: "MEM: █████▌ 50%" + strings.Repeat(" ", 5),
		},
		{
			name:    "string with percent sign",
			prefix:  "MEM",
			percent: "50%",
			width:   20,
			want:    "MEM: █████▌ 50%" + strings.Repeat(" ", 5),
		},
		{
			name:    "float truncates label",
			prefix:  "GPU",
			percent: 99.9,
			width:   20,
			want:    "GPU: ██████████▉ 99%",
		},
		{
			name:    "not available",
			prefix:  "GPU",
			percent: "N/A",
			width:   20,
			want:    "GPU: " + strings.Repeat("░", 11) + " N/A",
		},
		{
			name:    "value not available",
			prefix:  "GPU",
			percent: snapshot.NA(),
			width:   20,
			want:    "GPU: " + strings.Repeat("░", 11) + " N/A",
		},
		{
			name:    "over 100 clamps glyphs and keeps the label",
			prefix:  "GPU",
			percent: 150,
			width:   20,
			want:    "GPU: ██████████ 150%",
		},
		{
			name:    "negative fraction draws a sliver",
			prefix:  "GPU",
			percent: -5,
			width:   20,
			want:    "GPU: ▏ -5%" + strings.Repeat(" ", 10),
		},
		{
			name:    "small negative truncates to zero",
			prefix:  "GPU",
			percent: -0.4,
			width:   20,
			want:    "GPU: ▏ 0%" + strings.Repeat(" ", 11),
		},
		{
			name:    "huge value keeps its sign",
			prefix:  "GPU",
			percent: 1e30,
			width:   20,
			want:    "GPU: ▏ 1000000000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MakeBar(tt.prefix, tt.percent, tt.width)
			if err != nil {
				t.Fatalf("MakeBar() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MakeBar(%q, %v, %d) = %q, want %q", tt.prefix, tt.percent, tt.width, got, tt.want)
			}
		})
	}
}

func TestMakeBarWidthInvariant(t *testing.T) {
	percents := []any{"N/A", 0, 1, 12.5, 33, "67%", 99, 100, snapshot.Float(42.0)}
	for width := 1; width <= 200; width++ {
		for _, p := range percents {
			got, err := MakeBar("GPU 0", p, width)
			if err != nil {
				t.Fatalf("MakeBar(%v, %d) error: %v", p, width, err)
			}
			if w := Width(got); w != width {
				t.Errorf("MakeBar(%v, %d) width = %d: %q", p, width, w, got)
			}
		}
	}
}

func TestMakeBarAlwaysShowsGlyph(t *testing.T) {
	got, err := MakeBar("GPU", 0, 20)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.ContainsAny(got, FullBlock+string(BlockChars[1:])) {
		t.Errorf("MakeBar(0%%) = %q, want at least one block glyph", got)
	}
}

func TestMakeBarMaxToken(t *testing.T) {
	got, _ := MakeBar("GPU", 100, 20)
	if !strings.Contains(got, "MAX") || strings.Contains(got, "100%") {
		t.Errorf("MakeBar(100) = %q, want MAX instead of 100%%", got)
	}
}

func TestMakeBarRejectsGarbage(t *testing.T) {
	for _, p := range []any{"lots", "", nil, snapshot.Bool(true)} {
		if _, err := MakeBar("GPU", p, 20); !errors.Is(err, ErrInvalidPercent) {
			t.Errorf("MakeBar(%v) error = %v, want ErrInvalidPercent", p, err)
		}
	}
}
