/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package color decides once, at startup, whether output gets ANSI colors.
// Callers receive a Colorizer and never probe the terminal themselves.
package color

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color is one of the eight basic terminal colors.
type Color int

const (
	None Color = iota - 1
	Grey
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = map[string]Color{
	"grey":    Grey,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
}

// ParseColor resolves a color name such as "red". An empty name is None.
func ParseColor(name string) (Color, error) {
	if name == "" {
		return None, nil
	}
	if c, ok := colorNames[name]; ok {
		return c, nil
	}
	return None, fmt.Errorf("unknown color %q", name)
}

// Attr is a text attribute.
type Attr int

const (
	Bold Attr = iota
	Dark
	Underline
	Blink
	Reverse
	Concealed
)

// Colorizer wraps text in color, or not.
type Colorizer interface {
	Colored(text string, fg Color, attrs ...Attr) string
	ColoredOn(text string, fg, bg Color, attrs ...Attr) string
	Enabled() bool
}

// Passthrough returns text unchanged.
type Passthrough struct{}

func (Passthrough) Colored(text string, _ Color, _ ...Attr) string { return text }
func (Passthrough) ColoredOn(text string, _, _ Color, _ ...Attr) string { return text }
func (Passthrough) Enabled() bool { return false }

// ANSI renders escape sequences through lipgloss, pinned to the 16-color
// ANSI profile so the output does not depend on the terminal it lands in.
type ANSI struct {
	r *lipgloss.Renderer
}

// NewANSI creates an ANSI colorizer writing for w.
func NewANSI(w io.Writer) *ANSI {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return &ANSI{r: r}
}

func (a *ANSI) Colored(text string, fg Color, attrs ...Attr) string {
	return a.ColoredOn(text, fg, None, attrs...)
}

func (a *ANSI) ColoredOn(text string, fg, bg Color, attrs ...Attr) string {
	style := a.r.NewStyle()
	if fg != None {
		style = style.Foreground(ansiColor(fg))
	}
	if bg != None {
		style = style.Background(ansiColor(bg))
	}
	for _, attr := range attrs {
		switch attr {
		case Bold:
			style = style.Bold(true)
		case Dark:
			style = style.Faint(true)
		case Underline:
			style = style.Underline(true)
		case Blink:
			style = style.Blink(true)
		case Reverse:
			style = style.Reverse(true)
		case Concealed:
			// lipgloss has no conceal; hide by matching fg to bg.
			if bg != None {
				style = style.Foreground(ansiColor(bg))
			}
		}
	}
	return style.Render(text)
}

func (a *ANSI) Enabled() bool { return true }

// ansiColor maps to ANSI indexes 0-7; grey is the bright black slot.
func ansiColor(c Color) lipgloss.Color {
	if c == Grey {
		return lipgloss.Color("8")
	}
	return lipgloss.Color(fmt.Sprintf("%d", int(c)))
}

// -----------------------------------------------------------------------------
// Detection
// -----------------------------------------------------------------------------

// Mode is the user's color preference.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode validates a --color flag value.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAuto, ModeAlways, ModeNever:
		return m, nil
	case "":
		return ModeAuto, nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Detect picks the Colorizer for f. In auto mode colors are used only when
// f is an interactive terminal.
func Detect(f *os.File, mode Mode) Colorizer {
	switch mode {
	case ModeAlways:
		return NewANSI(f)
	case ModeNever:
		return Passthrough{}
	}
	if f != nil && IsTerminal(f.Fd()) {
		return NewANSI(f)
	}
	return Passthrough{}
}

// IsTerminal reports whether fd is a TTY, including Cygwin/MSYS ptys.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
