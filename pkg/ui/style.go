package ui

import (
	"strconv"
	"strings"
)

// Color is a terminal color, identified by its SGR foreground code. The
// background code is derived by adding 10.
type Color int

// Basic and bright colors.
const (
	Default  Color = 0
	Black    Color = 30
	Red      Color = 31
	Green    Color = 32
	Yellow   Color = 33
	Blue     Color = 34
	Magenta  Color = 35
	Cyan     Color = 36
	White    Color = 37
	DarkGrey Color = 90
)

// Style specifies how something should be shown on the terminal.
type Style struct {
	Fg, Bg  Color
	Bold    bool
	Inverse bool
}

// SGR returns the SGR sequence (without the leading "\033[" and the trailing
// "m") for the style. The zero Style gives an empty string.
func (s Style) SGR() string {
	var codes []string
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Inverse {
		codes = append(codes, "7")
	}
	if s.Fg != Default {
		codes = append(codes, strconv.Itoa(int(s.Fg)))
	}
	if s.Bg != Default {
		codes = append(codes, strconv.Itoa(int(s.Bg)+10))
	}
	return strings.Join(codes, ";")
}
