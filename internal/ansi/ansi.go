// Package ansi builds terminal escape sequences from numeric SGR parameter
// codes. Every sequence has the fixed three-parameter shape
// ESC [ attr ; bg ; fg m so output stays byte-predictable for consumers
// that post-process it.
package ansi

import (
	"fmt"
	"io"
)

// Attribute codes.
const (
	AttrReset     = "0"
	AttrBold      = "1"
	AttrFaint     = "2"
	AttrUnderline = "4"
	AttrSlowBlink = "5"
	AttrFastBlink = "6"
	AttrReverse   = "7"
)

// Foreground color codes.
const (
	FgBlack         = "30"
	FgRed           = "31"
	FgGreen         = "32"
	FgYellow        = "33"
	FgBlue          = "34"
	FgMagenta       = "35"
	FgCyan          = "36"
	FgWhite         = "37"
	FgBrightBlack   = "90"
	FgBrightRed     = "91"
	FgBrightGreen   = "92"
	FgBrightYellow  = "93"
	FgBrightBlue    = "94"
	FgBrightMagenta = "95"
	FgBrightCyan    = "96"
	FgBrightWhite   = "97"
	FgDefault       = "39"
)

// Background color codes.
const (
	BgBlack         = "40"
	BgRed           = "41"
	BgGreen         = "42"
	BgYellow        = "43"
	BgBlue          = "44"
	BgMagenta       = "45"
	BgCyan          = "46"
	BgWhite         = "47"
	BgBrightBlack   = "100"
	BgBrightRed     = "101"
	BgBrightGreen   = "102"
	BgBrightYellow  = "103"
	BgBrightBlue    = "104"
	BgBrightMagenta = "105"
	BgBrightCyan    = "106"
	BgBrightWhite   = "107"
	BgDefault       = "49"
)

// Seq is an immutable terminal styling sequence. The escape string is
// formatted once at construction and reused on every write.
type Seq struct {
	code string
}

// New builds a Seq from an attribute, background and foreground code.
func New(attr, bg, fg string) Seq {
	return Seq{code: fmt.Sprintf("\x1b[%s;%s;%sm", attr, bg, fg)}
}

// String returns the cached escape string.
func (s Seq) String() string {
	return s.code
}

// Reset returns the neutral sequence that restores the terminal's default
// attribute, background and foreground.
func Reset() Seq {
	return New(AttrReset, BgDefault, FgDefault)
}

var listFgs = [...]string{
	FgBlack, FgRed, FgGreen, FgYellow, FgBlue, FgMagenta, FgCyan, FgWhite,
	FgBrightBlack, FgBrightRed, FgBrightGreen, FgBrightYellow, FgBrightBlue,
	FgBrightMagenta, FgBrightCyan, FgBrightWhite, FgDefault,
}

var listBgs = [...]string{
	BgBlack, BgRed, BgGreen, BgYellow, BgBlue, BgMagenta, BgCyan, BgWhite,
	BgBrightBlack, BgBrightRed, BgBrightGreen, BgBrightYellow, BgBrightBlue,
	BgBrightMagenta, BgBrightCyan, BgBrightWhite, BgDefault,
}

var listAttrs = [...]string{
	AttrReset, AttrBold, AttrFaint, AttrUnderline, AttrSlowBlink,
	AttrFastBlink, AttrReverse,
}

// ListAll writes every attribute/background/foreground combination to w,
// each sample painted in its own sequence and labelled with the escape
// parameters that produce it.
func ListAll(w io.Writer) {
	reset := Reset()
	for i, bg := range listBgs {
		fmt.Fprintf(w, "\nBackground %d:\n", i)
		for _, fg := range listFgs {
			for _, at := range listAttrs {
				seq := New(at, bg, fg)
				fmt.Fprintf(w, "%s^[%s;%s;%sm%s ", seq, at, bg, fg, reset)
			}
			fmt.Fprintln(w)
		}
	}
}
