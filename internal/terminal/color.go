package terminal

import "github.com/fatih/color"

// Color names the closed set of text colors the game can ask for.
// BBS-era content leans on the bright variants, so both intensities of
// the classic eight are available.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

const sgrReset = "\x1b[0m"

// sgrCodes are the literal ANSI SGR sequences written into the byte
// stream in escape-code mode.
var sgrCodes = map[Color]string{
	ColorBlack:         "\x1b[30m",
	ColorRed:           "\x1b[31m",
	ColorGreen:         "\x1b[32m",
	ColorYellow:        "\x1b[33m",
	ColorBlue:          "\x1b[34m",
	ColorMagenta:       "\x1b[35m",
	ColorCyan:          "\x1b[36m",
	ColorWhite:         "\x1b[37m",
	ColorBrightRed:     "\x1b[1;31m",
	ColorBrightGreen:   "\x1b[1;32m",
	ColorBrightYellow:  "\x1b[1;33m",
	ColorBrightBlue:    "\x1b[1;34m",
	ColorBrightMagenta: "\x1b[1;35m",
	ColorBrightCyan:    "\x1b[1;36m",
	ColorBrightWhite:   "\x1b[1;37m",
}

// nativeColors drive the hosting console's own color machinery in
// native mode (github.com/fatih/color routes through go-colorable,
// which issues console API calls where escape codes would not render).
var nativeColors = map[Color]*color.Color{
	ColorBlack:         color.New(color.FgBlack),
	ColorRed:           color.New(color.FgRed),
	ColorGreen:         color.New(color.FgGreen),
	ColorYellow:        color.New(color.FgYellow),
	ColorBlue:          color.New(color.FgBlue),
	ColorMagenta:       color.New(color.FgMagenta),
	ColorCyan:          color.New(color.FgCyan),
	ColorWhite:         color.New(color.FgWhite),
	ColorBrightRed:     color.New(color.FgHiRed),
	ColorBrightGreen:   color.New(color.FgHiGreen),
	ColorBrightYellow:  color.New(color.FgHiYellow),
	ColorBrightBlue:    color.New(color.FgHiBlue),
	ColorBrightMagenta: color.New(color.FgHiMagenta),
	ColorBrightCyan:    color.New(color.FgHiCyan),
	ColorBrightWhite:   color.New(color.FgHiWhite),
}

// sgr returns the escape sequence for c, or "" for the default color.
func (c Color) sgr() string { return sgrCodes[c] }

// native returns the console color for c, or nil for the default.
func (c Color) native() *color.Color { return nativeColors[c] }
