package pseudo

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Printer decorates tokens while rendering expressions.
type Printer interface {
	// CallName decorates a function-like name such as "__asm".
	CallName(s string) string

	// Auto decorates arbitrary text that may be a literal or a symbol.
	Auto(s string) string

	// Types decorates a type name used in a cast.
	Types(s string) string
}

// PlainPrinter renders all tokens without decoration.
type PlainPrinter struct{}

func (PlainPrinter) CallName(s string) string { return s }
func (PlainPrinter) Auto(s string) string     { return s }
func (PlainPrinter) Types(s string) string    { return s }

// Theme holds the terminal colors for each token class.
type Theme struct {
	CallName text.Colors
	Types    text.Colors
	Number   text.Colors
	Symbol   text.Colors
}

// DefaultTheme is the theme used by the command line tool.
var DefaultTheme = Theme{
	CallName: text.Colors{text.FgHiGreen},
	Types:    text.Colors{text.FgHiCyan},
	Number:   text.Colors{text.FgHiYellow},
	Symbol:   text.Colors{text.FgHiBlue},
}

// ColorPrinter decorates tokens with ANSI colors from a theme.
type ColorPrinter struct {
	Theme Theme
}

// NewColorPrinter returns a new instance of ColorPrinter.
func NewColorPrinter(theme Theme) *ColorPrinter {
	return &ColorPrinter{Theme: theme}
}

// CallName decorates s as a call name.
func (p *ColorPrinter) CallName(s string) string { return colorize(p.Theme.CallName, s) }

// Types decorates s as a type name.
func (p *ColorPrinter) Types(s string) string { return colorize(p.Theme.Types, s) }

// Auto decorates s as a number if it is an integer literal and as a symbol otherwise.
func (p *ColorPrinter) Auto(s string) string {
	if IsNumber(s) {
		return colorize(p.Theme.Number, s)
	}
	return colorize(p.Theme.Symbol, s)
}

// colorize returns s wrapped in colors. Empty strings and empty color sets
// are returned as-is.
func colorize(colors text.Colors, s string) string {
	if s == "" || len(colors) == 0 {
		return s
	}
	return colors.Sprint(s)
}

// IsNumber returns true if s is a decimal, hex, octal or binary integer literal.
func IsNumber(s string) bool {
	if _, err := strconv.ParseInt(s, 0, 64); err == nil {
		return true
	} else if _, err := strconv.ParseUint(s, 0, 64); err == nil {
		return true
	}
	return false
}
