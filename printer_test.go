package pseudo_test

import (
	"testing"

	"github.com/benbjohnson/pseudo"
	"github.com/jedib0t/go-pretty/v6/text"
)

func TestColorPrinter(t *testing.T) {
	theme := pseudo.Theme{
		CallName: text.Colors{text.FgRed},
		Types:    text.Colors{text.FgGreen},
		Number:   text.Colors{text.FgYellow},
		Symbol:   text.Colors{text.FgBlue},
	}
	p := pseudo.NewColorPrinter(theme)

	t.Run("UnknownExpr", func(t *testing.T) {
		exp := theme.CallName.Sprint("__asm") + " (" + theme.Symbol.Sprint("cpuid") + ")"
		if s := pseudo.Unknown("cpuid").Render(p); s != exp {
			t.Fatalf("unexpected string: %q", s)
		}
	})
	t.Run("UnknownExprNumber", func(t *testing.T) {
		exp := theme.CallName.Sprint("__asm") + " (" + theme.Number.Sprint("0x90") + ")"
		if s := pseudo.Unknown("0x90").Render(p); s != exp {
			t.Fatalf("unexpected string: %q", s)
		}
	})
	t.Run("CastExpr", func(t *testing.T) {
		exp := "eax = (" + theme.Types.Sprint("int8_t") + ") al"
		if s := pseudo.NewCastExpr("eax", "al", "int8_t").Render(p); s != exp {
			t.Fatalf("unexpected string: %q", s)
		}
	})
	t.Run("BinaryExpr", func(t *testing.T) {
		if s := pseudo.Add("eax", "ebx", "ecx").Render(p); s != "eax = ebx + ecx" {
			t.Fatalf("unexpected string: %q", s)
		}
	})
	t.Run("Empty", func(t *testing.T) {
		if s := p.Auto(""); s != "" {
			t.Fatalf("unexpected string: %q", s)
		}
	})
	t.Run("NoColors", func(t *testing.T) {
		p := pseudo.NewColorPrinter(pseudo.Theme{})
		if s := pseudo.Unknown("hlt").Render(p); s != "__asm (hlt)" {
			t.Fatalf("unexpected string: %q", s)
		}
	})
}

func TestPlainPrinter(t *testing.T) {
	var p pseudo.PlainPrinter
	if s := p.CallName("__asm"); s != "__asm" {
		t.Fatalf("unexpected string: %q", s)
	} else if s := p.Auto("0x10"); s != "0x10" {
		t.Fatalf("unexpected string: %q", s)
	} else if s := p.Types("uint8_t"); s != "uint8_t" {
		t.Fatalf("unexpected string: %q", s)
	}
}

func TestIsNumber(t *testing.T) {
	for s, exp := range map[string]bool{
		"0":                  true,
		"1":                  true,
		"-1":                 true,
		"0x0":                true,
		"0xffffffffffffffff": true,
		"0b101":              true,
		"":                   false,
		"eax":                false,
		"0xzz":               false,
		"[esp + 4]":          false,
	} {
		if v := pseudo.IsNumber(s); v != exp {
			t.Fatalf("%q: got %v, expected %v", s, v, exp)
		}
	}
}
