package pseudo_test

import (
	"testing"

	"github.com/benbjohnson/pseudo"
	"github.com/google/go-cmp/cmp"
)

func TestListing(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		l := pseudo.NewListing()
		if n := l.Len(); n != 0 {
			t.Fatalf("unexpected len: %d", n)
		} else if s := l.String(); s != "" {
			t.Fatalf("unexpected string: %q", s)
		}
	})

	t.Run("Ordered", func(t *testing.T) {
		l := pseudo.NewListing()
		l = l.Set(0x1008, pseudo.Xor("eax", "eax", "eax"))
		l = l.Set(0x1000, pseudo.Add("ecx", "ecx", "1"))
		l = l.Set(0x1004, pseudo.Assign("ebx", "ebx"))
		l = l.Set(0x100c, pseudo.Unknown("cpuid"))

		if s := l.String(); s != "ecx++;\neax = 0;\n__asm (cpuid);\n" {
			t.Fatalf("unexpected string: %q", s)
		}
		if diff := cmp.Diff([]pseudo.Expr{
			&pseudo.IncDecExpr{Dst: "ecx", Op: pseudo.INC},
			&pseudo.AssignExpr{Dst: "ebx", Src: "ebx"},
			&pseudo.AssignExpr{Dst: "eax", Src: "0"},
			&pseudo.UnknownExpr{Asm: "cpuid"},
		}, l.Exprs()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("Immutable", func(t *testing.T) {
		l0 := pseudo.NewListing().Set(1, pseudo.Assign("eax", "ebx"))
		l1 := l0.Set(1, pseudo.Assign("eax", "ecx"))
		l2 := l1.Delete(1)

		if expr, ok := l0.Get(1); !ok {
			t.Fatal("expected expr")
		} else if s := expr.String(); s != "eax = ebx" {
			t.Fatalf("unexpected string: %q", s)
		}
		if expr, ok := l1.Get(1); !ok {
			t.Fatal("expected expr")
		} else if s := expr.String(); s != "eax = ecx" {
			t.Fatalf("unexpected string: %q", s)
		}
		if _, ok := l2.Get(1); ok {
			t.Fatal("expected no expr")
		} else if n := l2.Len(); n != 0 {
			t.Fatalf("unexpected len: %d", n)
		}
	})
}
