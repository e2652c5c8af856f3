package pseudo

import (
	"strings"

	"github.com/benbjohnson/immutable"
)

// Listing is an immutable sequence of expressions ordered by address.
type Listing struct {
	m *immutable.SortedMap
}

// NewListing returns a new, empty Listing.
func NewListing() *Listing {
	return &Listing{m: immutable.NewSortedMap(&uint64Comparer{})}
}

// Len returns the number of expressions in the listing.
func (l *Listing) Len() int { return l.m.Len() }

// Get returns the expression at addr.
func (l *Listing) Get(addr uint64) (Expr, bool) {
	v, ok := l.m.Get(addr)
	if !ok {
		return nil, false
	}
	return v.(Expr), true
}

// Set returns a new listing with expr stored at addr.
func (l *Listing) Set(addr uint64, expr Expr) *Listing {
	return &Listing{m: l.m.Set(addr, expr)}
}

// Delete returns a new listing without the expression at addr.
func (l *Listing) Delete(addr uint64) *Listing {
	return &Listing{m: l.m.Delete(addr)}
}

// Exprs returns all expressions in address order.
func (l *Listing) Exprs() []Expr {
	a := make([]Expr, 0, l.m.Len())
	itr := l.m.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		a = append(a, v.(Expr))
	}
	return a
}

// Render returns one statement per line in address order. Expressions that
// render empty, such as "x = x", are omitted.
func (l *Listing) Render(p Printer) string {
	var buf strings.Builder
	for _, expr := range l.Exprs() {
		s := expr.Render(p)
		if s == "" {
			continue
		}
		buf.WriteString(s)
		buf.WriteString(";\n")
	}
	return buf.String()
}

// String returns the undecorated listing.
func (l *Listing) String() string { return l.Render(PlainPrinter{}) }

// uint64Comparer compares two 64-bit unsigned integers. Implements immutable.Comparer.
type uint64Comparer struct{}

// Compare returns -1 if a is less than b, returns 1 if a is greater than b, and
// returns 0 if a is equal to b. Panic if a or b is not a uint64.
func (c *uint64Comparer) Compare(a, b interface{}) int {
	if i, j := a.(uint64), b.(uint64); i < j {
		return -1
	} else if i > j {
		return 1
	}
	return 0
}
