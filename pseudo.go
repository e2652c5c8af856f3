// Package pseudo builds expression nodes for decompiler pseudocode.
//
// Each builder function takes a low-level operation and its operand
// references and returns the simplest node that renders it, e.g. Add(x, x, 1)
// returns an increment rather than an addition. Nodes are immutable and only
// ever rendered to text.
package pseudo

import "fmt"

// Operand is an opaque reference to a register, memory location or literal.
// Operands are only ever compared for equality.
type Operand string

// Literal operands recognized by the builder rules. Literals must arrive in
// exactly this form; "0x0" is not Zero.
const (
	Zero = Operand("0")
	One  = Operand("1")
)

// String returns the operand text.
func (o Operand) String() string { return string(o) }

// assert panics if condition is false.
func assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("assert: "+format, args...))
	}
}
