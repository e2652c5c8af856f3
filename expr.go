package pseudo

import (
	"fmt"
)

// Expr represents a renderable pseudocode expression.
type Expr interface {
	expr()

	// Render returns the text of the expression decorated by p.
	Render(p Printer) string

	// String returns the undecorated text of the expression.
	String() string
}

func (*UnknownExpr) expr()    {}
func (*AssignExpr) expr()     {}
func (*CastExpr) expr()       {}
func (*MathAssignExpr) expr() {}
func (*IncDecExpr) expr()     {}
func (*BinaryExpr) expr()     {}

// RenderExpr returns the text of expr decorated by p.
func RenderExpr(p Printer, expr Expr) string {
	switch expr := expr.(type) {
	case *UnknownExpr:
		return p.CallName("__asm") + " (" + p.Auto(expr.Asm) + ")"
	case *AssignExpr:
		if expr.Dst == expr.Src {
			return ""
		}
		return string(expr.Dst) + " = " + string(expr.Src)
	case *CastExpr:
		return string(expr.Dst) + " = (" + p.Types(expr.Type) + ") " + string(expr.Src)
	case *MathAssignExpr:
		return string(expr.Dst) + " = " + expr.Op.Symbol() + string(expr.Src)
	case *IncDecExpr:
		return string(expr.Dst) + expr.Op.Symbol()
	case *BinaryExpr:
		if expr.LHS == expr.RHS {
			return string(expr.Dst) + expr.Op.Symbol() + "= " + string(expr.RHS)
		}
		return string(expr.Dst) + " = " + string(expr.LHS) + " " + expr.Op.Symbol() + " " + string(expr.RHS)
	default:
		panic("unreachable")
	}
}

// Op represents an operator used by an expression.
type Op int

// Expression operators.
const (
	binary_op_begin = Op(iota)
	ADD
	SUB
	AND
	OR
	XOR
	binary_op_end

	step_op_begin
	INC
	DEC
	step_op_end

	unary_op_begin
	NEG
	NOT
	LNOT
	unary_op_end
)

var ops = [...]struct {
	name   string
	symbol string
}{
	ADD:  {"add", "+"},
	SUB:  {"sub", "-"},
	AND:  {"and", "&"},
	OR:   {"or", "|"},
	XOR:  {"xor", "^"},
	INC:  {"inc", "++"},
	DEC:  {"dec", "--"},
	NEG:  {"neg", "-"},
	NOT:  {"not", "~"},
	LNOT: {"lnot", "!"},
}

// String returns the name of the operator.
func (op Op) String() string {
	if op >= 0 && op < Op(len(ops)) && ops[op].name != "" {
		return ops[op].name
	}
	return fmt.Sprintf("Op<%d>", op)
}

// Symbol returns the token used when rendering the operator.
func (op Op) Symbol() string {
	if op >= 0 && op < Op(len(ops)) {
		return ops[op].symbol
	}
	return ""
}

// IsBinary returns true if op combines two sources.
func (op Op) IsBinary() bool {
	return op > binary_op_begin && op < binary_op_end
}

// IsStep returns true if op is an increment or decrement.
func (op Op) IsStep() bool {
	return op > step_op_begin && op < step_op_end
}

// IsUnary returns true if op is prefixed to a single source.
func (op Op) IsUnary() bool {
	return op > unary_op_begin && op < unary_op_end
}

// UnknownExpr represents an instruction with no modeled semantics.
// Renders as "__asm (text)".
type UnknownExpr struct {
	Asm string
}

// Render returns the text of the expression decorated by p.
func (e *UnknownExpr) Render(p Printer) string { return RenderExpr(p, e) }

// String returns the undecorated text of the expression.
func (e *UnknownExpr) String() string { return e.Render(PlainPrinter{}) }

// AssignExpr represents "dst = src". Renders empty if dst and src are the same.
type AssignExpr struct {
	Dst Operand
	Src Operand
}

// Render returns the text of the expression decorated by p.
func (e *AssignExpr) Render(p Printer) string { return RenderExpr(p, e) }

// String returns the undecorated text of the expression.
func (e *AssignExpr) String() string { return e.Render(PlainPrinter{}) }

// CastExpr represents "dst = (type) src".
type CastExpr struct {
	Dst  Operand
	Src  Operand
	Type string
}

// NewCastExpr returns a new instance of CastExpr.
func NewCastExpr(dst, src Operand, typ string) Expr {
	return &CastExpr{Dst: dst, Src: src, Type: typ}
}

// Render returns the text of the expression decorated by p.
func (e *CastExpr) Render(p Printer) string { return RenderExpr(p, e) }

// String returns the undecorated text of the expression.
func (e *CastExpr) String() string { return e.Render(PlainPrinter{}) }

// MathAssignExpr represents a unary operator applied to src, "dst = -src".
type MathAssignExpr struct {
	Dst Operand
	Src Operand
	Op  Op
}

// NewMathAssignExpr returns a new instance of MathAssignExpr. Panic if op is
// not a unary operator.
func NewMathAssignExpr(op Op, dst, src Operand) Expr {
	assert(op.IsUnary(), "invalid unary op: %s", op)
	return &MathAssignExpr{Dst: dst, Src: src, Op: op}
}

// Render returns the text of the expression decorated by p.
func (e *MathAssignExpr) Render(p Printer) string { return RenderExpr(p, e) }

// String returns the undecorated text of the expression.
func (e *MathAssignExpr) String() string { return e.Render(PlainPrinter{}) }

// IncDecExpr represents "dst++" or "dst--".
type IncDecExpr struct {
	Dst Operand
	Op  Op
}

// NewIncDecExpr returns a new instance of IncDecExpr. Panic if op is not INC or DEC.
func NewIncDecExpr(op Op, dst Operand) Expr {
	assert(op.IsStep(), "invalid step op: %s", op)
	return &IncDecExpr{Dst: dst, Op: op}
}

// Render returns the text of the expression decorated by p.
func (e *IncDecExpr) Render(p Printer) string { return RenderExpr(p, e) }

// String returns the undecorated text of the expression.
func (e *IncDecExpr) String() string { return e.Render(PlainPrinter{}) }

// BinaryExpr represents "dst = lhs op rhs".
//
// When lhs and rhs are the same operand the compound form "dst op= rhs" is
// rendered instead.
type BinaryExpr struct {
	Dst Operand
	LHS Operand
	RHS Operand
	Op  Op
}

// NewBinaryExpr returns the simplest expression for "dst = lhs op rhs".
// Panic if op is not a binary operator.
func NewBinaryExpr(op Op, dst, lhs, rhs Operand) Expr {
	switch op {
	case ADD:
		return Add(dst, lhs, rhs)
	case SUB:
		return Subtract(dst, lhs, rhs)
	case AND:
		return And(dst, lhs, rhs)
	case OR:
		return Or(dst, lhs, rhs)
	case XOR:
		return Xor(dst, lhs, rhs)
	default:
		panic(fmt.Sprintf("invalid binary op: %s", op))
	}
}

// Render returns the text of the expression decorated by p.
func (e *BinaryExpr) Render(p Printer) string { return RenderExpr(p, e) }

// String returns the undecorated text of the expression.
func (e *BinaryExpr) String() string { return e.Render(PlainPrinter{}) }
