package pseudo

// Add returns the expression for "dst = a + b".
func Add(dst, a, b Operand) Expr {
	// x = x + 1 is x++
	if dst == a && b == One {
		return &IncDecExpr{Dst: dst, Op: INC}
	}
	return &BinaryExpr{Dst: dst, LHS: a, RHS: b, Op: ADD}
}

// Subtract returns the expression for "dst = a - b".
func Subtract(dst, a, b Operand) Expr {
	// x = x - 1 is x--
	if dst == a && b == One {
		return &IncDecExpr{Dst: dst, Op: DEC}
	}
	return &BinaryExpr{Dst: dst, LHS: a, RHS: b, Op: SUB}
}

// And returns the expression for "dst = a & b".
func And(dst, a, b Operand) Expr {
	// Masking with zero is always zero.
	if b == Zero {
		return &AssignExpr{Dst: dst, Src: Zero}
	}
	return &BinaryExpr{Dst: dst, LHS: a, RHS: b, Op: AND}
}

// Or returns the expression for "dst = a | b".
//
// Equal sources produce "dst = 0". This matches the output of existing
// pseudocode even though a | a is a, not zero.
func Or(dst, a, b Operand) Expr {
	if a == b {
		return &AssignExpr{Dst: dst, Src: Zero}
	}
	return &BinaryExpr{Dst: dst, LHS: a, RHS: b, Op: OR}
}

// Xor returns the expression for "dst = a ^ b".
func Xor(dst, a, b Operand) Expr {
	// a ^ a is zero.
	if a == b {
		return &AssignExpr{Dst: dst, Src: Zero}
	}
	return &BinaryExpr{Dst: dst, LHS: a, RHS: b, Op: XOR}
}

// Assign returns the expression for "dst = src".
func Assign(dst, src Operand) Expr {
	return &AssignExpr{Dst: dst, Src: src}
}

// Unknown returns an expression wrapping an instruction that has no modeled
// semantics. The text is rendered verbatim.
func Unknown(asm string) Expr {
	return &UnknownExpr{Asm: asm}
}
