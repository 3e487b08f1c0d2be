package symbolic

// Diff returns the symbolic derivative of e with respect to variable.
//
// The result is a brand-new tree: wherever a rule reuses an operand (the
// product rule reuses each of u and v once, the quotient rule reuses v
// twice), the operand is deep-cloned, so the derivative shares no nodes
// with e or with itself. Operators without a rule (notably '^') produce a
// *DiffError.
func Diff(e Expr, variable string) (Expr, error) {
	switch n := e.(type) {
	case *Constant:
		return NewConstant(0), nil

	case *Variable:
		if n.Name == variable {
			return NewConstant(1), nil
		}
		return NewConstant(0), nil

	case *BinaryExpr:
		du, err := Diff(n.Left, variable)
		if err != nil {
			return nil, err
		}
		dv, err := Diff(n.Right, variable)
		if err != nil {
			return nil, err
		}

		switch n.Op {
		case OpAdd:
			return NewBinary(OpAdd, du, dv), nil

		case OpSub:
			return NewBinary(OpSub, du, dv), nil

		case OpMul:
			// (u*v)' = u'*v + u*v'
			return NewBinary(OpAdd,
				NewBinary(OpMul, du, n.Right.Clone()),
				NewBinary(OpMul, n.Left.Clone(), dv),
			), nil

		case OpDiv:
			// (u/v)' = (u'*v - u*v') / (v*v)
			numerator := NewBinary(OpSub,
				NewBinary(OpMul, du, n.Right.Clone()),
				NewBinary(OpMul, n.Left.Clone(), dv),
			)
			denominator := NewBinary(OpMul, n.Right.Clone(), n.Right.Clone())
			return NewBinary(OpDiv, numerator, denominator), nil

		default:
			return nil, &DiffError{Op: n.Op}
		}
	}
	return nil, &DiffError{}
}
