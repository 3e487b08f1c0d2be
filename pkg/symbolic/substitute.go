package symbolic

// Substitute replaces every occurrence of variable with a constant value,
// always building a brand-new tree: constants and non-matching variables
// are cloned, matching variables become fresh Constant nodes, and operator
// nodes are rebuilt with both children substituted. The input is never
// modified and shares no nodes with the result.
func Substitute(e Expr, variable string, value float64) Expr {
	switch n := e.(type) {
	case *Constant:
		return n.Clone()

	case *Variable:
		if n.Name == variable {
			return NewConstant(value)
		}
		return n.Clone()

	case *BinaryExpr:
		return NewBinary(n.Op,
			Substitute(n.Left, variable, value),
			Substitute(n.Right, variable, value),
		)
	}
	return nil
}
