package symbolic

// Simplify folds fully-literal subtrees into Constant nodes, post-order.
// That is the whole scope: no identity rules (x*0, x+0), no reordering, no
// flattening. Division by a zero constant folds to NaN.
//
// Simplify rewrites operator nodes' children in place and returns the root,
// which is a fresh Constant when the entire tree folds. Callers must use
// the returned value and must not hold references to subtrees they expect
// to stay intact.
func Simplify(e Expr) Expr {
	b, ok := e.(*BinaryExpr)
	if !ok {
		return e
	}

	b.Left = Simplify(b.Left)
	b.Right = Simplify(b.Right)

	left, lok := b.Left.(*Constant)
	right, rok := b.Right.(*Constant)
	if lok && rok {
		return NewConstant(apply(b.Op, left.Value, right.Value))
	}
	return b
}
