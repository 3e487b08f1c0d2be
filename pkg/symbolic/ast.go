// Package symbolic implements an expression tree over constants, named
// variables, and binary operators, with parsing, evaluation, constant
// folding, substitution, and rule-based differentiation.
package symbolic

import "strconv"

// Op is a binary operator in an expression tree.
type Op byte

// Binary operators. OpPow is accepted by the parser at the highest
// precedence and by the evaluator, but is not differentiable.
const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
	OpPow Op = '^'
)

// String returns the operator's source form.
func (op Op) String() string {
	return string(rune(op))
}

// MaxNameLen is the longest variable name the tree stores. Longer names are
// truncated at construction, matching the parser's identifier limit.
const MaxNameLen = 31

// Expr is a node in an expression tree. Exactly three types implement it:
// *Constant, *Variable, and *BinaryExpr. Consumers switch exhaustively over
// these, so adding a variant forces every consumer to be updated.
type Expr interface {
	// Clone returns a deep copy that shares no nodes with the receiver.
	Clone() Expr

	// String renders the subtree as "<left> <op> <right>" with single
	// spaces and no parentheses. Constants use the shortest decimal form
	// that parses back to the exact value. Because grouping is not
	// encoded, two structurally different trees can render identically;
	// this is a debug rendering, not a serialization format.
	String() string

	exprNode()
}

// Constant is a literal numeric leaf.
type Constant struct {
	Value float64
}

// Variable is a named leaf resolved at evaluation time.
type Variable struct {
	Name string
}

// BinaryExpr applies Op to exactly two child expressions.
type BinaryExpr struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (*Constant) exprNode()   {}
func (*Variable) exprNode()   {}
func (*BinaryExpr) exprNode() {}

// NewConstant returns a constant leaf holding value.
func NewConstant(value float64) *Constant {
	return &Constant{Value: value}
}

// NewVariable returns a variable leaf. Names longer than MaxNameLen bytes
// are truncated, not rejected.
func NewVariable(name string) *Variable {
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	return &Variable{Name: name}
}

// NewBinary returns an operator node owning both children.
func NewBinary(op Op, left, right Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right}
}

// Clone returns a copy of the constant.
func (c *Constant) Clone() Expr {
	return &Constant{Value: c.Value}
}

// Clone returns a copy of the variable.
func (v *Variable) Clone() Expr {
	return &Variable{Name: v.Name}
}

// Clone returns a deep copy of the operator node and both subtrees.
func (b *BinaryExpr) Clone() Expr {
	return &BinaryExpr{Op: b.Op, Left: b.Left.Clone(), Right: b.Right.Clone()}
}

func (c *Constant) String() string {
	return strconv.FormatFloat(c.Value, 'g', -1, 64)
}

func (v *Variable) String() string {
	return v.Name
}

func (b *BinaryExpr) String() string {
	return b.Left.String() + " " + b.Op.String() + " " + b.Right.String()
}
