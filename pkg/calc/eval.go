package calc

import (
	"math"
	"strconv"

	"github.com/numina-labs/numina/pkg/token"
)

// opCode is an operator on the shunting-yard stack.
type opCode int

const (
	opAdd opCode = iota
	opSub
	opMul
	opDiv
	opMod
	opPow
	opNeg // unary minus
)

// prec returns the binding strength; higher binds tighter.
func (op opCode) prec() int {
	switch op {
	case opAdd, opSub:
		return 1
	case opMul, opDiv, opMod:
		return 2
	case opNeg:
		return 3
	case opPow:
		return 4
	}
	return 0
}

func (op opCode) rightAssoc() bool {
	return op == opPow || op == opNeg
}

// entryKind discriminates operator-stack entries.
type entryKind int

const (
	entryOp entryKind = iota
	entryLParen
	entryCall
)

type stackEntry struct {
	kind entryKind
	op   opCode
	fn   Func
	argc int // arguments completed so far (entryCall only)
	pos  token.Position
}

// Eval tokenizes and evaluates one calculator input line.
//
// Supported forms: arithmetic over + - * / % ^ with the usual precedence
// ('^' right-associative, unary minus), parentheses, variable and constant
// references, function calls f(a, b), and assignment "name = expr" (which
// stores the value and returns it). Unknown identifiers and malformed
// syntax are errors; numeric anomalies such as division by zero follow the
// floating-point convention and surface as NaN in the result.
func (e *Env) Eval(input string) (float64, error) {
	toks, err := scanAll(input)
	if err != nil {
		return math.NaN(), err
	}
	if len(toks) == 1 { // just EOF
		return math.NaN(), errAt(toks[0].Pos, "empty input")
	}

	// Assignment form: IDENT '=' expr
	if toks[0].Type == token.IDENT && toks[1].Type == token.ASSIGN {
		name := toks[0].Literal
		value, err := e.evalTokens(toks[2:])
		if err != nil {
			return math.NaN(), err
		}
		if err := e.SetVar(name, value); err != nil {
			return math.NaN(), errAt(toks[0].Pos, "%s", err.Error())
		}
		e.logger.Debug("assigned variable", "name", name, "value", value)
		return value, nil
	}

	return e.evalTokens(toks)
}

// scanAll reads every token up front; the trailing element is EOF.
func scanAll(input string) ([]token.Token, error) {
	sc := NewScanner(input)
	var toks []token.Token
	for {
		tok := sc.Next()
		if tok.Type == token.ILLEGAL {
			return nil, errAt(tok.Pos, "unexpected character %q", tok.Literal)
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}

// evalTokens runs the operator-precedence stack machine over the token
// stream, evaluating to a single value.
func (e *Env) evalTokens(toks []token.Token) (float64, error) {
	var values []float64
	var ops []stackEntry

	// expectOperand tracks whether the next token must start an operand
	// (beginning of input, after an operator, '(' or ',').
	expectOperand := true

	popApply := func() error {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]

		if top.op == opNeg {
			if len(values) < 1 {
				return errAt(top.pos, "missing operand")
			}
			values[len(values)-1] = -values[len(values)-1]
			return nil
		}
		if len(values) < 2 {
			return errAt(top.pos, "missing operand")
		}
		b := values[len(values)-1]
		a := values[len(values)-2]
		values = values[:len(values)-2]
		values = append(values, applyBinary(top.op, a, b))
		return nil
	}

	pushOp := func(op opCode, pos token.Position) error {
		for len(ops) > 0 {
			top := ops[len(ops)-1]
			if top.kind != entryOp {
				break
			}
			if top.op.prec() > op.prec() || (top.op.prec() == op.prec() && !op.rightAssoc()) {
				if err := popApply(); err != nil {
					return err
				}
				continue
			}
			break
		}
		ops = append(ops, stackEntry{kind: entryOp, op: op, pos: pos})
		return nil
	}

	for i := 0; i < len(toks); i++ {
		tok := toks[i]

		switch tok.Type {
		case token.NUMBER:
			if !expectOperand {
				return math.NaN(), errAt(tok.Pos, "unexpected number %q", tok.Literal)
			}
			v, err := strconv.ParseFloat(tok.Literal, 64)
			if err != nil {
				return math.NaN(), errAt(tok.Pos, "invalid number literal %q", tok.Literal)
			}
			values = append(values, v)
			expectOperand = false

		case token.IDENT:
			if !expectOperand {
				return math.NaN(), errAt(tok.Pos, "unexpected identifier %q", tok.Literal)
			}
			// Function call when followed by '('.
			if i+1 < len(toks) && toks[i+1].Type == token.LPAREN {
				fn, ok := e.Function(tok.Literal)
				if !ok {
					return math.NaN(), errAt(tok.Pos, "unknown function %q", tok.Literal)
				}
				ops = append(ops, stackEntry{kind: entryCall, fn: fn, pos: tok.Pos})
				i++ // consume '('
				expectOperand = true
				continue
			}
			v, ok := e.Var(tok.Literal)
			if !ok {
				return math.NaN(), errAt(tok.Pos, "unknown variable %q", tok.Literal)
			}
			values = append(values, v)
			expectOperand = false

		case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.CARET:
			if expectOperand {
				// Unary context: minus negates, plus is a no-op.
				switch tok.Type {
				case token.MINUS:
					ops = append(ops, stackEntry{kind: entryOp, op: opNeg, pos: tok.Pos})
				case token.PLUS:
					// no-op
				default:
					return math.NaN(), errAt(tok.Pos, "unexpected operator %q", tok.Literal)
				}
				continue
			}
			if err := pushOp(binaryOp(tok.Type), tok.Pos); err != nil {
				return math.NaN(), err
			}
			expectOperand = true

		case token.LPAREN:
			if !expectOperand {
				return math.NaN(), errAt(tok.Pos, "unexpected '('")
			}
			ops = append(ops, stackEntry{kind: entryLParen, pos: tok.Pos})

		case token.RPAREN:
			if expectOperand {
				// Only a zero-argument call may close immediately.
				if len(ops) > 0 && ops[len(ops)-1].kind == entryCall && ops[len(ops)-1].argc == 0 {
					call := ops[len(ops)-1]
					ops = ops[:len(ops)-1]
					if call.fn.Arity != 0 {
						return math.NaN(), errAt(tok.Pos, "function %q expects %d arguments, got 0", call.fn.Name, call.fn.Arity)
					}
					values = append(values, call.fn.Impl(nil))
					expectOperand = false
					continue
				}
				return math.NaN(), errAt(tok.Pos, "unexpected ')'")
			}
			closed := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind == entryOp {
					if err := popApply(); err != nil {
						return math.NaN(), err
					}
					continue
				}
				if top.kind == entryLParen {
					ops = ops[:len(ops)-1]
					closed = true
					break
				}
				// entryCall: the expression just finished is the last argument.
				call := top
				ops = ops[:len(ops)-1]
				got := call.argc + 1
				if got != call.fn.Arity {
					return math.NaN(), errAt(tok.Pos, "function %q expects %d arguments, got %d", call.fn.Name, call.fn.Arity, got)
				}
				args := make([]float64, got)
				copy(args, values[len(values)-got:])
				values = values[:len(values)-got]
				values = append(values, call.fn.Impl(args))
				closed = true
				break
			}
			if !closed {
				return math.NaN(), errAt(tok.Pos, "unmatched ')'")
			}
			expectOperand = false

		case token.COMMA:
			if expectOperand {
				return math.NaN(), errAt(tok.Pos, "unexpected ','")
			}
			for len(ops) > 0 && ops[len(ops)-1].kind == entryOp {
				if err := popApply(); err != nil {
					return math.NaN(), err
				}
			}
			if len(ops) == 0 || ops[len(ops)-1].kind != entryCall {
				return math.NaN(), errAt(tok.Pos, "',' outside function call")
			}
			call := &ops[len(ops)-1]
			call.argc++
			if call.argc >= call.fn.Arity {
				return math.NaN(), errAt(tok.Pos, "function %q expects %d arguments", call.fn.Name, call.fn.Arity)
			}
			expectOperand = true

		case token.ASSIGN:
			return math.NaN(), errAt(tok.Pos, "unexpected '='")

		case token.EOF:
			if expectOperand {
				return math.NaN(), errAt(tok.Pos, "unexpected end of input")
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != entryOp {
					return math.NaN(), errAt(top.pos, "unmatched '('")
				}
				if err := popApply(); err != nil {
					return math.NaN(), err
				}
			}
			if len(values) != 1 {
				return math.NaN(), errAt(tok.Pos, "malformed expression")
			}
			return values[0], nil

		default:
			return math.NaN(), errAt(tok.Pos, "unexpected token %s", tok.Type.String())
		}
	}

	// Unreachable: the token slice always ends with EOF.
	return math.NaN(), errAt(token.Position{}, "malformed expression")
}

func binaryOp(t token.Type) opCode {
	switch t {
	case token.PLUS:
		return opAdd
	case token.MINUS:
		return opSub
	case token.STAR:
		return opMul
	case token.SLASH:
		return opDiv
	case token.PERCENT:
		return opMod
	default:
		return opPow
	}
}

func applyBinary(op opCode, a, b float64) float64 {
	switch op {
	case opAdd:
		return a + b
	case opSub:
		return a - b
	case opMul:
		return a * b
	case opDiv:
		if b == 0.0 {
			return math.NaN()
		}
		return a / b
	case opMod:
		return math.Mod(a, b)
	case opPow:
		return math.Pow(a, b)
	}
	return math.NaN()
}
