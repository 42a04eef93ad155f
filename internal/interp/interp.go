package interp

import (
	"fmt"
	"io"

	"github.com/you-not-fish/lox/internal/syntax"
)

// RuntimeError aborts evaluation. Token is the operator or literal that
// failed.
type RuntimeError struct {
	Token syntax.Token
	Msg   string
}

func (e *RuntimeError) Error() string {
	return syntax.FormatError(e.Token.Line, syntax.Where(e.Token), e.Msg)
}

// Interpreter evaluates expressions and prints their values to out.
// It holds no state between calls.
type Interpreter struct {
	out io.Writer
}

// New creates an Interpreter that prints results to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{out: out}
}

// Evaluate computes the value of x. It is shorthand for New(nil).Evaluate(x).
func Evaluate(x syntax.Expr) (Value, error) {
	return evaluate(x)
}

// Evaluate computes the value of x.
func (in *Interpreter) Evaluate(x syntax.Expr) (Value, error) {
	return evaluate(x)
}

// Interpret evaluates x and, on success, writes its display form and a
// newline to the interpreter's output. The error, if any, is returned
// untouched and nothing is written.
func (in *Interpreter) Interpret(x syntax.Expr) error {
	v, err := evaluate(x)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(in.out, v)
	return err
}

// evaluate is a pure function of the tree. Operands are evaluated left to
// right and the first error aborts the whole expression.
func evaluate(x syntax.Expr) (Value, error) {
	switch n := x.(type) {
	case *syntax.Literal:
		return literal(n.Token)

	case *syntax.Grouping:
		return evaluate(n.X)

	case *syntax.Unary:
		v, err := evaluate(n.X)
		if err != nil {
			return nil, err
		}
		return unary(n.Op, v)

	case *syntax.Binary:
		l, err := evaluate(n.X)
		if err != nil {
			return nil, err
		}
		r, err := evaluate(n.Y)
		if err != nil {
			return nil, err
		}
		return binary(n.Op, l, r)

	default:
		panic(fmt.Sprintf("interp: unexpected node %T", x))
	}
}

func literal(tok syntax.Token) (Value, error) {
	switch tok.Kind {
	case syntax.Number:
		return Number(tok.Number), nil
	case syntax.String:
		return Text(tok.Text), nil
	case syntax.True:
		return Bool(true), nil
	case syntax.False:
		return Bool(false), nil
	case syntax.Nil:
		return Nil{}, nil
	}
	return nil, &RuntimeError{Token: tok, Msg: "Unrecognized literal."}
}

func unary(op syntax.Token, v Value) (Value, error) {
	switch op.Kind {
	case syntax.Minus:
		if n, ok := v.(Number); ok {
			return -n, nil
		}
		return nil, &RuntimeError{
			Token: op,
			Msg:   fmt.Sprintf("Operand must be a number; got %s.", TypeName(v)),
		}

	case syntax.Bang:
		return Bool(!Truthy(v)), nil
	}
	return nil, &RuntimeError{Token: op, Msg: "Unrecognized unary operator."}
}

func binary(op syntax.Token, l, r Value) (Value, error) {
	switch l := l.(type) {
	case Number:
		if r, ok := r.(Number); ok {
			if v, ok := numberOp(op.Kind, l, r); ok {
				return v, nil
			}
		}

	case Text:
		if r, ok := r.(Text); ok && op.Kind == syntax.Plus {
			return l + r, nil
		}

	case Nil:
		if _, ok := r.(Nil); ok {
			switch op.Kind {
			case syntax.EqualEqual:
				return Bool(true), nil
			case syntax.BangEqual:
				return Bool(false), nil
			}
		}

	case Bool:
		if r, ok := r.(Bool); ok {
			switch op.Kind {
			case syntax.EqualEqual:
				return Bool(l == r), nil
			case syntax.BangEqual:
				return Bool(l != r), nil
			}
		}
	}

	return nil, &RuntimeError{
		Token: op,
		Msg:   fmt.Sprintf("Unsupported operands for '%s': %s and %s.", op.Lexeme, TypeName(l), TypeName(r)),
	}
}

// numberOp applies op to two numbers with IEEE-754 semantics; division by
// zero yields an infinity or NaN, not an error.
func numberOp(op syntax.Kind, l, r Number) (Value, bool) {
	switch op {
	case syntax.Plus:
		return l + r, true
	case syntax.Minus:
		return l - r, true
	case syntax.Star:
		return l * r, true
	case syntax.Slash:
		return l / r, true
	case syntax.Greater:
		return Bool(l > r), true
	case syntax.GreaterEqual:
		return Bool(l >= r), true
	case syntax.Less:
		return Bool(l < r), true
	case syntax.LessEqual:
		return Bool(l <= r), true
	case syntax.EqualEqual:
		return Bool(l == r), true
	case syntax.BangEqual:
		return Bool(l != r), true
	}
	return nil, false
}
