package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a fully parenthesized rendering of the expression to w:
//
//	(Binary * (Unary - (Literal 123)) (Grouping (Literal 45.67)))
//
// The output is for inspection only; it is not valid lox.
func Fprint(w io.Writer, x Expr) error {
	p := &printer{}
	p.print(x)
	_, err := io.WriteString(w, p.buf.String())
	return err
}

// Sprint returns the rendering Fprint would write.
func Sprint(x Expr) string {
	p := &printer{}
	p.print(x)
	return p.buf.String()
}

type printer struct {
	buf strings.Builder
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(&p.buf, format, args...)
}

func (p *printer) print(x Expr) {
	switch n := x.(type) {
	case nil:
		p.printf("<nil>")

	case *Literal:
		p.printf("(Literal %s)", n.Token.Lexeme)

	case *Grouping:
		p.printf("(Grouping ")
		p.print(n.X)
		p.printf(")")

	case *Unary:
		p.printf("(Unary %s ", n.Op.Lexeme)
		p.print(n.X)
		p.printf(")")

	case *Binary:
		p.printf("(Binary %s ", n.Op.Lexeme)
		p.print(n.X)
		p.printf(" ")
		p.print(n.Y)
		p.printf(")")

	default:
		panic(fmt.Sprintf("syntax: unexpected node %T", x))
	}
}
