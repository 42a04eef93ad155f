package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// The expression grammar has exactly four node types. Consumers switch over
// them; the unexported marker keeps the set closed to this package.

// Expr is the interface implemented by all expression nodes.
type Expr interface {
	Line() int // line of the token that starts the node
	aExpr()    // marker method to restrict implementations to this package
}

// ----------------------------------------------------------------------------
// Base node type

// node is the base struct embedded in all expression nodes.
type node struct {
	line int
}

func (n *node) Line() int { return n.line }
func (*node) aExpr()      {}

// ----------------------------------------------------------------------------
// Expressions

// Literal is a number, string, true, false or nil.
type Literal struct {
	node
	Token Token
}

// Grouping is a parenthesized expression: (X)
type Grouping struct {
	node
	X Expr // inner expression
}

// Unary is a prefix operation: Op X
type Unary struct {
	node
	Op Token // Minus or Bang
	X  Expr  // operand
}

// Binary is an infix operation: X Op Y
type Binary struct {
	node
	X  Expr  // left operand
	Op Token // operator
	Y  Expr  // right operand
}

// NewLiteral returns a Literal node for tok.
func NewLiteral(tok Token) *Literal {
	lit := &Literal{Token: tok}
	lit.line = tok.Line
	return lit
}

// NewGrouping returns a Grouping node starting on line.
func NewGrouping(line int, x Expr) *Grouping {
	g := &Grouping{X: x}
	g.line = line
	return g
}

// NewUnary returns a Unary node; its line is the operator's.
func NewUnary(op Token, x Expr) *Unary {
	u := &Unary{Op: op, X: x}
	u.line = op.Line
	return u
}

// NewBinary returns a Binary node; its line is the left operand's.
func NewBinary(x Expr, op Token, y Expr) *Binary {
	b := &Binary{X: x, Op: op, Y: y}
	b.line = x.Line()
	return b
}
