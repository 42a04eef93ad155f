package syntax

import "fmt"

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(x Expr) bool

// Walk traverses an expression tree in depth-first order, parents before
// children and left operands before right ones.
func Walk(x Expr, v Visitor) {
	if x == nil || !v(x) {
		return
	}

	switch n := x.(type) {
	case *Literal:
		// leaf

	case *Grouping:
		Walk(n.X, v)

	case *Unary:
		Walk(n.X, v)

	case *Binary:
		Walk(n.X, v)
		Walk(n.Y, v)

	default:
		panic(fmt.Sprintf("syntax: unexpected node %T", x))
	}
}

// Count returns the number of nodes in the tree rooted at x.
func Count(x Expr) int {
	n := 0
	Walk(x, func(Expr) bool {
		n++
		return true
	})
	return n
}

// Depth returns the height of the tree rooted at x; a single literal has
// depth 1 and a nil tree depth 0.
func Depth(x Expr) int {
	switch n := x.(type) {
	case nil:
		return 0
	case *Grouping:
		return 1 + Depth(n.X)
	case *Unary:
		return 1 + Depth(n.X)
	case *Binary:
		return 1 + max(Depth(n.X), Depth(n.Y))
	}
	return 1
}
