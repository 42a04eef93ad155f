package syntax

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// FprintJSON writes a JSON representation of the expression tree to w.
func FprintJSON(w io.Writer, x Expr) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(x))
}

func toJSON(x Expr) interface{} {
	switch n := x.(type) {
	case nil:
		return nil

	case *Literal:
		m := map[string]interface{}{
			"type":   "Literal",
			"line":   n.Line(),
			"kind":   n.Token.Kind.String(),
			"lexeme": n.Token.Lexeme,
		}
		switch n.Token.Kind {
		case Number:
			m["value"] = jsonNumber(n.Token.Number)
		case String:
			m["value"] = n.Token.Text
		case True:
			m["value"] = true
		case False:
			m["value"] = false
		case Nil:
			m["value"] = nil
		}
		return m

	case *Grouping:
		return map[string]interface{}{
			"type": "Grouping",
			"line": n.Line(),
			"x":    toJSON(n.X),
		}

	case *Unary:
		return map[string]interface{}{
			"type": "Unary",
			"line": n.Line(),
			"op":   n.Op.Lexeme,
			"x":    toJSON(n.X),
		}

	case *Binary:
		return map[string]interface{}{
			"type": "Binary",
			"line": n.Line(),
			"op":   n.Op.Lexeme,
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	default:
		panic(fmt.Sprintf("syntax: unexpected node %T", x))
	}
}

// jsonNumber keeps finite values numeric. encoding/json rejects Inf and
// NaN, which huge literals can produce, so those are emitted as strings.
func jsonNumber(f float64) interface{} {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Sprint(f)
	}
	return f
}
