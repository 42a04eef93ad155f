package syntax

// Parser performs syntax analysis over a scanned token slice.
//
// Grammar, lowest precedence first:
//
//	expression → equality
//	equality   → comparison ( ( "!=" | "==" ) comparison )*
//	comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       → factor ( ( "-" | "+" ) factor )*
//	factor     → unary ( ( "/" | "*" ) unary )*
//	unary      → ( "!" | "-" ) unary | primary
//	primary    → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
type Parser struct {
	tokens  []Token
	current int // index of the next unconsumed token; only ever increases
}

// NewParser creates a Parser for tokens, normally the output of Scan.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse is shorthand for NewParser(tokens).Parse().
func Parse(tokens []Token) (Expr, error) {
	return NewParser(tokens).Parse()
}

// ParseString scans and parses src.
func ParseString(src string) (Expr, error) {
	tokens, err := Scan(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Parse parses one expression. It returns the first syntax error, if any,
// and never a partial tree. Tokens after the expression are not consumed.
func (p *Parser) Parse() (Expr, error) {
	return p.expression()
}

// ----------------------------------------------------------------------------
// Token navigation

// peek returns the current token without consuming it. Past the end of a
// slice with no EOF sentinel it reports a synthetic EOF.
func (p *Parser) peek() Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	line := 1
	if n := len(p.tokens); n > 0 {
		line = p.tokens[n-1].Line
	}
	return Token{Kind: EOF, Line: line}
}

// previous returns the most recently consumed token.
func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

// isAtEnd reports whether the current token is the EOF sentinel.
func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == EOF
}

// advance consumes the current token and returns it.
func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
		return p.previous()
	}
	return p.peek()
}

// check reports whether the current token has kind k.
func (p *Parser) check(k Kind) bool {
	return p.peek().Kind == k
}

// match consumes the current token if it has one of the given kinds.
func (p *Parser) match(kinds ...Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// errorAt builds a ParseError located at tok.
func errorAt(tok Token, msg string) error {
	return &ParseError{Token: tok, Msg: msg}
}

// Synchronize discards tokens until it reaches a likely statement
// boundary: just past a ';' or just before a statement keyword.
// It is the recovery hook for statement-level parsing; Parse does not
// recover and never calls it.
func (p *Parser) Synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == Semicolon {
			return
		}
		switch p.peek().Kind {
		case Class, Fun, Var, For, If, While, Print, Return:
			return
		}
		p.advance()
	}
}

// ----------------------------------------------------------------------------
// Expressions

// expression parses an expression.
func (p *Parser) expression() (Expr, error) {
	return p.equality()
}

// binaryLevel parses one left-associative precedence level: an operand at
// the next level, then a left fold while the current token is in ops.
func (p *Parser) binaryLevel(next func() (Expr, error), ops ...Kind) (Expr, error) {
	x, err := next()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		op := p.previous()
		y, err := next()
		if err != nil {
			return nil, err
		}
		x = NewBinary(x, op, y)
	}
	return x, nil
}

// equality parses: comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() (Expr, error) {
	return p.binaryLevel(p.comparison, BangEqual, EqualEqual)
}

// comparison parses: term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() (Expr, error) {
	return p.binaryLevel(p.term, Greater, GreaterEqual, Less, LessEqual)
}

// term parses: factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() (Expr, error) {
	return p.binaryLevel(p.factor, Minus, Plus)
}

// factor parses: unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() (Expr, error) {
	return p.binaryLevel(p.unary, Slash, Star)
}

// unary parses a prefix operation. It recurses into itself, so operators
// chain and associate to the right: --x is -(-x).
func (p *Parser) unary() (Expr, error) {
	if p.match(Bang, Minus) {
		op := p.previous()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return NewUnary(op, x), nil
	}
	return p.primary()
}

// primary parses a literal or a parenthesized expression.
func (p *Parser) primary() (Expr, error) {
	tok := p.peek()

	switch {
	case tok.Kind.IsLiteral():
		p.advance()
		return NewLiteral(tok), nil

	case tok.Kind == LeftParen:
		p.advance()
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.check(RightParen) {
			return nil, errorAt(p.peek(), "Expect ')' after expression.")
		}
		p.advance()
		return NewGrouping(tok.Line, x), nil

	default:
		return nil, errorAt(tok, "Expect expression.")
	}
}
