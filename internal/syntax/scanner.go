package syntax

import (
	"errors"
	"fmt"
	"strconv"
)

// Scanner performs lexical analysis on lox source code.
type Scanner struct {
	source // embedded byte cursor

	tokens []Token
	err    *ScanError // first fatal error; sticky
}

// NewScanner creates a new Scanner for src.
func NewScanner(src string) *Scanner {
	return &Scanner{source: newSource(src)}
}

// Scan is shorthand for NewScanner(src).ScanTokens().
func Scan(src string) ([]Token, error) {
	return NewScanner(src).ScanTokens()
}

// ScanTokens scans the whole input. On success the result ends with a
// single EOF token. On failure it returns the first error and no tokens.
func (s *Scanner) ScanTokens() ([]Token, error) {
	for !s.atEnd() && s.err == nil {
		s.start = s.current
		s.scanToken()
	}

	if s.err != nil {
		s.tokens = nil
		return nil, s.err
	}

	s.tokens = append(s.tokens, Token{Kind: EOF, Line: s.line})
	return s.tokens, nil
}

// scanToken scans one lexeme starting at s.start.
func (s *Scanner) scanToken() {
	c := s.advance()

	switch c {
	case '(':
		s.addToken(LeftParen)
	case ')':
		s.addToken(RightParen)
	case '{':
		s.addToken(LeftBrace)
	case '}':
		s.addToken(RightBrace)
	case ',':
		s.addToken(Comma)
	case '.':
		s.addToken(Dot)
	case '-':
		s.addToken(Minus)
	case '+':
		s.addToken(Plus)
	case ';':
		s.addToken(Semicolon)
	case '*':
		s.addToken(Star)

	case '!':
		s.addTwoChar('=', BangEqual, Bang)
	case '=':
		s.addTwoChar('=', EqualEqual, Equal)
	case '<':
		s.addTwoChar('=', LessEqual, Less)
	case '>':
		s.addTwoChar('=', GreaterEqual, Greater)

	case '/':
		if s.match('/') {
			s.skipLineComment()
		} else {
			s.addToken(Slash)
		}

	case ' ', '\r', '\t', '\n':
		// advance already counted the newline

	case '"':
		s.scanString()

	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdent()
		default:
			r := s.runeAtStart()
			s.error(fmt.Sprintf("at %q", r), "Unexpected character.")
		}
	}
}

// addToken appends a token of kind k spanning the current lexeme.
func (s *Scanner) addToken(k Kind) {
	s.tokens = append(s.tokens, Token{Kind: k, Lexeme: s.lexeme(), Line: s.line})
}

// addTwoChar appends two if the next byte is second, otherwise one.
func (s *Scanner) addTwoChar(second byte, two, one Kind) {
	if s.match(second) {
		s.addToken(two)
	} else {
		s.addToken(one)
	}
}

// error records the first fatal error; later calls are ignored.
func (s *Scanner) error(where, msg string) {
	if s.err != nil {
		return
	}
	s.err = &ScanError{Line: s.line, Where: where, Msg: msg}
}

// skipLineComment skips a line comment up to, not including, the newline.
func (s *Scanner) skipLineComment() {
	for s.peek() != '\n' && !s.atEnd() {
		s.advance()
	}
}

// scanString scans a string literal. Strings may span lines and have no
// escape sequences.
func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.atEnd() {
		s.advance()
	}

	if s.atEnd() {
		s.error("at end", "Unterminated string.")
		return
	}

	s.advance() // closing "

	tok := Token{Kind: String, Lexeme: s.lexeme(), Line: s.line}
	tok.Text = s.buf[s.start+1 : s.current-1]
	s.tokens = append(s.tokens, tok)
}

// scanNumber scans a number literal. A '.' is only part of the number
// when a digit follows it, so "1." is a number followed by a dot.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume "."
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	lit := s.lexeme()
	n, err := strconv.ParseFloat(lit, 64)
	// Out-of-range literals saturate to +Inf, as float parsing does elsewhere.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		s.error("at '"+lit+"'", "Invalid number literal.")
		return
	}

	tok := Token{Kind: Number, Lexeme: lit, Line: s.line, Number: n}
	s.tokens = append(s.tokens, tok)
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	s.addToken(LookupKeyword(s.lexeme()))
}
