package syntax

import "unicode/utf8"

// source is a byte cursor over the input with line tracking.
// The lexeme of the token being scanned is buf[start:current].
type source struct {
	buf string // source text, retained so lexemes can slice it

	start   int // offset of the first byte of the current lexeme
	current int // offset of the next unread byte
	line    int // current line number (1-based)
}

func newSource(src string) source {
	return source{buf: src, line: 1}
}

// atEnd reports whether all input has been consumed.
func (s *source) atEnd() bool {
	return s.current >= len(s.buf)
}

// advance consumes and returns the next byte.
// Newlines are counted here, so every consumed '\n' bumps the line,
// whether it is between tokens, inside a string or ends a comment.
func (s *source) advance() byte {
	c := s.buf[s.current]
	s.current++
	if c == '\n' {
		s.line++
	}
	return c
}

// match consumes the next byte only if it equals expected.
func (s *source) match(expected byte) bool {
	if s.atEnd() || s.buf[s.current] != expected {
		return false
	}
	s.current++
	return true
}

// peek returns the next byte without consuming it, or 0 at end of input.
func (s *source) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.buf[s.current]
}

// peekNext returns the byte after the next one, or 0 past end of input.
func (s *source) peekNext() byte {
	if s.current+1 >= len(s.buf) {
		return 0
	}
	return s.buf[s.current+1]
}

// lexeme returns the text of the token being scanned.
func (s *source) lexeme() string {
	return s.buf[s.start:s.current]
}

// runeAtStart decodes the full character that begins the current lexeme
// and consumes the rest of its bytes, so error messages show the whole rune.
func (s *source) runeAtStart() rune {
	r, width := utf8.DecodeRuneInString(s.buf[s.start:])
	if s.start+width > s.current {
		s.current = s.start + width
	}
	return r
}

// Character classification helpers

// isAlpha reports whether c is an ASCII letter or underscore.
func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// isDigit reports whether c is a decimal digit (0-9).
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
