package syntax

import "fmt"

// FormatError renders a diagnostic in the form
//
//	[line N] Error <where>: <message>
//
// where is usually "at 'lexeme'" or "at end"; it may be empty.
func FormatError(line int, where, msg string) string {
	return fmt.Sprintf("[line %d] Error %s: %s", line, where, msg)
}

// Where describes the location of tok for use in FormatError.
func Where(tok Token) string {
	if tok.Kind == EOF {
		return "at end"
	}
	return "at '" + tok.Lexeme + "'"
}

// ScanError is a fatal lexical error. Scanning stops at the first one.
type ScanError struct {
	Line  int
	Where string
	Msg   string
}

func (e *ScanError) Error() string {
	return FormatError(e.Line, e.Where, e.Msg)
}

// ParseError is a syntax error located at the offending token.
type ParseError struct {
	Token Token
	Msg   string
}

func (e *ParseError) Error() string {
	return FormatError(e.Token.Line, Where(e.Token), e.Msg)
}
