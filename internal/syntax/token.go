// Package syntax implements lexical and syntactic analysis for lox expressions.
package syntax

import (
	"fmt"
	"strconv"
)

// Kind represents the type of a lexical token.
type Kind uint

const (
	// Single-character tokens
	LeftParen  Kind = iota // (
	RightParen             // )
	LeftBrace              // {
	RightBrace             // }
	Comma                  // ,
	Dot                    // .
	Minus                  // -
	Plus                   // +
	Semicolon              // ;
	Slash                  // /
	Star                   // *

	// One or two character tokens
	Bang         // !
	BangEqual    // !=
	Equal        // =
	EqualEqual   // ==
	Greater      // >
	GreaterEqual // >=
	Less         // <
	LessEqual    // <=

	// Literals
	Identifier
	String
	Number

	// Keywords
	And
	Class
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	EOF

	kindCount
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	LeftParen:  "(",
	RightParen: ")",
	LeftBrace:  "{",
	RightBrace: "}",
	Comma:      ",",
	Dot:        ".",
	Minus:      "-",
	Plus:       "+",
	Semicolon:  ";",
	Slash:      "/",
	Star:       "*",

	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",

	Identifier: "IDENT",
	String:     "STRING",
	Number:     "NUMBER",

	And:    "and",
	Class:  "class",
	Else:   "else",
	False:  "false",
	For:    "for",
	Fun:    "fun",
	If:     "if",
	Nil:    "nil",
	Or:     "or",
	Print:  "print",
	Return: "return",
	Super:  "super",
	This:   "this",
	True:   "true",
	Var:    "var",
	While:  "while",

	EOF: "EOF",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsKeyword reports whether k is a keyword kind.
func (k Kind) IsKeyword() bool {
	return k >= And && k <= While
}

// IsLiteral reports whether k can appear as a Literal node:
// a number, a string, or one of the keyword literals true, false and nil.
func (k Kind) IsLiteral() bool {
	switch k {
	case Number, String, True, False, Nil:
		return true
	}
	return false
}

// keywords maps reserved words to their kind.
var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// LookupKeyword returns the kind for the given identifier text.
// If the text is a reserved word, returns the keyword kind.
// Otherwise, returns Identifier.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Identifier
}

// Token is one classified lexeme.
type Token struct {
	Kind   Kind
	Lexeme string  // exact source text, quotes included for strings
	Line   int     // 1-based line number
	Number float64 // value of a Number token
	Text   string  // contents of a String token, without quotes
}

// String returns a compact description of the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return fmt.Sprintf("%d:EOF", t.Line)
	case Number:
		return fmt.Sprintf("%d:NUMBER %s", t.Line, strconv.FormatFloat(t.Number, 'g', -1, 64))
	case String:
		return fmt.Sprintf("%d:STRING %q", t.Line, t.Text)
	case Identifier:
		return fmt.Sprintf("%d:IDENT %s", t.Line, t.Lexeme)
	}
	return fmt.Sprintf("%d:%s", t.Line, t.Kind)
}
