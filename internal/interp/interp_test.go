package interp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/lox/internal/syntax"
)

func eval(t *testing.T, src string) (Value, error) {
	t.Helper()
	x, err := syntax.ParseString(src)
	require.NoError(t, err, "parse %q", src)
	return Evaluate(x)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Value
	}{
		// Literals and grouping
		{"number", "42", Number(42)},
		{"fraction", "4.25", Number(4.25)},
		{"string", `"hi"`, Text("hi")},
		{"empty_string", `""`, Text("")},
		{"true", "true", Bool(true)},
		{"false", "false", Bool(false)},
		{"nil", "nil", Nil{}},
		{"group", "((7))", Number(7)},

		// Arithmetic
		{"add", "1 + 2", Number(3)},
		{"sub", "5 - 8", Number(-3)},
		{"mul", "2.5 * 4", Number(10)},
		{"div", "6 / 2", Number(3)},
		{"div_fraction", "1 / 4", Number(0.25)},
		{"precedence", "2 + 3 * 4", Number(14)},
		{"grouped", "(2 + 3) * 4", Number(20)},
		{"left_assoc", "10 - 3 - 2", Number(5)},
		{"left_assoc_div", "8 / 4 / 2", Number(1)},

		// Unary
		{"negate", "-3", Number(-3)},
		{"double_negate", "--5", Number(5)},
		{"not_not", "!!true", Bool(true)},
		{"not_true", "!true", Bool(false)},

		// Truthiness
		{"not_nil", "!nil", Bool(true)},
		{"not_false", "!false", Bool(true)},
		{"not_zero", "!0", Bool(false)},
		{"not_empty_string", `!""`, Bool(false)},
		{"not_string", `!"x"`, Bool(false)},

		// Comparison
		{"gt", "2 > 1", Bool(true)},
		{"ge", "1 >= 1", Bool(true)},
		{"lt", "2 < 1", Bool(false)},
		{"le", "1 <= 0.5", Bool(false)},
		{"num_eq", "1 == 1.0", Bool(true)},
		{"num_ne", "1 != 2", Bool(true)},
		{"compare_chain", "1 < 2 == true", Bool(true)},

		// Strings
		{"concat", `"foo" + "bar"`, Text("foobar")},
		{"concat_empty", `"" + ""`, Text("")},
		{"concat_multiline", "\"a\nb\" + \"c\"", Text("a\nbc")},

		// Equality of nil and booleans
		{"nil_eq", "nil == nil", Bool(true)},
		{"nil_ne", "nil != nil", Bool(false)},
		{"bool_eq", "true == true", Bool(true)},
		{"bool_eq_false", "true == false", Bool(false)},
		{"bool_ne", "false != true", Bool(true)},
		{"bool_from_compare", "(1 < 2) == (3 < 4)", Bool(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval(t, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateFloatSemantics(t *testing.T) {
	v, err := eval(t, "1 / 0")
	require.NoError(t, err)
	assert.Equal(t, "inf", v.String())

	v, err = eval(t, "-1 / 0")
	require.NoError(t, err)
	assert.Equal(t, "-inf", v.String())

	v, err = eval(t, "0 / 0")
	require.NoError(t, err)
	assert.Equal(t, "NaN", v.String())

	// NaN is not equal to itself
	v, err = eval(t, "0 / 0 == 0 / 0")
	require.NoError(t, err)
	assert.Equal(t, Bool(false), v)

	a, b := 0.1, 0.2
	v, err = eval(t, "0.1 + 0.2")
	require.NoError(t, err)
	assert.Equal(t, Number(a+b), v)
	assert.Equal(t, "0.30000000000000004", v.String())
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"negate_string", `-"a"`, "[line 1] Error at '-': Operand must be a number; got string."},
		{"negate_bool", "-true", "[line 1] Error at '-': Operand must be a number; got boolean."},
		{"negate_nil", "-nil", "[line 1] Error at '-': Operand must be a number; got nil."},
		{"string_plus_number", `"a" + 1`, "[line 1] Error at '+': Unsupported operands for '+': string and number."},
		{"number_plus_string", `1 + "a"`, "[line 1] Error at '+': Unsupported operands for '+': number and string."},
		{"mixed_equality", `1 == "1"`, "[line 1] Error at '==': Unsupported operands for '==': number and string."},
		{"nil_eq_false", "nil == false", "[line 1] Error at '==': Unsupported operands for '==': nil and boolean."},
		{"string_equality", `"a" == "a"`, "[line 1] Error at '==': Unsupported operands for '==': string and string."},
		{"string_minus", `"a" - "b"`, "[line 1] Error at '-': Unsupported operands for '-': string and string."},
		{"string_compare", `"a" < "b"`, "[line 1] Error at '<': Unsupported operands for '<': string and string."},
		{"bool_plus", "true + false", "[line 1] Error at '+': Unsupported operands for '+': boolean and boolean."},
		{"bool_compare", "true > false", "[line 1] Error at '>': Unsupported operands for '>': boolean and boolean."},
		{"nil_plus", "nil + nil", "[line 1] Error at '+': Unsupported operands for '+': nil and nil."},
		{"nested", "1 + (2 * -nil)", "[line 1] Error at '-': Operand must be a number; got nil."},
		{"later_line", "1 +\n\n(true * 2)", "[line 3] Error at '*': Unsupported operands for '*': boolean and number."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := eval(t, tt.src)
			require.Error(t, err)
			assert.Nil(t, v, "no partial value on error")

			var re *RuntimeError
			require.True(t, errors.As(err, &re), "want *RuntimeError, got %T", err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

// The left operand's error wins even if the right one would also fail.
func TestEvaluateLeftToRight(t *testing.T) {
	_, err := eval(t, `-"left" + -"right"`)
	require.Error(t, err)

	var re *RuntimeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 1, re.Token.Line)

	x := syntax.NewBinary(
		syntax.NewUnary(syntax.Token{Kind: syntax.Minus, Lexeme: "-", Line: 1}, syntax.NewLiteral(syntax.Token{Kind: syntax.Nil, Lexeme: "nil", Line: 1})),
		syntax.Token{Kind: syntax.Plus, Lexeme: "+", Line: 2},
		syntax.NewUnary(syntax.Token{Kind: syntax.Minus, Lexeme: "-", Line: 3}, syntax.NewLiteral(syntax.Token{Kind: syntax.Nil, Lexeme: "nil", Line: 3})),
	)
	_, err = Evaluate(x)
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 1, re.Token.Line)
}

func TestEvaluateUnrecognizedLiteral(t *testing.T) {
	x := syntax.NewLiteral(syntax.Token{Kind: syntax.Identifier, Lexeme: "foo", Line: 2})
	_, err := Evaluate(x)
	require.Error(t, err)
	assert.Equal(t, "[line 2] Error at 'foo': Unrecognized literal.", err.Error())
}

func TestEvaluateUnrecognizedUnary(t *testing.T) {
	one := syntax.NewLiteral(syntax.Token{Kind: syntax.Number, Lexeme: "1", Number: 1, Line: 1})
	x := syntax.NewUnary(syntax.Token{Kind: syntax.Plus, Lexeme: "+", Line: 1}, one)
	_, err := Evaluate(x)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unrecognized unary operator.")
}

func TestInterpret(t *testing.T) {
	var out bytes.Buffer
	in := New(&out)

	for _, src := range []string{"1 + 2", `"foo" + "bar"`, "!nil", "nil", "1 / 0", "7 / 2"} {
		x, err := syntax.ParseString(src)
		require.NoError(t, err)
		require.NoError(t, in.Interpret(x))
	}
	assert.Equal(t, "3\nfoobar\ntrue\nnil\ninf\n3.5\n", out.String())
}

func TestInterpretErrorWritesNothing(t *testing.T) {
	var out bytes.Buffer
	in := New(&out)

	x, err := syntax.ParseString(`"a" + 1`)
	require.NoError(t, err)
	require.Error(t, in.Interpret(x))
	assert.Empty(t, out.String())
}

// Evaluation never changes the tree, so evaluating twice gives the same
// result.
func TestEvaluateIsPure(t *testing.T) {
	x, err := syntax.ParseString("(1 + 2) * -3 >= -9")
	require.NoError(t, err)
	before := syntax.Sprint(x)

	in := New(nil)
	v1, err := in.Evaluate(x)
	require.NoError(t, err)
	v2, err := in.Evaluate(x)
	require.NoError(t, err)

	assert.Equal(t, Bool(true), v1)
	assert.Equal(t, v1, v2)
	assert.Equal(t, before, syntax.Sprint(x))
}
