/*
File    : lox/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	Input          string
	ExpectedTokens []Token
}

func TestScan_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			Input: "(){},.-+;*/",
			ExpectedTokens: []Token{
				{Type: LeftParen, Lexeme: "("},
				{Type: RightParen, Lexeme: ")"},
				{Type: LeftBrace, Lexeme: "{"},
				{Type: RightBrace, Lexeme: "}"},
				{Type: Comma, Lexeme: ","},
				{Type: Dot, Lexeme: "."},
				{Type: Minus, Lexeme: "-"},
				{Type: Plus, Lexeme: "+"},
				{Type: Semicolon, Lexeme: ";"},
				{Type: Star, Lexeme: "*"},
				{Type: Slash, Lexeme: "/"},
				{Type: Eof, Lexeme: ""},
			},
		},
		{
			Input: "! != = == < <= > >=",
			ExpectedTokens: []Token{
				{Type: Bang, Lexeme: "!"},
				{Type: BangEqual, Lexeme: "!="},
				{Type: Equal, Lexeme: "="},
				{Type: EqualEqual, Lexeme: "=="},
				{Type: Less, Lexeme: "<"},
				{Type: LessEqual, Lexeme: "<="},
				{Type: Greater, Lexeme: ">"},
				{Type: GreaterEqual, Lexeme: ">="},
				{Type: Eof, Lexeme: ""},
			},
		},
	}

	for _, tc := range tests {
		got, err := Scan(tc.Input)
		require.NoError(t, err)
		require.Equal(t, len(tc.ExpectedTokens), len(got))
		for i, want := range tc.ExpectedTokens {
			assert.Equal(t, want.Type, got[i].Type, "token %d type", i)
			assert.Equal(t, want.Lexeme, got[i].Lexeme, "token %d lexeme", i)
		}
	}
}

func TestScan_Keywords(t *testing.T) {
	got, err := Scan("and class else false for fun if nil or print return super this true var while")
	require.NoError(t, err)
	want := []TokenType{And, Class, Else, False, For, Fun, If, Nil, Or, Print, Return, Super, This, True, Var, While, Eof}
	require.Equal(t, len(want), len(got))
	for i, typ := range want {
		assert.Equal(t, typ, got[i].Type)
	}
}

func TestScan_Identifier(t *testing.T) {
	got, err := Scan("orchid _underscore a12")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, Identifier, got[0].Type)
	assert.Equal(t, "orchid", got[0].Lexeme)
	assert.Equal(t, Identifier, got[1].Type)
	assert.Equal(t, Identifier, got[2].Type)
}

func TestScan_Number(t *testing.T) {
	got, err := Scan("123 3.14 0.5")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, 123.0, got[0].Value)
	assert.Equal(t, 3.14, got[1].Value)
	assert.Equal(t, 0.5, got[2].Value)
}

func TestScan_NumberTrailingDotNotConsumed(t *testing.T) {
	// "1." followed by a non-digit: the '.' is a separate Dot token.
	got, err := Scan("1.method")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, Number, got[0].Type)
	assert.Equal(t, 1.0, got[0].Value)
	assert.Equal(t, Dot, got[1].Type)
	assert.Equal(t, Identifier, got[2].Type)
}

func TestScan_String(t *testing.T) {
	got, err := Scan(`"hello there"`)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, String, got[0].Type)
	assert.Equal(t, "hello there", got[0].Value)
	assert.Equal(t, `"hello there"`, got[0].Lexeme)
}

func TestScan_StringSpansNewlines(t *testing.T) {
	got, err := Scan("\"line1\nline2\"\nprint 1;")
	require.NoError(t, err)
	require.Equal(t, "line1\nline2", got[0].Value)
	// the print statement after the string starts on line 3
	var printTok Token
	for _, tok := range got {
		if tok.Type == Print {
			printTok = tok
			break
		}
	}
	assert.Equal(t, 3, printTok.Line)
}

func TestScan_UnterminatedStringIsFatal(t *testing.T) {
	_, err := Scan(`"no closing quote`)
	require.Error(t, err)
	var scanErr *ScanError
	require.ErrorAs(t, err, &scanErr)
}

func TestScan_LineComment(t *testing.T) {
	got, err := Scan("1 // a comment\n2")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 1.0, got[0].Value)
	assert.Equal(t, 2.0, got[1].Value)
	assert.Equal(t, 2, got[1].Line)
}

func TestScan_UnexpectedCharacter(t *testing.T) {
	_, err := Scan("var x = @;")
	require.Error(t, err)
}

func TestScan_EndsWithSingleEof(t *testing.T) {
	got, err := Scan("print 1;")
	require.NoError(t, err)
	eofCount := 0
	for i, tok := range got {
		if tok.Type == Eof {
			eofCount++
			assert.Equal(t, len(got)-1, i, "Eof must be the last token")
		}
	}
	assert.Equal(t, 1, eofCount)
}
