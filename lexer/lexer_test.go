package lexer

import (
	"fmt"
	"github.com/sean-d/vih/token"
	"testing"
)

func TestNextToken(t *testing.T) {
	t.Run("Basic Test", func(t *testing.T) {
		input := `=+(){}[],;`

		tests := []struct {
			expectedType    token.TokenType
			expectedLiteral string
		}{
			{token.ASSIGN, "="},
			{token.PLUS, "+"},
			{token.LPAREN, "("},
			{token.RPAREN, ")"},
			{token.LBRACE, "{"},
			{token.RBRACE, "}"},
			{token.LBRACKET, "["},
			{token.RBRACKET, "]"},
			{token.COMMA, ","},
			{token.SEMICOLON, ";"},
			{token.EOF, ""},
		}

		l := New(input)

		for i, tt := range tests {
			tok := l.NextToken()
			fmt.Printf("%#v\n", tok)

			if tok.Type != tt.expectedType {
				t.Fatalf("test[%d] - token type wrong. got %q wanted %q", i, tok.Type, tt.expectedType)
			}

			if tok.Literal != tt.expectedLiteral {
				t.Fatalf("test[%d] - literal wrong. got %q wanted %q", i, tok.Literal, tt.expectedLiteral)
			}
		}
	})

	t.Run("Syntax Test", func(t *testing.T) {
		input := `let five = 5;
let ten = 10;
   let add = func(x, y) {
     x + y;
};
   let result = add(five, ten);
   `
		tests := []struct {
			expectedType    token.TokenType
			expectedLiteral string
		}{
			{token.LET, "let"},
			{token.IDENT, "five"},
			{token.ASSIGN, "="},
			{token.INT, "5"},
			{token.SEMICOLON, ";"},
			{token.LET, "let"},
			{token.IDENT, "ten"},
			{token.ASSIGN, "="},
			{token.INT, "10"},
			{token.SEMICOLON, ";"},
			{token.LET, "let"},
			{token.IDENT, "add"},
			{token.ASSIGN, "="},
			{token.FUNCTION, "func"},
			{token.LPAREN, "("},
			{token.IDENT, "x"},
			{token.COMMA, ","},
			{token.IDENT, "y"},
			{token.RPAREN, ")"},
			{token.LBRACE, "{"},
			{token.IDENT, "x"},
			{token.PLUS, "+"},
			{token.IDENT, "y"},
			{token.SEMICOLON, ";"},
			{token.RBRACE, "}"},
			{token.SEMICOLON, ";"},
			{token.LET, "let"},
			{token.IDENT, "result"},
			{token.ASSIGN, "="},
			{token.IDENT, "add"},
			{token.LPAREN, "("},
			{token.IDENT, "five"},
			{token.COMMA, ","},
			{token.IDENT, "ten"},
			{token.RPAREN, ")"},
			{token.SEMICOLON, ";"},
			{token.EOF, ""},
		}

		l := New(input)

		for i, tt := range tests {
			tok := l.NextToken()
			fmt.Printf("%#v\n", tok)

			if tok.Type != tt.expectedType {
				t.Fatalf("test[%d] - token type wrong. got %q wanted %q", i, tok.Type, tt.expectedType)
			}

			if tok.Literal != tt.expectedLiteral {
				t.Fatalf("test[%d] - literal wrong. got %q wanted %q", i, tok.Literal, tt.expectedLiteral)
			}
		}

	})

	t.Run("Operators Test", func(t *testing.T) {
		input := `== != <= >= < > ! - / * 5; "hello world"; // a comment
5`

		tests := []struct {
			expectedType    token.TokenType
			expectedLiteral string
		}{
			{token.EQ, "=="},
			{token.NOT_EQ, "!="},
			{token.LT_EQ, "<="},
			{token.GT_EQ, ">="},
			{token.LT, "<"},
			{token.GT, ">"},
			{token.BANG, "!"},
			{token.MINUS, "-"},
			{token.SLASH, "/"},
			{token.ASTERISK, "*"},
			{token.INT, "5"},
			{token.SEMICOLON, ";"},
			{token.STRING, "hello world"},
			{token.SEMICOLON, ";"},
			{token.INT, "5"},
			{token.EOF, ""},
		}

		l := New(input)

		for i, tt := range tests {
			tok := l.NextToken()
			fmt.Printf("%#v\n", tok)

			if tok.Type != tt.expectedType {
				t.Fatalf("test[%d] - token type wrong. got %q wanted %q", i, tok.Type, tt.expectedType)
			}

			if tok.Literal != tt.expectedLiteral {
				t.Fatalf("test[%d] - literal wrong. got %q wanted %q", i, tok.Literal, tt.expectedLiteral)
			}
		}
	})

	t.Run("For Loop And List Test", func(t *testing.T) {
		input := `let a = [1, 2, 3];
for (i = 0; i <= 2; let i = i + 1) {
  puts(a[i]);
}`

		tests := []struct {
			expectedType    token.TokenType
			expectedLiteral string
		}{
			{token.LET, "let"},
			{token.IDENT, "a"},
			{token.ASSIGN, "="},
			{token.LBRACKET, "["},
			{token.INT, "1"},
			{token.COMMA, ","},
			{token.INT, "2"},
			{token.COMMA, ","},
			{token.INT, "3"},
			{token.RBRACKET, "]"},
			{token.SEMICOLON, ";"},
			{token.FOR, "for"},
			{token.LPAREN, "("},
			{token.IDENT, "i"},
			{token.ASSIGN, "="},
			{token.INT, "0"},
			{token.SEMICOLON, ";"},
			{token.IDENT, "i"},
			{token.LT_EQ, "<="},
			{token.INT, "2"},
			{token.SEMICOLON, ";"},
			{token.LET, "let"},
			{token.IDENT, "i"},
			{token.ASSIGN, "="},
			{token.IDENT, "i"},
			{token.PLUS, "+"},
			{token.INT, "1"},
			{token.RPAREN, ")"},
			{token.LBRACE, "{"},
			{token.IDENT, "puts"},
			{token.LPAREN, "("},
			{token.IDENT, "a"},
			{token.LBRACKET, "["},
			{token.IDENT, "i"},
			{token.RBRACKET, "]"},
			{token.RPAREN, ")"},
			{token.SEMICOLON, ";"},
			{token.RBRACE, "}"},
			{token.EOF, ""},
		}

		l := New(input)

		for i, tt := range tests {
			tok := l.NextToken()

			if tok.Type != tt.expectedType {
				t.Fatalf("test[%d] - token type wrong. got %q wanted %q", i, tok.Type, tt.expectedType)
			}

			if tok.Literal != tt.expectedLiteral {
				t.Fatalf("test[%d] - literal wrong. got %q wanted %q", i, tok.Literal, tt.expectedLiteral)
			}
		}
	})
}
