package parser

import (
	"fmt"
	"github.com/sean-d/vih/ast"
	"github.com/sean-d/vih/lexer"
	"github.com/sean-d/vih/token"
	"strconv"
)

// Setting the PEMDAS order of operations for later consideration.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -X or !X
	CALL        // someFunction(X)
	INDEX       // array[index]
)

// precedences maps an infix/call/index token to its binding power. Every
// binary operator is left-associative: parseExpression only recurses into
// a tighter precedence, never an equal one, so `a - b - c` parses as
// `(a - b) - c`.
var precedences = map[token.TokenType]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LT_EQ:    LESSGREATER,
	token.GT_EQ:    LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
}

/*
Pratt Parser

A Pratt parser’s main idea is the association of parsing functions (which Pratt calls “semantic code”) with token types.
Whenever this token type is encountered, the parsing functions are called to parse the appropriate expression and
return an AST node that represents it.
Each token type can have up to two parsing functions associated with it, depending on whether the token is found in a prefix or an infix position.
*/

/*
Both of the following function types return an ast.Expression, since that’s what we’re here to parse.
Only the infixParseFn takes an argument: another ast.Expression. This argument is “left side” of the infix operator that’s being parsed.
A prefix operator doesn’t have a “left side”, per definition.

prefixParseFns gets called when we encounter the associated token type in prefix position and infixParseFn gets called
when we encounter the token type in infix position.
*/
type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(expression ast.Expression) ast.Expression
)

/*
Parser has the following fields:
-lexer is a pointer to an instance of the lexer, on which we repeatedly call NextToken() to get the next token in the input.
-errors holds a slice of strings containing any errors the parsing encounters
-currentToken and peekToken act exactly like the two “pointers” our lexer has: position and readPosition.
-prefixParseFns and infixParseFns maps ensure the correct prefixParseFn or infixParseFn for the current token type

Instead of pointing to a character in the input, they point to the current and the next token.

Both are important: we need to look at the currentToken, which is the current token under examination,
to decide what to do next, and we also need peekToken for this decision if currentToken doesn’t give us enough information.

Think of a single line only containing 5;. Then currentToken is a token.INT and we need peekToken to decide whether
we are at the end of the line or if we are at just the start of an arithmetic expression.
*/
type Parser struct {
	lexer        *lexer.Lexer
	errors       []string
	currentToken token.Token
	peekToken    token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

// New returns a pointer to a Parser
func New(l *lexer.Lexer) *Parser {
	parse := &Parser{
		lexer:  l,
		errors: []string{},
	}

	// initialize the prefixParseFns map on Parser and register parsing functions:
	// EX: if we encounter a token of type token.IDENT the parsing function to call is parseIdentifier, a method we defined on *Parser.
	parse.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	parse.registerPrefix(token.IDENT, parse.parseIdentifier)
	parse.registerPrefix(token.INT, parse.parseIntegerLiteral)
	parse.registerPrefix(token.STRING, parse.parseStringLiteral)
	parse.registerPrefix(token.TRUE, parse.parseBooleanLiteral)
	parse.registerPrefix(token.FALSE, parse.parseBooleanLiteral)
	parse.registerPrefix(token.BANG, parse.parsePrefixExpression)
	parse.registerPrefix(token.MINUS, parse.parsePrefixExpression)
	parse.registerPrefix(token.LPAREN, parse.parseGroupedExpression)
	parse.registerPrefix(token.LBRACKET, parse.parseListLiteral)
	parse.registerPrefix(token.IF, parse.parseIfExpression)
	parse.registerPrefix(token.FUNCTION, parse.parseFunctionLiteral)

	parse.infixParseFns = make(map[token.TokenType]infixParseFn)
	parse.registerInfix(token.PLUS, parse.parseInfixExpression)
	parse.registerInfix(token.MINUS, parse.parseInfixExpression)
	parse.registerInfix(token.SLASH, parse.parseInfixExpression)
	parse.registerInfix(token.ASTERISK, parse.parseInfixExpression)
	parse.registerInfix(token.EQ, parse.parseInfixExpression)
	parse.registerInfix(token.NOT_EQ, parse.parseInfixExpression)
	parse.registerInfix(token.LT, parse.parseInfixExpression)
	parse.registerInfix(token.GT, parse.parseInfixExpression)
	parse.registerInfix(token.LT_EQ, parse.parseInfixExpression)
	parse.registerInfix(token.GT_EQ, parse.parseInfixExpression)
	parse.registerInfix(token.LPAREN, parse.parseCallExpression)
	parse.registerInfix(token.LBRACKET, parse.parseIndexExpression)

	// Read two tokens to set both currentToken and peekToken
	parse.nextToken()
	parse.nextToken()

	return parse
}

// Errors returns a slice of strings containing all parser errors
func (p *Parser) Errors() []string {
	return p.errors
}

// nextToken is a small helper that advances both currentToken and peekToken
func (p *Parser) nextToken() {
	p.currentToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

/*
ParseProgram constructs the root node of the AST, an *ast.Program. It then iterates over every token in the input until
it encounters a token.EOF token. It does this by repeatedly calling nextToken, which advances both p.currentToken and p.peekToken.
In every iteration it calls parseStatement, whose job it is to parse a statement. If parseStatement returned something
other than nil, an ast.Statement, its return value is added to Statements slice of the AST root node.
When nothing is left to parse the *ast.Program root node is returned.

On a malformed statement, parseStatement returns nil and the parser resynchronizes by advancing to the next semicolon,
statement keyword, or EOF, so one bad statement does not cascade into spurious errors for every token after it.
*/
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	program.Statements = []ast.Statement{}

	for p.currentToken.Type != token.EOF {
		statement := p.parseStatement()

		if statement != nil {
			program.Statements = append(program.Statements, statement)
		} else {
			p.resynchronize()
		}
		p.nextToken()
	}
	return program
}

// resynchronize advances the token stream past the rest of a broken
// statement: up to (and including) the next semicolon, or up to (but not
// including) the next statement-starting keyword or EOF. ParseProgram's own
// nextToken() call then moves past that boundary onto the next statement.
func (p *Parser) resynchronize() {
	for !p.currentTokenIs(token.SEMICOLON) && !p.currentTokenIs(token.EOF) {
		switch p.peekToken.Type {
		case token.LET, token.RETURN, token.FOR:
			return
		}
		p.nextToken()
	}
}

// parseStatement checks the Type of the current token.
func (p *Parser) parseStatement() ast.Statement {
	switch p.currentToken.Type {
	case token.LET:
		if stmt := p.parseLetStatement(); stmt != nil {
			return stmt
		}
	case token.RETURN:
		return p.parseReturnStatement()
	case token.FOR:
		if stmt := p.parseForStatement(); stmt != nil {
			return stmt
		}
	default:
		if stmt := p.parseExpressionStatement(); stmt.Expression != nil {
			return stmt
		}
	}
	return nil
}

/*
parseLetStatement constructs an *ast.LetStatement node with the token it’s currently sitting on (a token.LET token) and
then advances the tokens while making assertions about the next token with calls to expectPeek.

First it expects a token.IDENT token, which it then uses to construct an *ast.Identifier node. Then it expects an
equal sign, and finally it parses the expression that follows at LOWEST precedence.
*/
func (p *Parser) parseLetStatement() *ast.LetStatement {
	stmt := &ast.LetStatement{
		Token: p.currentToken,
	}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt.Name = &ast.Identifier{
		Token: p.currentToken,
		Value: p.currentToken.Literal,
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseReturnStatement constructs an ast.ReturnStatement, with the current token it’s sitting on as Token.
// A bare `return;` (or a return immediately followed by the block's closing brace) is tolerated: ReturnValue
// stays nil and the evaluator supplies NULL for it.
func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	statement := &ast.ReturnStatement{Token: p.currentToken}

	if p.peekTokenIs(token.RBRACE) {
		return statement
	}

	p.nextToken()

	if p.currentTokenIs(token.SEMICOLON) {
		return statement
	}

	statement.ReturnValue = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return statement
}

// parseForStatement parses the three-clause C-style loop:
// for ( ID = EXPR ; EXPR ; let ID = EXPR ) { BLOCK }
func (p *Parser) parseForStatement() *ast.ForStatement {
	stmt := &ast.ForStatement{Token: p.currentToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Counter = &ast.Identifier{Token: p.currentToken, Value: p.currentToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.nextToken()
	stmt.InitialValue = p.parseExpression(LOWEST)

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}

	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}

	p.nextToken()
	updateRule := p.parseLetStatement()
	if updateRule == nil {
		return nil
	}
	stmt.UpdateRule = updateRule

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	stmt.Body = p.parseBlockStatement()

	return stmt
}

/*
parseExpressionStatement builds an AST node and then attempts to fill its field by calling other parsing functions.
In this case there are a few differences though: we call parseExpression() with the constant LOWEST, and then we check
for an optional semicolon. Yes, it’s optional. If the peekToken is a token.SEMICOLON, we advance so it’s the currentToken.
If it’s not there, that’s okay too, we don’t add an error to the parser if it’s not there.
Expression statements have optional semicolons (which makes it easier to type something like 5 + 5 into the REPL later on).
*/
func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	statement := &ast.ExpressionStatement{
		Token:      p.currentToken,
		Expression: nil,
	}

	statement.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return statement
}

// parseBlockStatement parses a brace-delimited sequence of statements.
// currentToken is the '{' on entry, the matching '}' on exit.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.currentToken}
	block.Statements = []ast.Statement{}

	p.nextToken()

	for !p.currentTokenIs(token.RBRACE) && !p.currentTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.resynchronize()
		}
		p.nextToken()
	}

	return block
}

// currentTokenIs returns the bool repr of asserting if the current token is of an assumed type
func (p *Parser) currentTokenIs(t token.TokenType) bool {
	return p.currentToken.Type == t
}

// peekTokenIs returns the bool repr of asserting if the next token is of an assumed type
func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

/*
expectPeek method is one of the “assertion functions” nearly all parsers share. Their primary purpose is to enforce
the correctness of the order of tokens by checking the type of the next token.

Our expectPeek here checks the type of the peekToken and only if the type is correct does it advance the tokens by
calling nextToken.
*/
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	} else {
		p.peekError(t)
		return false
	}
}

/*
prefixParseFns gets called when we encounter the associated token type in prefix position and
infixParseFn gets called when we encounter the token type in infix position.
*/

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// peekError adds an error to p.errors when the type of peekToken does not match the expectation.
func (p *Parser) peekError(tok token.TokenType) {
	message := fmt.Sprintf("Expected next token to be %s, got %s.", tok, p.peekToken.Type)

	p.errors = append(p.errors, message)
}

// noPrefixParseFnError just adds a formatted error message to our parser’s errors field.
func (p *Parser) noPrefixParseFnError(t token.TokenType) {
	msg := fmt.Sprintf("No prefix parser function for %s", t)
	p.errors = append(p.errors, msg)
}

// parseExpression checks if a parsing function is associated with p.currentToken.Type in the prefix position.
// If true, the parsing function is called to build the left-hand side. Then, while the next token's precedence
// outranks the precedence we were called with, we consume it as an infix operator and fold it into the left-hand
// side, producing the usual left-associative, precedence-climbing parse tree.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.currentToken.Type]

	if prefix == nil {
		p.noPrefixParseFnError(p.currentToken.Type)
		return nil
	}

	leftExp := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}

		p.nextToken()

		leftExp = infix(leftExp)
	}

	return leftExp
}

// peekPrecedence returns the precedence of p.peekToken, or LOWEST if the
// token isn't a registered infix operator (e.g. it's a semicolon or EOF).
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// currentPrecedence mirrors peekPrecedence for p.currentToken.
func (p *Parser) currentPrecedence() int {
	if prec, ok := precedences[p.currentToken.Type]; ok {
		return prec
	}
	return LOWEST
}

/*
parseIdentifier returns a *ast.Identifier with the current token in the Token field and the literal value of the token in Value.

Note: It doesn’t advance the tokens, it doesn’t call nextToken; we simply start with currentToken being the type of token
you’re associated with and return with curToken being the last token that’s part of your expression type.
Never advance the tokens too far.
*/
func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{
		Token: p.currentToken,
		Value: p.currentToken.Literal,
	}
}

// parseIntegerLiteral makes a call to strconv.ParseInt, which converts the string in p.currentToken.Literal into an int64.
// The int64 then gets saved to the Value field, and we return the newly constructed *ast.IntegerLiteral node.
// If that doesn’t work, we add a new error to the parser’s errors field.
func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.currentToken}

	value, err := strconv.ParseInt(p.currentToken.Literal, 0, 64)
	if err != nil {
		msg := fmt.Sprintf("could not parse %q as integer", p.currentToken.Literal)
		p.errors = append(p.errors, msg)
		return nil
	}

	lit.Value = value

	return lit
}

// parseStringLiteral returns a *ast.StringLiteral holding the lexer's already-unquoted contents.
func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.currentToken, Value: p.currentToken.Literal}
}

// parseBooleanLiteral handles the `true`/`false` keywords.
func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.currentToken, Value: p.currentTokenIs(token.TRUE)}
}

// parseGroupedExpression parses a parenthesized expression: ( EXPR ). It
// discards the parens themselves; they exist only to override precedence.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return exp
}

// parseListLiteral parses a bracketed, comma-separated list of expressions: [1, 2, 3].
func (p *Parser) parseListLiteral() ast.Expression {
	list := &ast.ListLiteral{Token: p.currentToken}
	list.Elements = p.parseExpressionList(token.RBRACKET)
	return list
}

// parseExpressionList parses a comma-separated list of expressions up to and
// including `end`, shared by list literals and call arguments. An empty list
// (end immediately after the opener) yields an empty, non-nil slice.
func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

// parseIfExpression parses `if ( COND ) { CONSEQUENCE } (else { ALTERNATIVE })?`.
// The parentheses around the condition are mandatory.
func (p *Parser) parseIfExpression() ast.Expression {
	expression := &ast.IfExpression{Token: p.currentToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken()
	expression.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	expression.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()

		if !p.expectPeek(token.LBRACE) {
			return nil
		}

		expression.Alternative = p.parseBlockStatement()
	}

	return expression
}

// parseFunctionLiteral parses `func ( params ) { BODY }`.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.currentToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	lit.Body = p.parseBlockStatement()

	return lit
}

// parseFunctionParameters parses a (possibly empty) comma-separated list of
// identifiers. No default values, no rest parameter.
func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	identifiers := []*ast.Identifier{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return identifiers
	}

	p.nextToken()

	ident := &ast.Identifier{Token: p.currentToken, Value: p.currentToken.Literal}
	identifiers = append(identifiers, ident)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		ident := &ast.Identifier{Token: p.currentToken, Value: p.currentToken.Literal}
		identifiers = append(identifiers, ident)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return identifiers
}

/*
parsePrefixExpression builds an AST node, in this case *ast.PrefixExpression, just like the parsing functions we saw before.

But then it does something different: it actually advances our tokens by calling p.nextToken().

When parsePrefixExpression is called, p.currentToken is either of type token.BANG or token.MINUS, because otherwise it
wouldn’t have been called. But in order to correctly parse a prefix expression like -5 more than one token has to be “consumed”.
So after using p.currentToken to build a *ast.PrefixExpression node, the method advances the tokens and calls parseExpression again.
This time with the precedence of prefix operators as argument.
*/
func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.currentToken,
		Operator: p.currentToken.Literal,
	}

	p.nextToken()

	expression.Right = p.parseExpression(PREFIX)

	return expression
}

// parseInfixExpression is called once p.currentToken is sitting on the
// operator and `left` has already been parsed. It reads the operator's own
// precedence before advancing, so the right-hand recursion stops at the
// correct point to give left-associativity.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.currentToken,
		Left:     left,
		Operator: p.currentToken.Literal,
	}

	precedence := p.currentPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)

	return expression
}

// parseCallExpression is the infix handler registered for '(': CALLEE ( args ).
// Chaining (f(1)(2)) falls out for free since the result is itself an
// expression that can become the left-hand side of another '(' infix.
func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.currentToken, Callee: callee}
	exp.Arguments = p.parseExpressionList(token.RPAREN)
	return exp
}

// parseIndexExpression is the infix handler registered for '[': COLLECTION [ INDEX ].
// Chaining (a[1][2]) falls out the same way as call chaining.
func (p *Parser) parseIndexExpression(collection ast.Expression) ast.Expression {
	exp := &ast.IndexExpression{Token: p.currentToken, Collection: collection}

	p.nextToken()
	exp.Index = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}

	return exp
}
