package query

import (
	"fmt"
	"strings"
)

// reserved words cannot be used as bare identifiers.
var reserved = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true,
	"AND": true, "OR": true, "XOR": true, "NOT": true, "LIKE": true,
	"TRUE": true, "FALSE": true, "NULL": true,
}

// Parse parses a SELECT statement.
//
// Accepted shape:
//
//	SELECT <columns> [FROM <table>] [WHERE <condition>] [;]
//
// Any lexical or syntax failure, trailing input, or a second statement is
// reported as NotValidQuery. The condition is not validated against the
// task schema here; see Compile.
func Parse(src string) (*Statement, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, notValidQuery(err)
	}

	p := newParser(tokens)
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, notValidQuery(err)
	}
	return stmt, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func newParser(tokens []Token) *parser {
	return &parser{tokens: tokens}
}

func (p *parser) current() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return Token{Type: TokenEOF}
}

func (p *parser) peek(offset int) Token {
	if p.pos+offset < len(p.tokens) {
		return p.tokens[p.pos+offset]
	}
	return Token{Type: TokenEOF}
}

func (p *parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) at(typ TokenType) bool {
	return p.current().Type == typ
}

func (p *parser) atKeyword(kw string) bool {
	return p.current().keyword(kw)
}

func (p *parser) atOperator(ops ...string) (string, bool) {
	tok := p.current()
	if tok.Type != TokenOperator {
		return "", false
	}
	for _, op := range ops {
		if tok.Value == op {
			return op, true
		}
	}
	return "", false
}

func (p *parser) unexpected() error {
	tok := p.current()
	if tok.Type == TokenEOF {
		return fmt.Errorf("unexpected end of input")
	}
	return fmt.Errorf("unexpected token at position %d: %s", tok.Pos, tok.Value)
}

func (p *parser) expectKeyword(kw string) error {
	if !p.atKeyword(kw) {
		return fmt.Errorf("expected %s: %w", kw, p.unexpected())
	}
	p.advance()
	return nil
}

func (p *parser) parseStatement() (*Statement, error) {
	if err := p.expectKeyword("SELECT"); err != nil {
		return nil, err
	}

	stmt := &Statement{}
	for {
		col, err := p.parseColumn()
		if err != nil {
			return nil, err
		}
		stmt.Columns = append(stmt.Columns, col)
		if !p.at(TokenComma) {
			break
		}
		p.advance()
	}

	if p.atKeyword("FROM") {
		p.advance()
		tok := p.current()
		if !isIdentifier(tok) {
			return nil, fmt.Errorf("expected table name: %w", p.unexpected())
		}
		p.advance()
		stmt.From = tok.Value
	}

	if p.atKeyword("WHERE") {
		p.advance()
		where, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	if p.at(TokenSemicolon) {
		p.advance()
	}
	if !p.at(TokenEOF) {
		return nil, p.unexpected()
	}
	return stmt, nil
}

// parseColumn returns nil for *.
func (p *parser) parseColumn() (Expr, error) {
	if _, ok := p.atOperator("*"); ok {
		p.advance()
		return nil, nil
	}
	return p.parseAdditive()
}

func (p *parser) parseExpr() (Expr, error) {
	return p.parseOr()
}

// parseOr handles OR (lowest precedence)
func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("OR") {
		p.advance()
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: OpOr, Right: right}
	}
	return left, nil
}

func (p *parser) parseXor() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("XOR") {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: OpXor, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("AND") {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: OpAnd, Right: right}
	}
	return left, nil
}

func (p *parser) parseNot() (Expr, error) {
	if p.atKeyword("NOT") {
		p.advance()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: OpNot, Expr: inner}, nil
	}
	return p.parseComparison()
}

// parseComparison handles =, <>, <, <=, >, >=, [NOT] LIKE. Left associative.
func (p *parser) parseComparison() (Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	for {
		if op, ok := p.atOperator("=", "==", "<>", "!=", "<", "<=", ">", ">="); ok {
			p.advance()
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			left = &BinaryExpr{Left: left, Op: normalizeOperator(op), Right: right}
			continue
		}

		negated := false
		if p.atKeyword("NOT") && p.peek(1).keyword("LIKE") {
			negated = true
			p.advance()
		}
		if p.atKeyword("LIKE") {
			p.advance()
			pattern, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			left = &LikeExpr{Expr: left, Pattern: pattern, Negated: negated}
			continue
		}
		return left, nil
	}
}

func (p *parser) parseAdditive() (Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.atOperator("+", "-", "||")
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: Operator(op), Right: right}
	}
}

func (p *parser) parseMultiplicative() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.atOperator("*", "/", "%")
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: Operator(op), Right: right}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	if op, ok := p.atOperator("-", "+"); ok {
		p.advance()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: Operator(op), Expr: inner}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.current()

	switch tok.Type {
	case TokenLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.at(TokenRParen) {
			return nil, fmt.Errorf("expected ')': %w", p.unexpected())
		}
		p.advance()
		return &Nested{Expr: inner}, nil

	case TokenString:
		p.advance()
		return &StringLit{Value: tok.Value}, nil

	case TokenQuotedIdent:
		p.advance()
		return &Ident{Name: tok.Value, Quoted: true}, nil

	case TokenNumber:
		p.advance()
		return &NumberLit{Value: tok.Value}, nil

	case TokenIdent:
		switch {
		case tok.keyword("TRUE"):
			p.advance()
			return &BoolLit{Value: true}, nil
		case tok.keyword("FALSE"):
			p.advance()
			return &BoolLit{Value: false}, nil
		case tok.keyword("NULL"):
			p.advance()
			return &NullLit{}, nil
		case reserved[strings.ToUpper(tok.Value)]:
			return nil, p.unexpected()
		}
		p.advance()
		if p.at(TokenLParen) {
			return p.parseCall(tok.Value)
		}
		return &Ident{Name: tok.Value}, nil
	}

	return nil, p.unexpected()
}

func (p *parser) parseCall(name string) (Expr, error) {
	p.advance() // (
	call := &FuncCall{Name: name}
	if p.at(TokenRParen) {
		p.advance()
		return call, nil
	}
	for {
		var arg Expr
		if _, ok := p.atOperator("*"); ok && (p.peek(1).Type == TokenRParen || p.peek(1).Type == TokenComma) {
			p.advance()
			arg = &Ident{Name: "*"}
		} else {
			var err error
			arg, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		call.Args = append(call.Args, arg)
		if p.at(TokenComma) {
			p.advance()
			continue
		}
		if !p.at(TokenRParen) {
			return nil, fmt.Errorf("expected ')': %w", p.unexpected())
		}
		p.advance()
		return call, nil
	}
}

func isIdentifier(tok Token) bool {
	if tok.Type == TokenQuotedIdent {
		return true
	}
	return tok.Type == TokenIdent && !reserved[strings.ToUpper(tok.Value)]
}

func normalizeOperator(op string) Operator {
	switch op {
	case "==":
		return OpEq
	case "!=":
		return OpNotEq
	default:
		return Operator(op)
	}
}
