package query

import (
	"fmt"
	"strings"
)

// TokenType classifies lexer output.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenQuotedIdent // "double quoted"
	TokenString      // 'single quoted'
	TokenNumber
	TokenOperator
	TokenLParen
	TokenRParen
	TokenComma
	TokenSemicolon
)

// Token is a lexeme with its byte offset in the input.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// keyword reports whether the token is the given keyword, ignoring case.
func (t Token) keyword(kw string) bool {
	return t.Type == TokenIdent && strings.EqualFold(t.Value, kw)
}

// operators is ordered longest first so that "<=" wins over "<".
var operators = []string{"<=", ">=", "<>", "!=", "==", "||", "=", "<", ">", "+", "-", "*", "/", "%"}

// Tokenize splits a query string into tokens, terminated by TokenEOF.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	pos := 0

	for pos < len(input) {
		ch := input[pos]

		if isSpace(ch) {
			pos++
			continue
		}

		switch ch {
		case '(':
			tokens = append(tokens, Token{Type: TokenLParen, Value: "(", Pos: pos})
			pos++
			continue
		case ')':
			tokens = append(tokens, Token{Type: TokenRParen, Value: ")", Pos: pos})
			pos++
			continue
		case ',':
			tokens = append(tokens, Token{Type: TokenComma, Value: ",", Pos: pos})
			pos++
			continue
		case ';':
			tokens = append(tokens, Token{Type: TokenSemicolon, Value: ";", Pos: pos})
			pos++
			continue
		case '\'', '"':
			value, next, err := readQuoted(input, pos)
			if err != nil {
				return nil, err
			}
			typ := TokenString
			if ch == '"' {
				typ = TokenQuotedIdent
			}
			tokens = append(tokens, Token{Type: typ, Value: value, Pos: pos})
			pos = next
			continue
		}

		if op := matchOperator(input[pos:]); op != "" {
			tokens = append(tokens, Token{Type: TokenOperator, Value: op, Pos: pos})
			pos += len(op)
			continue
		}

		if isDigit(input[pos]) || (input[pos] == '.' && pos+1 < len(input) && isDigit(input[pos+1])) {
			start := pos
			for pos < len(input) && (isDigit(input[pos]) || input[pos] == '.') {
				pos++
			}
			tokens = append(tokens, Token{Type: TokenNumber, Value: input[start:pos], Pos: start})
			continue
		}

		if isIdentStart(input[pos]) {
			start := pos
			for pos < len(input) && isIdentPart(input[pos]) {
				pos++
			}
			tokens = append(tokens, Token{Type: TokenIdent, Value: input[start:pos], Pos: start})
			continue
		}

		return nil, fmt.Errorf("unexpected character %q at position %d", ch, pos)
	}

	tokens = append(tokens, Token{Type: TokenEOF, Pos: pos})
	return tokens, nil
}

// readQuoted reads a quoted run starting at input[start]. A doubled quote
// character inside the run stands for one literal quote.
func readQuoted(input string, start int) (string, int, error) {
	quote := input[start]
	var sb strings.Builder
	pos := start + 1
	for pos < len(input) {
		if input[pos] == quote {
			if pos+1 < len(input) && input[pos+1] == quote {
				sb.WriteByte(quote)
				pos += 2
				continue
			}
			return sb.String(), pos + 1, nil
		}
		sb.WriteByte(input[pos])
		pos++
	}
	return "", 0, fmt.Errorf("unterminated quoted string at position %d", start)
}

func matchOperator(s string) string {
	for _, op := range operators {
		if strings.HasPrefix(s, op) {
			return op
		}
	}
	return ""
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
