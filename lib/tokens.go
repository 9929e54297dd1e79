package lib

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	TokenTypeOpenParens TokenType = iota
	TokenTypeCloseParens
	TokenTypeNumber
	TokenTypeIdentifier
)

var tokenTypeNames = map[TokenType]string{
	TokenTypeOpenParens:  "OpenParens",
	TokenTypeCloseParens: "CloseParens",
	TokenTypeNumber:      "Number",
	TokenTypeIdentifier:  "Identifier",
}

func (t TokenType) String() string {
	name, ok := tokenTypeNames[t]
	if !ok {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return name
}

func tokenTypeFromName(name string) (TokenType, bool) {
	for typ, n := range tokenTypeNames {
		if n == name {
			return typ, true
		}
	}
	return 0, false
}

// Token is one lexical unit. Value is only set for numbers and identifiers
// and holds the matched characters exactly as they appeared in the source.
type Token struct {
	Type  TokenType
	Value string
}

func OpenParens() Token {
	return Token{Type: TokenTypeOpenParens}
}

func CloseParens() Token {
	return Token{Type: TokenTypeCloseParens}
}

func Number(digits string) Token {
	return Token{Type: TokenTypeNumber, Value: digits}
}

func Identifier(name string) Token {
	return Token{Type: TokenTypeIdentifier, Value: name}
}

// Text returns the source text the token was scanned from.
func (t Token) Text() string {
	switch t.Type {
	case TokenTypeOpenParens:
		return "("
	case TokenTypeCloseParens:
		return ")"
	default:
		return t.Value
	}
}

func (t Token) String() string {
	switch t.Type {
	case TokenTypeNumber, TokenTypeIdentifier:
		return fmt.Sprintf("%s(%q)", t.Type, t.Value)
	default:
		return t.Type.String()
	}
}

// Join renders tokens back to source, one space between each.
func Join(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.Text()
	}
	return strings.Join(parts, " ")
}
