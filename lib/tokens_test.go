package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenText(t *testing.T) {
	require.Equal(t, "(", OpenParens().Text())
	require.Equal(t, ")", CloseParens().Text())
	require.Equal(t, "007", Number("007").Text())
	require.Equal(t, "a-b", Identifier("a-b").Text())
}

func TestTokenString(t *testing.T) {
	require.Equal(t, "OpenParens", OpenParens().String())
	require.Equal(t, "CloseParens", CloseParens().String())
	require.Equal(t, `Number("0")`, Number("0").String())
	require.Equal(t, `Identifier("an-identifier-123")`, Identifier("an-identifier-123").String())
	require.Equal(t, "TokenType(9)", TokenType(9).String())
}

func TestJoin(t *testing.T) {
	require.Equal(t, "", Join(nil))
	require.Equal(t, "( + 1 1 )", Join(Tokenize("(+ 1 1)")))
}
