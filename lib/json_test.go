package lib

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalTokens(t *testing.T) {
	var buf bytes.Buffer
	err := MarshalTokens(&buf, Tokenize("(+ 007)"), false)
	require.NoError(t, err)
	require.Equal(t,
		`[{"type":"OpenParens"},{"type":"Identifier","value":"+"},{"type":"Number","value":"007"},{"type":"CloseParens"}]`,
		strings.TrimSpace(buf.String()))
}

func TestMarshalTokensEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarshalTokens(&buf, Tokenize(""), false))
	require.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestMarshalTokensIndent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarshalTokens(&buf, []Token{Number("1")}, true))
	require.Contains(t, buf.String(), "\n  {")

	tokens, err := UnmarshalTokens(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, []Token{Number("1")}, tokens)
}

func TestUnmarshalTokens(t *testing.T) {
	src := "(operation operand0 0987654321 operand1)"
	var buf bytes.Buffer
	require.NoError(t, MarshalTokens(&buf, Tokenize(src), false))

	tokens, err := UnmarshalTokens(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, Tokenize(src), tokens)
}

func TestUnmarshalTokensUnknownType(t *testing.T) {
	_, err := UnmarshalTokens([]byte(`[{"type":"String","value":"x"}]`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "String")
}

func TestUnmarshalTokensInvalid(t *testing.T) {
	_, err := UnmarshalTokens([]byte(`{`))
	require.Error(t, err)
}
