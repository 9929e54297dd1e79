package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadSourceDir(t *testing.T) {
	sources, err := ReadSourceDir("./testdata/sources")
	require.NoError(t, err)
	require.Len(t, sources, 3)

	require.Equal(t, "a_generic", sources[0].Name)
	require.Equal(t, "b_add", sources[1].Name)
	require.Equal(t, "c_truncated", sources[2].Name)

	require.Equal(t, "(+ 1 1)", sources[1].Text)
	require.Len(t, sources[0].Scan().Tokens, 6)

	res := sources[2].Scan()
	require.False(t, res.Complete)
	require.Equal(t, ';', res.Stop)
	require.Equal(t, []Token{OpenParens(), Identifier("define"), Identifier("x")}, res.Tokens)
}

func TestReadSourceDirMissing(t *testing.T) {
	_, err := ReadSourceDir("./testdata/does-not-exist")
	require.Error(t, err)
}
