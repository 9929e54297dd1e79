package lib

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

type tokenJSON struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

// MarshalTokens writes tokens as a JSON array of {"type", "value"} objects.
func MarshalTokens(w io.Writer, tokens []Token, indent bool) error {
	out := make([]tokenJSON, len(tokens))
	for i, tok := range tokens {
		out[i] = tokenJSON{Type: tok.Type.String(), Value: tok.Value}
	}

	opts := []json.Options{}
	if indent {
		opts = append(opts, jsontext.Multiline(true), jsontext.WithIndent("  "))
	}
	return json.MarshalWrite(w, out, opts...)
}

func UnmarshalTokens(data []byte) ([]Token, error) {
	in := []tokenJSON{}
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("Cannot decode tokens: %w", err)
	}

	tokens := make([]Token, len(in))
	for i, t := range in {
		typ, ok := tokenTypeFromName(t.Type)
		if !ok {
			return nil, fmt.Errorf("Unknown token type '%s' at index %d", t.Type, i)
		}
		tokens[i] = Token{Type: typ, Value: t.Value}
	}
	return tokens, nil
}
