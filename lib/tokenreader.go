package lib

type TokenReader interface {
	Next() (tok Token, done bool, err error)
	Peek() (tok Token, done bool, err error)
}

// SliceReader reads from tokens that have already been scanned.
type SliceReader struct {
	tokens []Token
	pos    int
}

func NewSliceReader(tokens []Token) *SliceReader {
	return &SliceReader{tokens: tokens}
}

func (r *SliceReader) Next() (Token, bool, error) {
	tok, done, err := r.Peek()
	if !done {
		r.pos++
	}
	return tok, done, err
}

func (r *SliceReader) Peek() (Token, bool, error) {
	if r.pos >= len(r.tokens) {
		return Token{}, true, nil
	}
	return r.tokens[r.pos], false, nil
}

var (
	_ TokenReader = (*TokenBuffer)(nil)
	_ TokenReader = (*SliceReader)(nil)
)
