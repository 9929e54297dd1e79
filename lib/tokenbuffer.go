package lib

import (
	"errors"
	"time"
)

const TokenBufSize = 100

var TokenReadTimeout = 1 * time.Second

var ErrTokenReadTimeout = errors.New("timed out waiting for next token")

type peekResult struct {
	tok  Token
	done bool
	err  error
}

// TokenBuffer hands tokens from a lexer goroutine to a reader. The writer
// calls Write for every token and Done once at the end.
type TokenBuffer struct {
	tokChan      chan Token
	doneChan     chan struct{}
	peeked       *peekResult
	doneReceived bool
}

func NewTokenBuffer() *TokenBuffer {
	return &TokenBuffer{
		tokChan:      make(chan Token, TokenBufSize),
		doneChan:     make(chan struct{}, 1),
		peeked:       nil,
		doneReceived: false,
	}
}

// Stream lexes src on its own goroutine and returns the buffer it writes to.
func Stream(src string) *TokenBuffer {
	buf := NewTokenBuffer()
	go func() {
		lex(src, buf.Write)
		buf.Done()
	}()
	return buf
}

func (tb *TokenBuffer) Next() (tok Token, done bool, err error) {
	if tb.peeked != nil {
		res := tb.peeked
		tb.peeked = nil
		return res.tok, res.done, res.err
	}

	if tb.doneReceived {
		// Everything was written before Done, so whatever is left is
		// already sitting in the channel.
		select {
		case tok := <-tb.tokChan:
			return tok, false, nil
		default:
			return Token{}, true, nil
		}
	}

	select {
	case tok := <-tb.tokChan:
		return tok, false, nil
	case <-tb.doneChan:
		tb.doneReceived = true
		return tb.Next()
	case <-time.After(TokenReadTimeout):
		return Token{}, false, ErrTokenReadTimeout
	}
}

func (tb *TokenBuffer) Peek() (Token, bool, error) {
	if tb.peeked != nil {
		return tb.peeked.tok, tb.peeked.done, tb.peeked.err
	}
	tok, done, err := tb.Next()
	tb.peeked = &peekResult{tok: tok, done: done, err: err}
	return tok, done, err
}

func (tb *TokenBuffer) Write(tok Token) {
	tb.tokChan <- tok
}

func (tb *TokenBuffer) Done() {
	tb.doneChan <- struct{}{}
}
