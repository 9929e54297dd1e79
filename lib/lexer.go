package lib

// ScanResult is everything a scan produced. Tokens is the same slice
// Tokenize would return; the other fields say where and why scanning stopped.
type ScanResult struct {
	Tokens []Token
	// Consumed is the number of runes scanned, skipped spaces included.
	Consumed int
	// Offset is the byte offset of the first unscanned rune.
	Offset int
	// Complete is false when an unrecognized rune ended the scan early.
	Complete bool
	// Stop is the unrecognized rune, zero when Complete.
	Stop rune
}

// Tokenize scans src into tokens. It never fails: the first rune that can't
// start a token ends the scan and whatever was collected before it is
// returned. Use Scan to find out whether that happened.
func Tokenize(src string) []Token {
	return Scan(src).Tokens
}

// Scan is Tokenize plus the position the scan stopped at.
func Scan(src string) ScanResult {
	tokens := []Token{}
	l := newLexer(src, func(t Token) {
		tokens = append(tokens, t)
	})
	l.scan()

	res := ScanResult{
		Tokens:   tokens,
		Consumed: l.currentCharIndex,
		Offset:   l.byteOffset,
		Complete: l.currentCharIndex == l.length,
	}
	if !res.Complete {
		res.Stop = l.src[l.currentCharIndex]
	}
	return res
}

func lex(src string, emit func(Token)) {
	l := newLexer(src, emit)
	l.scan()
}

// rule is the shape shared by every token producing sub-rule: it is handed
// the unscanned input, which always starts with a rune the rule accepts, and
// returns the token plus how many runes it used.
type rule func(rest []rune) (Token, int)

type lexer struct {
	src              []rune
	length           int
	currentCharIndex int
	byteOffset       int
	emitCallback     func(Token)
}

func newLexer(src string, emit func(Token)) *lexer {
	runes := []rune(src)
	return &lexer{
		src:              runes,
		length:           len(runes),
		currentCharIndex: 0,
		byteOffset:       0,
		emitCallback:     emit,
	}
}

func (l *lexer) peek() (rune, bool) {
	if l.currentCharIndex >= l.length {
		return 0, false
	}
	return l.src[l.currentCharIndex], true
}

func (l *lexer) advance(n int) {
	for _, ch := range l.src[l.currentCharIndex : l.currentCharIndex+n] {
		l.byteOffset += len(string(ch))
	}
	l.currentCharIndex += n
}

func (l *lexer) scan() {
	for l.next() {
	}
}

func (l *lexer) next() bool {
	ch, ok := l.peek()
	if !ok {
		return false
	}

	switch {
	case ch == ' ':
		l.advance(1)
	case ch == '(':
		l.apply(scanOpenParens)
	case ch == ')':
		l.apply(scanCloseParens)
	case isIdentFirst(ch):
		l.apply(scanIdent)
	case isDigit(ch):
		l.apply(scanNumber)
	default:
		// Not something we know how to tokenize. Stop here rather than
		// failing, the caller gets everything up to this point.
		return false
	}
	return true
}

func (l *lexer) apply(r rule) {
	tok, n := r(l.src[l.currentCharIndex:])
	l.emitCallback(tok)
	l.advance(n)
}

func scanOpenParens(rest []rune) (Token, int) {
	return OpenParens(), 1
}

func scanCloseParens(rest []rune) (Token, int) {
	return CloseParens(), 1
}

func scanIdent(rest []rune) (Token, int) {
	n := countWhile(rest, isIdent)
	return Identifier(string(rest[:n])), n
}

func scanNumber(rest []rune) (Token, int) {
	n := countWhile(rest, isDigit)
	return Number(string(rest[:n])), n
}

func countWhile(rest []rune, pred func(rune) bool) int {
	n := 0
	for n < len(rest) && pred(rest[n]) {
		n++
	}
	return n
}

func isIdentFirst(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		ch == '+' ||
		ch == '-' ||
		ch == '*' ||
		ch == '/'
}

func isIdent(ch rune) bool {
	return isIdentFirst(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
