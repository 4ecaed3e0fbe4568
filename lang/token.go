package lang

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType identifies the lexical class of a [Token].
type TokenType int

const (
	TokenEOF     TokenType = iota // end of input
	TokenWord                     // word
	TokenNumber                   // number
	TokenOrdinal                  // ordinal
	TokenDate                     // date
	TokenClock                    // clock time
	TokenComma                    // ','
)

var tokenNames = map[TokenType]string{
	TokenEOF:     "end of input",
	TokenWord:    "word",
	TokenNumber:  "number",
	TokenOrdinal: "ordinal",
	TokenDate:    "date",
	TokenClock:   "clock time",
	TokenComma:   "','",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// Token is a lexical token. Column is the 1-based rune offset of the first
// rune of Value in the source.
type Token struct {
	Type   TokenType
	Value  string
	Column int
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return t.Type.String()
	}

	return strconv.Quote(t.Value)
}

// lexer splits lowercased input into tokens.
type lexer struct {
	input  string
	pos    int // byte offset
	column int // 1-based rune column of pos
}

func newLexer(input string) *lexer {
	return &lexer{input: input, column: 1}
}

// tokenize returns all tokens of the input followed by a [TokenEOF] token.
func tokenize(input string) ([]Token, error) {
	l := newLexer(input)

	var toks []Token

	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.Type == TokenEOF {
			return toks, nil
		}
	}
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])

	return r
}

func (l *lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	l.column++

	return r
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func (l *lexer) next() (Token, error) {
	l.skipSpace()

	start, column := l.pos, l.column

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Column: column}, nil
	}

	r := l.peek()

	switch {
	case r == ',':
		l.advance()

		return Token{Type: TokenComma, Value: ",", Column: column}, nil

	case r >= '0' && r <= '9':
		return l.scanNumeric(start, column)

	case unicode.IsLetter(r):
		for l.pos < len(l.input) {
			c := l.peek()
			if !unicode.IsLetter(c) && c != '-' && c != '\'' {
				break
			}

			l.advance()
		}

		word := strings.TrimRight(l.input[start:l.pos], "-")

		return Token{Type: TokenWord, Value: word, Column: column}, nil

	default:
		return Token{}, &ParseError{
			Source: l.input,
			Column: column,
			Found:  strconv.QuoteRune(r),
		}
	}
}

// scanNumeric scans a number, a digit ordinal (22nd), an ISO date
// (2024-01-15), or a clock time (09:30, 09:30:15).
func (l *lexer) scanNumeric(start, column int) (Token, error) {
	l.digits()

	switch l.peek() {
	case '-':
		if l.pos-start == 4 && l.dateTail() {
			return Token{Type: TokenDate, Value: l.input[start:l.pos], Column: column}, nil
		}

	case ':':
		if l.pos-start <= 2 && l.clockTail() {
			return Token{Type: TokenClock, Value: l.input[start:l.pos], Column: column}, nil
		}

	default:
		rest := l.input[l.pos:]
		for _, suffix := range ordinalSuffixes {
			if strings.HasPrefix(rest, suffix) && !isLetterAt(rest, len(suffix)) {
				l.advance()
				l.advance()

				return Token{Type: TokenOrdinal, Value: l.input[start:l.pos], Column: column}, nil
			}
		}
	}

	if unicode.IsLetter(l.peek()) {
		return Token{}, &ParseError{
			Source: l.input,
			Column: l.column,
			Found:  strconv.QuoteRune(l.peek()),
		}
	}

	return Token{Type: TokenNumber, Value: l.input[start:l.pos], Column: column}, nil
}

func (l *lexer) digits() int {
	n := 0
	for l.pos < len(l.input) && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
		l.advance()
		n++
	}

	return n
}

// dateTail consumes "-MM-DD" if present, leaving the lexer unchanged
// otherwise.
func (l *lexer) dateTail() bool {
	pos, column := l.pos, l.column

	for range 2 {
		if l.peek() != '-' {
			l.pos, l.column = pos, column

			return false
		}

		l.advance()

		if n := l.digits(); n < 1 || n > 2 {
			l.pos, l.column = pos, column

			return false
		}
	}

	return true
}

// clockTail consumes ":MM" or ":MM:SS" if present, leaving the lexer
// unchanged otherwise.
func (l *lexer) clockTail() bool {
	pos, column := l.pos, l.column

	for i := range 2 {
		if l.peek() != ':' {
			if i == 0 {
				l.pos, l.column = pos, column

				return false
			}

			break
		}

		mark, markColumn := l.pos, l.column

		l.advance()

		if l.digits() != 2 {
			if i == 0 {
				l.pos, l.column = pos, column

				return false
			}

			l.pos, l.column = mark, markColumn

			break
		}
	}

	return true
}

func isLetterAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}

	r, _ := utf8.DecodeRuneInString(s[i:])

	return unicode.IsLetter(r)
}
