package lexer

import (
	"bytes"
	"io"
	"log"
	"text/scanner"
)

type lexState func(*Lexer) lexState

var (
	isOpenBracket  = isTokenType(TokenOpenBracket)
	isCloseBracket = isTokenType(TokenCloseBracket)

	isOpenParen  = isTokenType(TokenOpenParen)
	isCloseParen = isTokenType(TokenCloseParen)

	isOpenBrace  = isTokenType(TokenOpenBrace)
	isCloseBrace = isTokenType(TokenCloseBrace)

	isComma     = isTokenType(TokenComma)
	isSemicolon = isTokenType(TokenSemicolon)
	isBang      = isTokenType(TokenBang)

	isNewLine    = isTokenType(TokenNewLine)
	isQuote      = isTokenType(TokenQuote)
	isWhitespace = isTokenType(TokenWhitespace)

	isWord     = isTokenType(TokenWord)
	isInteger  = isTokenType(TokenInteger)
	isOperator = isTokenType(TokenOperator)

	isDot = isTokenType(TokenDot)
)

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{
		Mode: scanner.ScanIdents | scanner.ScanFloats | scanner.ScanChars | scanner.ScanStrings | scanner.ScanRawStrings | scanner.ScanComments,
	}

	return &Lexer{
		in:     s.Init(r),
		tokens: make(chan Token),
		buf:    []rune{},
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens chan Token

	lastErr error

	buf []rune

	start  int
	offset int
	lines  int
}

// Tokens returns a channel that is going to receive tokens as soon as they are
// detected.
func (lx *Lexer) Tokens() chan Token {
	return lx.tokens
}

// Scan starts scanning the reader for tokens. It keeps emitting until EOF
// even when the consumer stops reading early, so a consumer that aborts must
// drain the token channel.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr == nil {
		lx.emit(TokenEOF)
	}

	close(lx.tokens)

	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens <- Token{
		tt:     tt,
		lexeme: string(lx.buf),

		col:  lx.start + 1,
		line: lx.lines + 1,
	}

	lx.start = lx.offset
	lx.buf = lx.buf[0:0]

	if tt == TokenNewLine {
		lx.lines++
		lx.start = 0
		lx.offset = 0
	}
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	lx.offset++

	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {

	case isOpenBracket(r):
		return lexEmit(TokenOpenBracket)
	case isCloseBracket(r):
		return lexEmit(TokenCloseBracket)

	case isOpenParen(r):
		return lexEmit(TokenOpenParen)
	case isCloseParen(r):
		return lexEmit(TokenCloseParen)

	case isOpenBrace(r):
		return lexEmit(TokenOpenBrace)
	case isCloseBrace(r):
		return lexEmit(TokenCloseBrace)

	case isComma(r):
		return lexEmit(TokenComma)
	case isSemicolon(r):
		return lexEmit(TokenSemicolon)
	case isBang(r):
		return lexEmit(TokenBang)

	case isQuote(r):
		return lexEmit(TokenQuote)
	case isNewLine(r):
		return lexEmit(TokenNewLine)
	case isWhitespace(r):
		return lexCollectStream(TokenWhitespace)

	case isWord(r):
		return lexCollectStream(TokenWord)
	case isInteger(r):
		return lexCollectStream(TokenInteger)
	case isOperator(r):
		return lexCollectStream(TokenOperator)

	case isDot(r):
		return lexDots

	default:
		return lexEmit(TokenInvalid)

	}
}

// lexDots measures a maximal run of dots: a single dot is a decimal point,
// exactly three are the spread marker, any other run is malformed. Two dots
// never form a token, so the marker cannot be confused with a range operator.
func lexDots(lx *Lexer) lexState {
	for isDot(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}

	switch len(lx.buf) {
	case 1:
		return lexEmit(TokenDot)
	case 3:
		return lexEmit(TokenEllipsis)
	}
	return lexEmit(TokenInvalid)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		for (isTokenType(tt))(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		log.Printf("lexer error: %v", err)
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it, or
// an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}
	done := make(chan struct{})

	lx := New(bytes.NewReader(in))

	go func() {
		for tok := range lx.tokens {
			tokens = append(tokens, tok)
		}
		done <- struct{}{}
	}()

	if err := lx.Scan(); err != nil {
		return nil, err
	}

	<-done
	return tokens, nil
}
