package parser

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/jpetkau/lit-vek/ast"
	"github.com/jpetkau/lit-vek/lexer"
)

// TokenEOF is handed out once the underlying token stream is exhausted.
var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

// knownForms are the invocation words a literal may be prefixed with: "vek"
// produces a materialized sequence, "iter" a lazy one.
var knownForms = map[string]bool{
	"vek":  true,
	"iter": true,
}

// errEmptySpan marks an element position with no expression in it; callers
// translate it into the diagnostic that fits the position.
var errEmptySpan = errors.New("empty expression span")

type parserState func(p *Parser) parserState

// Parser reads a sequence literal and builds its element tree
type Parser struct {
	lx   *lexer.Lexer
	root *ast.Node

	nextTok *lexer.Token

	lastErr error
}

// New creates a parser that reads a literal from r
func New(r io.Reader) *Parser {
	p := &Parser{}
	p.lx = lexer.New(r)
	return p
}

// Root returns the root of the parsed tree: a call node when the literal had
// an invocation prefix ("vek![...]"), a list node otherwise.
func (p *Parser) Root() *ast.Node {
	return p.root
}

// Parse consumes the whole input and builds the element tree. Any malformed
// input aborts parsing with a diagnostic pointing at the offending token.
func (p *Parser) Parse() error {
	errCh := make(chan error)

	go func() {
		errCh <- p.lx.Scan()
	}()

	for state := parserDefaultState; state != nil; {
		state = state(p)
	}

	// the scanner keeps emitting until EOF even when parsing stopped early
	for range p.lx.Tokens() {
	}

	err := <-errCh
	if err != nil {
		return err
	}

	return p.lastErr
}

func (p *Parser) read() *lexer.Token {
	tok, ok := <-p.lx.Tokens()
	if ok {
		return &tok
	}
	return TokenEOF
}

func (p *Parser) peek() *lexer.Token {
	if p.nextTok != nil {
		return p.nextTok
	}

	p.nextTok = p.read()
	return p.nextTok
}

func (p *Parser) next() *lexer.Token {
	if p.nextTok != nil {
		tok := p.nextTok
		p.nextTok = nil
		return tok
	}
	return p.read()
}

// peekMeaningful looks at the next token that is not whitespace.
func (p *Parser) peekMeaningful() *lexer.Token {
	for p.peek().Is(lexer.TokenWhitespace) || p.peek().Is(lexer.TokenNewLine) {
		p.next()
	}
	return p.peek()
}

// nextMeaningful consumes up to and including the next token that is not
// whitespace.
func (p *Parser) nextMeaningful() *lexer.Token {
	p.peekMeaningful()
	return p.next()
}

func parserDefaultState(p *Parser) parserState {
	tok := p.nextMeaningful()

	switch tok.Type() {
	case lexer.TokenEOF:
		return ParserErrorState(errorAt(ErrUnexpectedEOF, tok))

	case lexer.TokenWord:
		if !knownForms[tok.Text()] {
			return ParserErrorState(errorAt(ErrUnknownForm, tok))
		}
		p.root = ast.NewCall(tok)

		if tok := p.nextMeaningful(); !tok.Is(lexer.TokenBang) {
			return ParserErrorState(errorAt(ErrUnexpectedToken, tok))
		}
		if tok := p.nextMeaningful(); !tok.Is(lexer.TokenOpenBracket) {
			return ParserErrorState(errorAt(ErrUnexpectedToken, tok))
		}
		return parserStateElements(p.root)

	case lexer.TokenOpenBracket:
		p.root = ast.NewList(tok)
		return parserStateElements(p.root)

	default:
		return ParserErrorState(errorAt(ErrUnexpectedToken, tok))
	}
}

func parserStateElements(root *ast.Node) parserState {
	return func(p *Parser) parserState {
		if err := p.parseElements(root); err != nil {
			return ParserErrorState(err)
		}
		return parserStateEnd
	}
}

func parserStateEnd(p *Parser) parserState {
	tok := p.nextMeaningful()
	if !tok.Is(lexer.TokenEOF) {
		return ParserErrorState(errorAt(ErrUnexpectedToken, tok))
	}
	return nil
}

// ParserErrorState terminates parsing with the given diagnostic.
func ParserErrorState(err error) parserState {
	return func(p *Parser) parserState {
		p.lastErr = err
		return nil
	}
}

// parseElements consumes a comma-separated element list, including its
// closing bracket, and appends every parsed element to root in source order.
// A single element may instead be followed by ";" and a count expression,
// which turns the whole list into a repeat form.
func (p *Parser) parseElements(root *ast.Node) error {
	elems := []*ast.Node{}

	for {
		tok := p.peekMeaningful()

		if tok.Is(lexer.TokenCloseBracket) {
			p.next()
			break
		}
		if tok.Is(lexer.TokenEOF) {
			return errorAt(ErrUnexpectedEOF, tok)
		}

		node, err := p.parseElement()
		if err != nil {
			return err
		}
		elems = append(elems, node)

		sep := p.nextMeaningful()
		if sep.Is(lexer.TokenComma) {
			continue
		}
		if sep.Is(lexer.TokenCloseBracket) {
			break
		}

		if sep.Is(lexer.TokenSemicolon) {
			if len(elems) != 1 {
				return errorAt(ErrUnexpectedToken, sep)
			}

			count, err := p.parseCount(sep)
			if err != nil {
				return err
			}

			rep := ast.NewRepeat(sep)
			if err := rep.AppendChild(elems[0]); err != nil {
				return err
			}
			if err := rep.AppendChild(count); err != nil {
				return err
			}
			elems = []*ast.Node{rep}

			if tok := p.nextMeaningful(); !tok.Is(lexer.TokenCloseBracket) {
				return errorAt(ErrUnexpectedToken, tok)
			}
			break
		}

		if sep.Is(lexer.TokenEOF) {
			return errorAt(ErrUnexpectedEOF, sep)
		}
		return errorAt(ErrUnexpectedToken, sep)
	}

	for _, el := range elems {
		if err := root.AppendChild(el); err != nil {
			return err
		}
	}
	return nil
}

// parseElement consumes a single element: a spread-marked expression or a
// plain one.
func (p *Parser) parseElement() (*ast.Node, error) {
	tok := p.peekMeaningful()

	if tok.Is(lexer.TokenEllipsis) {
		ell := p.next()

		inner, err := p.parseElementValue()
		if err != nil {
			if errors.Is(err, errEmptySpan) {
				return nil, errorAt(ErrDanglingSpread, ell)
			}
			return nil, err
		}

		node := ast.NewSpread(ell)
		if err := node.AppendChild(inner); err != nil {
			return nil, err
		}
		return node, nil
	}

	node, err := p.parseElementValue()
	if err != nil {
		if errors.Is(err, errEmptySpan) {
			return nil, errorAt(ErrEmptyElement, tok)
		}
		return nil, err
	}
	return node, nil
}

// parseElementValue consumes the expression of an element: either a nested
// bracketed list, kept structured, or an opaque expression span.
func (p *Parser) parseElementValue() (*ast.Node, error) {
	tok := p.peekMeaningful()

	if tok.Is(lexer.TokenOpenBracket) {
		p.next()
		node := ast.NewList(tok)
		if err := p.parseElements(node); err != nil {
			return nil, err
		}
		return node, nil
	}

	span, err := p.collectSpan()
	if err != nil {
		return nil, err
	}
	return p.nodeFromSpan(span)
}

// parseCount consumes the count expression of a repeat form.
func (p *Parser) parseCount(sep *lexer.Token) (*ast.Node, error) {
	span, err := p.collectSpan()
	if err != nil {
		return nil, err
	}

	node, err := p.nodeFromSpan(span)
	if err != nil {
		if errors.Is(err, errEmptySpan) {
			return nil, errorAt(ErrMissingCount, sep)
		}
		return nil, err
	}
	return node, nil
}

// collectSpan gathers the raw tokens of one expression, stopping in front of
// the first comma, semicolon or closing bracket that is not nested inside
// parentheses, brackets, braces or a string.
func (p *Parser) collectSpan() ([]*lexer.Token, error) {
	span := []*lexer.Token{}
	depth := 0

	for {
		tok := p.peek()

		switch tok.Type() {
		case lexer.TokenEOF:
			return span, nil

		case lexer.TokenComma, lexer.TokenSemicolon:
			if depth == 0 {
				return span, nil
			}

		case lexer.TokenCloseBracket:
			if depth == 0 {
				return span, nil
			}
			depth--

		case lexer.TokenOpenBracket, lexer.TokenOpenParen, lexer.TokenOpenBrace:
			depth++

		case lexer.TokenCloseParen, lexer.TokenCloseBrace:
			if depth == 0 {
				return nil, errorAt(ErrUnexpectedToken, tok)
			}
			depth--

		case lexer.TokenQuote:
			span = append(span, p.next())
			for {
				tok := p.peek()
				if tok.Is(lexer.TokenEOF) {
					return nil, errorAt(ErrUnexpectedEOF, tok)
				}
				span = append(span, p.next())
				if tok.Is(lexer.TokenQuote) {
					break
				}
			}
			continue

		case lexer.TokenInvalid:
			return nil, errorAt(ErrUnexpectedToken, tok)
		}

		span = append(span, p.next())
	}
}

// nodeFromSpan classifies an expression span: single literals become typed
// value nodes, everything else is kept as an opaque expression.
func (p *Parser) nodeFromSpan(span []*lexer.Token) (*ast.Node, error) {
	span = trimSpan(span)
	if len(span) == 0 {
		return nil, errEmptySpan
	}

	first := span[0]

	switch {
	case len(span) == 1 && first.Is(lexer.TokenInteger):
		i64, err := strconv.ParseInt(first.Text(), 10, 64)
		if err != nil {
			return nil, errorAt(ErrInvalidNumber, first)
		}
		return ast.New(first, ast.NewIntValue(i64)), nil

	case len(span) == 3 && first.Is(lexer.TokenInteger) &&
		span[1].Is(lexer.TokenDot) && span[2].Is(lexer.TokenInteger):
		f64, err := strconv.ParseFloat(spanText(span), 64)
		if err != nil {
			return nil, errorAt(ErrInvalidNumber, first)
		}
		return ast.New(first, ast.NewFloatValue(f64)), nil

	case len(span) == 1 && first.Is(lexer.TokenWord):
		return ast.New(first, ast.NewSymbolValue(first.Text())), nil

	case isStringSpan(span):
		return ast.New(first, ast.NewStringValue(spanText(span[1:len(span)-1]))), nil
	}

	return ast.New(first, ast.NewExprValue(strings.TrimSpace(spanText(span)))), nil
}

// isStringSpan reports whether the span is exactly one quoted string.
func isStringSpan(span []*lexer.Token) bool {
	if len(span) < 2 {
		return false
	}
	if !span[0].Is(lexer.TokenQuote) || !span[len(span)-1].Is(lexer.TokenQuote) {
		return false
	}
	for _, tok := range span[1 : len(span)-1] {
		if tok.Is(lexer.TokenQuote) {
			return false
		}
	}
	return true
}

func trimSpan(span []*lexer.Token) []*lexer.Token {
	isBlank := func(tok *lexer.Token) bool {
		return tok.Is(lexer.TokenWhitespace) || tok.Is(lexer.TokenNewLine)
	}
	for len(span) > 0 && isBlank(span[0]) {
		span = span[1:]
	}
	for len(span) > 0 && isBlank(span[len(span)-1]) {
		span = span[:len(span)-1]
	}
	return span
}

func spanText(span []*lexer.Token) string {
	var text strings.Builder
	for _, tok := range span {
		text.WriteString(tok.Text())
	}
	return text.String()
}

// Parse reads a sequence literal and returns the root of its element tree.
func Parse(in []byte) (*ast.Node, error) {
	p := New(bytes.NewReader(in))

	err := p.Parse()
	if err != nil {
		return nil, err
	}

	return p.root, nil
}
