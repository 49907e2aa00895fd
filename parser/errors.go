package parser

import (
	"github.com/pkg/errors"

	"github.com/jpetkau/lit-vek/lexer"
)

// Diagnostics reported while parsing a sequence literal. Every one of them
// aborts the parse for that invocation; there is no recovery and no partial
// tree.
var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrDanglingSpread  = errors.New("spread marker is not followed by an expression")
	ErrEmptyElement    = errors.New("empty element")
	ErrMissingCount    = errors.New("repeat form is missing a count expression")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrUnknownForm     = errors.New("unknown invocation form")
)

// errorAt wraps a diagnostic with the source position of the offending token.
func errorAt(err error, tok *lexer.Token) error {
	line, col := tok.Pos()
	if tok.Is(lexer.TokenEOF) {
		return errors.Wrapf(err, "%d:%d", line, col)
	}
	return errors.Wrapf(err, "%d:%d: %q", line, col, tok.Text())
}
