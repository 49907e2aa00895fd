package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpetkau/lit-vek/lexer"
)

func TestNode(t *testing.T) {
	tok := lexer.NewToken(lexer.TokenInteger, "42", 1, 1)

	node := New(tok, NewIntValue(42))
	assert.True(t, node.IsValue())
	assert.False(t, node.IsVector())

	err := node.AppendChild(New(tok, NewIntValue(1)))
	assert.Error(t, err)
}

func TestNodeList(t *testing.T) {
	tok := lexer.NewToken(lexer.TokenOpenBracket, "[", 1, 1)

	list := NewList(tok)
	assert.True(t, list.IsVector())

	child, err := list.PushValue(lexer.NewToken(lexer.TokenInteger, "1", 1, 2), NewIntValue(1))
	assert.NoError(t, err)
	assert.Equal(t, list, child.Parent())
	assert.Equal(t, 1, len(list.List()))
}

func TestNodeSpread(t *testing.T) {
	ell := lexer.NewToken(lexer.TokenEllipsis, "...", 1, 1)

	spread := NewSpread(ell)
	_, err := spread.PushValue(lexer.NewToken(lexer.TokenWord, "xs", 1, 4), NewSymbolValue("xs"))
	assert.NoError(t, err)

	assert.Equal(t, "...xs", string(Encode(spread)))
}

func TestEncode(t *testing.T) {
	callTok := lexer.NewToken(lexer.TokenWord, "vek", 1, 1)
	root := NewCall(callTok)

	_, err := root.PushValue(lexer.NewToken(lexer.TokenInteger, "1", 1, 6), NewIntValue(1))
	assert.NoError(t, err)

	spread, err := root.PushSpread(lexer.NewToken(lexer.TokenEllipsis, "...", 1, 9))
	assert.NoError(t, err)

	list, err := spread.PushList(lexer.NewToken(lexer.TokenOpenBracket, "[", 1, 12))
	assert.NoError(t, err)

	_, err = list.PushValue(lexer.NewToken(lexer.TokenInteger, "2", 1, 13), NewIntValue(2))
	assert.NoError(t, err)
	_, err = list.PushValue(lexer.NewToken(lexer.TokenInteger, "3", 1, 16), NewIntValue(3))
	assert.NoError(t, err)

	assert.Equal(t, "vek", root.Name())
	assert.Equal(t, "vek![1, ...[2, 3]]", string(Encode(root)))
}

func TestEncodeRepeat(t *testing.T) {
	root := NewList(lexer.NewToken(lexer.TokenOpenBracket, "[", 1, 1))

	rep, err := root.PushRepeat(lexer.NewToken(lexer.TokenSemicolon, ";", 1, 3))
	assert.NoError(t, err)

	_, err = rep.PushValue(lexer.NewToken(lexer.TokenInteger, "0", 1, 2), NewIntValue(0))
	assert.NoError(t, err)
	_, err = rep.PushValue(lexer.NewToken(lexer.TokenInteger, "5", 1, 5), NewIntValue(5))
	assert.NoError(t, err)

	assert.Equal(t, "[0; 5]", string(Encode(root)))
}

func TestValueEncode(t *testing.T) {
	assert.Equal(t, "42", NewIntValue(42).Encode())
	assert.Equal(t, "1.5", NewFloatValue(1.5).Encode())
	assert.Equal(t, `"a b"`, NewStringValue("a b").Encode())
	assert.Equal(t, "xs", NewSymbolValue("xs").Encode())
	assert.Equal(t, "n + 1", NewExprValue("n + 1").Encode())
}
