package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{EOF, "EOF"},
		{ILLEGAL, "ILLEGAL"},
		{IDENT, "IDENT"},
		{NUMBER, "NUMBER"},
		{PLUS, "+"},
		{CARET, "^"},
		{PERCENT, "%"},
		{ASSIGN, "="},
		{LPAREN, "("},
		{RPAREN, ")"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}

func TestTypeStringUnknown(t *testing.T) {
	assert.Equal(t, "TOKEN(999)", Type(999).String())
}

func TestPositionIsValid(t *testing.T) {
	assert.True(t, Position{Line: 1, Column: 1}.IsValid())
	assert.False(t, Position{}.IsValid())
	assert.False(t, Position{Line: 0, Column: 5, Offset: 4}.IsValid())
}
