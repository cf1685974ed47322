package common

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHexString_LengthAndHex(t *testing.T) {
	const n = 16
	s, err := ReadHexString(bytes.NewReader(bytes.Repeat([]byte{0xab}, n)), n)
	require.NoError(t, err)
	assert.Len(t, s, n*2)
	_, err = hex.DecodeString(s)
	assert.NoError(t, err)
}

func TestReadHexString_ShortReader(t *testing.T) {
	_, err := ReadHexString(bytes.NewReader([]byte{1, 2}), 16)
	assert.Error(t, err)
}

func TestReadHexString_Deterministic(t *testing.T) {
	s, err := ReadHexString(bytes.NewReader([]byte{0xde, 0xad, 0xbe, 0xef}), 4)
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", s)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"  Bearer   abc  ", "abc"},
		{"Bearer ", ""},
		{"abc", ""},
		{"", ""},
		{"Basic abc", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BearerToken(tt.in), "input %q", tt.in)
	}
}

func TestConflictErrorsWrapConflict(t *testing.T) {
	for _, err := range []error{ErrDuplicateUser, ErrDuplicateKey, ErrDuplicateAdmin} {
		assert.True(t, errors.Is(err, ErrConflict), "%v must wrap ErrConflict", err)
	}
	assert.False(t, errors.Is(ErrDuplicateUser, ErrDuplicateKey))
}
