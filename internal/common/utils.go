package common

import (
	"encoding/hex"
	"io"
	"strings"
)

// ReadHexString reads size bytes from r and returns them hex-encoded, so the
// result is 2*size characters long.
func ReadHexString(r io.Reader, size int) (string, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// value. It returns "" when the value has no usable token.
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < len(BearerPrefix) || !strings.EqualFold(header[:len(BearerPrefix)], BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(BearerPrefix):])
}
