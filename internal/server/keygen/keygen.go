// Package keygen produces opaque API key values of the form
// <prefix><hex(random bytes)>.
package keygen

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/dmitrijs2005/apikeeper/internal/common"
)

const (
	DefaultPrefix = "APIKEY_S3CR3T_"
	DefaultSize   = 16
	MinSize       = 16
)

// Generator creates key values from a cryptographically secure source.
type Generator struct {
	prefix string
	size   int
	reader io.Reader
}

// NewGenerator returns a generator reading size bytes of crypto/rand entropy
// per key. Sizes below MinSize are rejected.
func NewGenerator(prefix string, size int) (*Generator, error) {
	if size < MinSize {
		return nil, fmt.Errorf("key size %d is below the minimum of %d bytes", size, MinSize)
	}
	return &Generator{prefix: prefix, size: size, reader: rand.Reader}, nil
}

// Prefix returns the constant marker every generated key starts with.
func (g *Generator) Prefix() string { return g.prefix }

// Generate returns a fresh key value.
func (g *Generator) Generate() (string, error) {
	random, err := common.ReadHexString(g.reader, g.size)
	if err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	return g.prefix + random, nil
}
