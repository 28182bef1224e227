// Package security generates one-time login codes.
package security

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"mini-rules/internal/capability"
)

// CodeDigits is the number of digits in a login code.
const CodeDigits = 6

// ErrGenerateCode is returned when the random source fails.
var ErrGenerateCode = errors.New("failed to generate login code")

var codeSpace = big.NewInt(1_000_000)

type codeGenerator struct {
	random io.Reader
}

// NewCodeGenerator creates a generator of zero-padded six digit codes.
func NewCodeGenerator() capability.CodeGenerator {
	return &codeGenerator{random: rand.Reader}
}

// NewCodeGeneratorWithReader creates a generator reading from r (for testing).
func NewCodeGeneratorWithReader(r io.Reader) capability.CodeGenerator {
	return &codeGenerator{random: r}
}

func (g *codeGenerator) GenerateCode() (string, error) {
	n, err := rand.Int(g.random, codeSpace)
	if err != nil {
		return "", errors.Join(ErrGenerateCode, err)
	}
	return fmt.Sprintf("%0*d", CodeDigits, n.Int64()), nil
}
