package service

import (
	"crypto/rand"
	"fmt"
)

// CodeAlphabet leaves out 0, 1, I and O, which are easy to misread. Its length is a power of two.
const CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type CodeGenerator interface {
	Generate() (string, error)
}

type randomCodeGenerator struct {
	length int
}

func NewCodeGenerator(length int) CodeGenerator {
	return &randomCodeGenerator{length: length}
}

func (that *randomCodeGenerator) Generate() (string, error) {
	buf := make([]byte, that.length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = CodeAlphabet[int(b)%len(CodeAlphabet)]
	}

	return string(buf), nil
}
