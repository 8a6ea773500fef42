// Package qrtoken generates the opaque redemption tokens embedded in card
// QR codes. Tokens are lowercase base36 so they survive URL copy/paste and
// case-folding QR readers.
package qrtoken

import (
	"crypto/rand"
	"fmt"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// Length matches the legacy token format: two 13-char base36 runs.
	Length = 26
)

func New() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
