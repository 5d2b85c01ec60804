package reservation

import (
	"errors"
	"io"
	"strings"
)

// Reference codes are human-shareable, so the alphabet drops characters
// that are easy to confuse over the phone (0/O, 1/I).
const (
	ReferencePrefix   = "RES-"
	ReferenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	ReferenceLength   = 6
)

var ErrMalformedReference = errors.New("malformed reservation reference")

// GenerateReference draws a code uniformly from the restricted alphabet.
// Uniqueness against the ledger is the caller's responsibility.
func GenerateReference(rng io.Reader) (string, error) {
	buf := make([]byte, ReferenceLength)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = ReferenceAlphabet[int(buf[i])%len(ReferenceAlphabet)]
	}
	return ReferencePrefix + string(buf), nil
}

func ValidateReference(ref string) error {
	if !strings.HasPrefix(ref, ReferencePrefix) {
		return ErrMalformedReference
	}
	code := strings.TrimPrefix(ref, ReferencePrefix)
	if len(code) != ReferenceLength {
		return ErrMalformedReference
	}
	for _, r := range code {
		if !strings.ContainsRune(ReferenceAlphabet, r) {
			return ErrMalformedReference
		}
	}
	return nil
}
