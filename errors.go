package tdes

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidKeyLength        = errors.New("tdes: invalid key length")
	ErrInvalidCiphertextLength = errors.New("tdes: invalid encrypted data length")
	ErrMalformedPadding        = errors.New("tdes: malformed padding")
)

// KeySizeError reports the length of a rejected key. It matches
// ErrInvalidKeyLength under errors.Is.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "tdes: invalid key size " + strconv.Itoa(int(k))
}

func (k KeySizeError) Unwrap() error { return ErrInvalidKeyLength }
