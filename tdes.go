// Package tdes implements DES and three-key Triple DES (EDE) from the bit
// level up, together with a whole-buffer encrypt/decrypt API using the
// padding scheme of Pad.
//
// Every 8-byte block is enciphered independently, which makes the whole-buffer
// functions equivalent to ECB mode. Identical plaintext blocks produce
// identical ciphertext blocks and there is no integrity protection.
package tdes

import (
	"github.com/andreburgaud/crypt2go/ecb"
)

// Encrypt pads plaintext and encrypts it under a 24-byte key. The result is
// always 1 to 8 bytes longer than plaintext.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	t, err := NewTripleKey(key)
	if err != nil {
		return nil, err
	}
	out := Pad(plaintext)
	ecb.NewECBEncrypter(t).CryptBlocks(out, out)
	return out, nil
}

// Decrypt reverses Encrypt. Padding is removed with Unpad.
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	return decrypt(ciphertext, key, Unpad)
}

// DecryptStrict is Decrypt with padding removed by UnpadStrict.
func DecryptStrict(ciphertext, key []byte) ([]byte, error) {
	return decrypt(ciphertext, key, UnpadStrict)
}

func decrypt(ciphertext, key []byte, unpad func([]byte) ([]byte, error)) ([]byte, error) {
	t, err := NewTripleKey(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, ErrInvalidCiphertextLength
	}
	out := make([]byte, len(ciphertext))
	ecb.NewECBDecrypter(t).CryptBlocks(out, ciphertext)
	return unpad(out)
}
