package tdes

import (
	"fmt"

	"github.com/andreburgaud/crypt2go/padding"
)

// Pad returns a copy of data extended to a multiple of BlockSize. Between 1
// and BlockSize bytes are appended, each holding the number of bytes added,
// so block-aligned input gains a whole extra block.
func Pad(data []byte) []byte {
	rem := BlockSize - len(data)%BlockSize
	out := make([]byte, len(data)+rem)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(rem)
	}
	return out
}

// Unpad strips the padding added by Pad. Only the final byte is consulted:
// a count of 0, more than BlockSize or more than len(data) is rejected with
// ErrMalformedPadding, but the other padding bytes are not compared. Use
// UnpadStrict to check them too.
func Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedPadding)
	}
	rem := int(data[len(data)-1])
	if rem == 0 || rem > BlockSize || rem > len(data) {
		return nil, fmt.Errorf("%w: pad count %d", ErrMalformedPadding, rem)
	}
	return data[:len(data)-rem], nil
}

// UnpadStrict is Unpad that also requires every padding byte to equal the
// pad count.
func UnpadStrict(data []byte) ([]byte, error) {
	if _, err := Unpad(data); err != nil {
		return nil, err
	}
	out, err := padding.NewPkcs7Padding(BlockSize).Unpad(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPadding, err)
	}
	return out, nil
}
