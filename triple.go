package tdes

const TripleKeySize = 3 * 8

// TripleKey is a three-key EDE composition of DES. Each block is processed
// on its own; there is no chaining between blocks.
type TripleKey struct {
	k1, k2, k3 Key
}

// NewTripleKey splits a 24-byte key into K1, K2 and K3.
func NewTripleKey(key []byte) (*TripleKey, error) {
	if len(key) != TripleKeySize {
		return nil, KeySizeError(len(key))
	}
	var t TripleKey
	t.k1.SetRaw(*(*[8]byte)(key[0:8]))
	t.k2.SetRaw(*(*[8]byte)(key[8:16]))
	t.k3.SetRaw(*(*[8]byte)(key[16:24]))
	return &t, nil
}

func (t *TripleKey) BlockSize() int { return BlockSize }

func (t *TripleKey) Encrypt(dst, src []byte) {
	block := loadBlock(dst, src)
	encryptBlock(&block, &t.k1.keysched)
	decryptBlock(&block, &t.k2.keysched)
	encryptBlock(&block, &t.k3.keysched)
	copy(dst, block[:])
}

func (t *TripleKey) Decrypt(dst, src []byte) {
	block := loadBlock(dst, src)
	decryptBlock(&block, &t.k3.keysched)
	encryptBlock(&block, &t.k2.keysched)
	decryptBlock(&block, &t.k1.keysched)
	copy(dst, block[:])
}
