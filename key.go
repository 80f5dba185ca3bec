package tdes

const BlockSize = 8

// Key is a single DES key with its expanded round subkeys. It implements
// cipher.Block.
type Key struct {
	keysched schedule
}

// NewKey builds a Key from an 8-byte raw key. Parity bits are ignored.
func NewKey(raw []byte) (*Key, error) {
	if len(raw) != 8 {
		return nil, KeySizeError(len(raw))
	}
	var key Key
	key.SetRaw(*(*[8]byte)(raw))
	return &key, nil
}

func (key *Key) SetRaw(raw [8]byte) {
	key.keysched = newSchedule(&raw)
}

func (key *Key) BlockSize() int { return BlockSize }

func (key *Key) Encrypt(dst, src []byte) {
	block := loadBlock(dst, src)
	encryptBlock(&block, &key.keysched)
	copy(dst, block[:])
}

func (key *Key) Decrypt(dst, src []byte) {
	block := loadBlock(dst, src)
	decryptBlock(&block, &key.keysched)
	copy(dst, block[:])
}

func loadBlock(dst, src []byte) (block [BlockSize]byte) {
	if len(src) < BlockSize {
		panic("tdes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("tdes: output not full block")
	}
	copy(block[:], src)
	return
}

func encryptBlock(block *[BlockSize]byte, s *schedule) {
	runRounds(block, s, false)
}

func decryptBlock(block *[BlockSize]byte, s *schedule) {
	runRounds(block, s, true)
}

// runRounds applies IP, sixteen Feistel rounds and FP to block in place.
// Both halves of IP are taken straight from the input block, and the
// pre-output is R16||L16.
func runRounds(block *[BlockSize]byte, s *schedule, reverse bool) {
	var l, r half
	permute(l[:], block[:], leftInitialPerm[:])
	permute(r[:], block[:], rightInitialPerm[:])

	for i := 0; i < rounds; i++ {
		k := &s[i]
		if reverse {
			k = &s[rounds-1-i]
		}
		f := feistel(&r, k)
		for j := range f {
			f[j] ^= l[j]
		}
		l, r = r, f
	}

	var pre [BlockSize]byte
	copy(pre[:4], r[:])
	copy(pre[4:], l[:])
	permute(block[:], pre[:], finalPerm[:])
}
