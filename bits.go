package tdes

// Bits are numbered from 1, starting at the most significant bit of buf[0].
// Callers only pass indices coming from the fixed tables. The index is
// converted to unsigned so that anything outside [1, 8*len(buf)], zero and
// negatives included, panics on the slice bounds check.

func getBit(buf []byte, i int) byte {
	u := uint(i - 1)
	return buf[u/8] >> (7 - u%8) & 1
}

func putBit(buf []byte, i int, v byte) {
	u := uint(i - 1)
	mask := byte(1) << (7 - u%8)
	if v == 1 {
		buf[u/8] |= mask
	} else {
		buf[u/8] &^= mask
	}
}

// permute writes len(table) bits into dst, bit i taken from bit table[i-1]
// of src. Unused low bits of the last touched byte are zeroed.
func permute(dst, src []byte, table []uint8) {
	n := len(table)
	for i := 1; i <= n; i++ {
		putBit(dst, i, getBit(src, int(table[i-1])))
	}
	for i := n + 1; i%8 != 1; i++ {
		putBit(dst, i, 0)
	}
}
