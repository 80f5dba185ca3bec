package tdes

type half [4]byte

// sBox looks up the six bits of in starting at bit idx*6+1 in S-box idx. The
// 4-bit result is returned in the high nibble.
func sBox(in *subkey, idx int) byte {
	base := idx * 6
	b := func(n int) byte { return getBit(in[:], base+n) }

	row := b(1)<<1 | b(6)
	col := b(2)<<3 | b(3)<<2 | b(4)<<1 | b(5)
	return sBoxes[idx][row][col] << 4
}

func feistel(r *half, k *subkey) (out half) {
	var x subkey
	permute(x[:], r[:], expansionPerm[:])
	for i := range x {
		x[i] ^= k[i]
	}

	var s half
	for i := 0; i < 8; i++ {
		v := sBox(&x, i)
		if i%2 == 0 {
			s[i/2] = v
		} else {
			s[i/2] |= v >> 4
		}
	}

	permute(out[:], s[:], roundPerm[:])
	return
}
