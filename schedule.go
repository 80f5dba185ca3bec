package tdes

const (
	rounds   = 16
	halfBits = 28
)

type subkey [6]byte

type schedule [rounds]subkey

// rotateHalf stores src rotated left by shift within its first 28 bits into
// dst.
func rotateHalf(dst, src []byte, shift int) {
	for i := 1; i <= halfBits-shift; i++ {
		putBit(dst, i, getBit(src, i+shift))
	}
	for i := 1; i <= shift; i++ {
		putBit(dst, halfBits-shift+i, getBit(src, i))
	}
}

func newSchedule(raw *[8]byte) (s schedule) {
	var c, d [4]byte
	permute(c[:], raw[:], leftSubkeyPerm[:])
	permute(d[:], raw[:], rightSubkeyPerm[:])

	for r := 0; r < rounds; r++ {
		shift := int(shiftSchedule[r])
		var nc, nd [4]byte
		rotateHalf(nc[:], c[:], shift)
		rotateHalf(nd[:], d[:], shift)
		c, d = nc, nd

		// C||D, 56 bits
		var cd [7]byte
		copy(cd[:], c[:])
		for i := 1; i <= halfBits; i++ {
			putBit(cd[:], halfBits+i, getBit(d[:], i))
		}
		permute(s[r][:], cd[:], subkeyPerm[:])
	}
	return
}
