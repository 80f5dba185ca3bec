package tdes

import (
	"crypto/des"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkKey(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	var raw [8]byte
	rng.Read(raw[:])
	var key Key
	key.SetRaw(raw)
	var data [BlockSize * 1024]byte
	rng.Read(data[:])
	var dst [len(data)]byte
	b.Run("Init", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(8)
		for i := 0; i < b.N; i++ {
			key.SetRaw(raw)
		}
	})
	b.Run("Encrypt", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(BlockSize * 1024)
		for i := 0; i < b.N; i++ {
			for j := 0; j < 1024; j++ {
				key.Encrypt(dst[j*BlockSize:], data[j*BlockSize:])
			}
		}
	})
	b.Run("Decrypt", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(BlockSize * 1024)
		for i := 0; i < b.N; i++ {
			for j := 0; j < 1024; j++ {
				key.Decrypt(dst[j*BlockSize:], data[j*BlockSize:])
			}
		}
	})
}

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestKey(t *testing.T) {
	vectors := []struct{ key, plain, cipher string }{
		{"133457799bbcdff1", "0123456789abcdef", "85e813540f0ab405"},
		{"0e329232ea6d0d73", "8787878787878787", "0000000000000000"},
		{"0123456789abcdef", "4e6f772069732074", "3fa40e8a984d4815"},
		{"0101010101010101", "95f8a5e5dd31d900", "8000000000000000"},
	}
	for _, v := range vectors {
		key, err := NewKey(mustHex(t, v.key))
		require.NoError(t, err)
		data := mustHex(t, v.plain)
		encryptedExpect := mustHex(t, v.cipher)
		t.Run("Encrypt/"+v.key, func(t *testing.T) {
			var res [BlockSize]byte
			key.Encrypt(res[:], data)
			require.Equal(t, encryptedExpect, res[:])
		})
		t.Run("Decrypt/"+v.key, func(t *testing.T) {
			var res [BlockSize]byte
			key.Decrypt(res[:], encryptedExpect)
			require.Equal(t, data, res[:])
		})
	}
	t.Run("InPlace", func(t *testing.T) {
		key, err := NewKey(mustHex(t, "133457799bbcdff1"))
		require.NoError(t, err)
		buf := mustHex(t, "0123456789abcdef")
		key.Encrypt(buf, buf)
		require.Equal(t, mustHex(t, "85e813540f0ab405"), buf)
		key.Decrypt(buf, buf)
		require.Equal(t, mustHex(t, "0123456789abcdef"), buf)
	})
	t.Run("BlockSize", func(t *testing.T) {
		var key Key
		require.Equal(t, BlockSize, key.BlockSize())
	})
	t.Run("BadSize", func(t *testing.T) {
		_, err := NewKey(make([]byte, 7))
		require.ErrorIs(t, err, ErrInvalidKeyLength)
		require.Equal(t, KeySizeError(7), err)
	})
	t.Run("ShortBlock", func(t *testing.T) {
		var key Key
		require.Panics(t, func() { key.Encrypt(make([]byte, BlockSize), make([]byte, BlockSize-1)) })
		require.Panics(t, func() { key.Decrypt(make([]byte, BlockSize-1), make([]byte, BlockSize)) })
	})
}

func TestKeyMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 64; i++ {
		raw := make([]byte, 8)
		rng.Read(raw)
		data := make([]byte, BlockSize)
		rng.Read(data)

		key, err := NewKey(raw)
		require.NoError(t, err)
		ref, err := des.NewCipher(raw)
		require.NoError(t, err)

		var got, want [BlockSize]byte
		key.Encrypt(got[:], data)
		ref.Encrypt(want[:], data)
		require.Equal(t, want, got)

		key.Decrypt(got[:], data)
		ref.Decrypt(want[:], data)
		require.Equal(t, want, got)
	}
}

func TestSchedule(t *testing.T) {
	var raw [8]byte
	copy(raw[:], mustHex(t, "133457799bbcdff1"))
	s := newSchedule(&raw)
	t.Run("Known", func(t *testing.T) {
		require.Equal(t, mustHex(t, "1b02effc7072"), s[0][:])
		require.Equal(t, mustHex(t, "cb3d8b0e17f5"), s[rounds-1][:])
	})
	t.Run("Deterministic", func(t *testing.T) {
		require.Equal(t, s, newSchedule(&raw))
	})
	t.Run("ParityIgnored", func(t *testing.T) {
		flipped := raw
		for i := range flipped {
			flipped[i] ^= 1
		}
		require.Equal(t, s, newSchedule(&flipped))
	})
}
