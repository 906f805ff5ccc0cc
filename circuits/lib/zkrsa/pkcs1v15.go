package zkrsa

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/uints"
)

const (
	// PublicExponent is the RSA public exponent both gadgets are fixed to.
	PublicExponent = 65537

	// MinPadding is the PKCS#1 v1.5 overhead in bytes: two marker bytes,
	// the terminator, and at least eight filler bytes.
	MinPadding = 11

	digestLen = 32
)

// sha256DigestInfo is the DER prefix of the SHA-256 DigestInfo structure
// prepended to the digest during EMSA-PKCS1-v1_5 encoding.
var sha256DigestInfo = []byte{
	0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86,
	0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01, 0x05,
	0x00, 0x04, 0x20,
}

// RandomnessLength returns the number of random filler bytes PKCS#1 v1.5
// encryption inserts for a msgLen-byte message under a keyBytes modulus.
func RandomnessLength(keyBytes, msgLen int) int {
	return keyBytes - 3 - msgLen
}

// pow65537 computes base^65537 mod modulus with a fixed square-and-multiply
// ladder (65537 = 2^16 + 1): sixteen squarings and one multiplication.
func pow65537(f *emulated.Field[Mod2048], base, modulus *emulated.Element[Mod2048]) *emulated.Element[Mod2048] {
	res := base
	for i := 0; i < 16; i++ {
		res = f.ModMul(res, res, modulus)
	}
	return f.ModMul(res, base, modulus)
}

// beBytesToElement interprets a big-endian byte sequence as an emulated
// integer. ToBinary constrains each byte wire to 8 bits on the way.
func beBytesToElement(api frontend.API, f *emulated.Field[Mod2048], bs []uints.U8) *emulated.Element[Mod2048] {
	n := len(bs)
	bits := make([]frontend.Variable, n*8)
	for i, b := range bs {
		bb := api.ToBinary(b.Val, 8)
		copy(bits[(n-1-i)*8:(n-i)*8], bb)
	}
	return f.FromBits(bits...)
}

// elementToBEBytes decomposes an emulated integer into keyBytes big-endian
// bytes, asserting that no bit overflows the requested width.
func elementToBEBytes(api frontend.API, uapi *uints.Bytes, f *emulated.Field[Mod2048], e *emulated.Element[Mod2048], keyBytes int) []uints.U8 {
	bits := f.ToBits(e)
	for i := keyBytes * 8; i < len(bits); i++ {
		api.AssertIsEqual(bits[i], 0)
	}
	out := make([]uints.U8, keyBytes)
	for i := 0; i < keyBytes; i++ {
		v := api.FromBinary(bits[(keyBytes-1-i)*8 : (keyBytes-i)*8]...)
		out[i] = uapi.ValueOf(v)
	}
	return out
}
