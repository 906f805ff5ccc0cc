package zkrsa

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/uints"
)

// VerifyPKCS1v15 checks an RSA PKCS#1 v1.5 signature over a SHA-256 digest
// inside the circuit: it raises the signature to the public exponent modulo
// the given modulus and compares the result with the EMSA-PKCS1-v1_5
// encoding of the digest at keyBytes length.
//
// The result is returned as a 0/1 wire instead of being asserted, so the
// caller can expose it as a circuit output; a single flipped bit in either
// the signature or the digest turns it to 0 without making the circuit
// unsatisfiable.
func VerifyPKCS1v15(api frontend.API, f *emulated.Field[Mod2048], modulus *emulated.Element[Mod2048], digest []uints.U8, signature *emulated.Element[Mod2048], keyBytes int) (frontend.Variable, error) {
	if len(digest) != digestLen {
		return nil, fmt.Errorf("digest must be %d bytes, got %d", digestLen, len(digest))
	}
	tLen := len(sha256DigestInfo) + digestLen
	if keyBytes < tLen+MinPadding {
		return nil, fmt.Errorf("%d-byte key cannot hold a %d-byte encoded digest", keyBytes, tLen)
	}

	// EM = 0x00 0x01 FF..FF 0x00 || DigestInfo || digest
	em := make([]uints.U8, 0, keyBytes)
	em = append(em, uints.NewU8(0x00), uints.NewU8(0x01))
	for i := 0; i < keyBytes-tLen-3; i++ {
		em = append(em, uints.NewU8(0xff))
	}
	em = append(em, uints.NewU8(0x00))
	em = append(em, uints.NewU8Array(sha256DigestInfo)...)
	em = append(em, digest...)

	expected := beBytesToElement(api, f, em)
	recovered := pow65537(f, signature, modulus)

	// Both sides are reduced below the RSA modulus (EM starts with a zero
	// byte), so equality in the ring is equality of the RSA values.
	return f.IsZero(f.Sub(recovered, expected)), nil
}
