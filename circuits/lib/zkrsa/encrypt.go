package zkrsa

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/uints"
)

// EncryptPKCS1v15 computes the RSA PKCS#1 v1.5 encryption of message under
// modulus, with the padding filler supplied as witness bytes:
//
//	EB = 0x00 0x02 || randomness || 0x00 || message
//	ciphertext = EB^65537 mod modulus
//
// It returns the keyBytes big-endian ciphertext bytes. Message and
// randomness lengths are checked at construction time; a message that
// leaves no room for the minimum padding is rejected before any constraint
// is emitted.
func EncryptPKCS1v15(api frontend.API, uapi *uints.Bytes, f *emulated.Field[Mod2048], modulus *emulated.Element[Mod2048], message, randomness []uints.U8, keyBytes int) ([]uints.U8, error) {
	if len(message) == 0 || len(message) > keyBytes-MinPadding {
		return nil, fmt.Errorf("message of %d bytes does not fit a %d-byte key (max %d)", len(message), keyBytes, keyBytes-MinPadding)
	}
	if want := RandomnessLength(keyBytes, len(message)); len(randomness) != want {
		return nil, fmt.Errorf("randomness must be %d bytes, got %d", want, len(randomness))
	}

	eb := make([]uints.U8, 0, keyBytes)
	eb = append(eb, uints.NewU8(0x00), uints.NewU8(0x02))
	eb = append(eb, randomness...)
	eb = append(eb, uints.NewU8(0x00))
	eb = append(eb, message...)

	padded := beBytesToElement(api, f, eb)
	ct := pow65537(f, padded, modulus)
	return elementToBEBytes(api, uapi, f, ct, keyBytes), nil
}

// AssertRandomnessCompliance constrains every filler byte to be nonzero, as
// PKCS#1 v1.5 requires: a zero byte would terminate the padding early and
// change the recovered message boundary.
func AssertRandomnessCompliance(api frontend.API, randomness []uints.U8) {
	for i := range randomness {
		api.AssertIsDifferent(randomness[i].Val, 0)
	}
}
