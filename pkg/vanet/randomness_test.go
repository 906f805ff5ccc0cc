package vanet

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRecoverRandomnessRoundTrip(t *testing.T) {
	c := qt.New(t)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	c.Assert(err, qt.IsNil)
	message := []byte("GPRMC,092927.000,A,2235.9058,N,11400.0518,E")

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, &key.PublicKey, message)
	c.Assert(err, qt.IsNil)

	filler, recovered, err := RecoverPKCS1v15Randomness(key, ciphertext)
	c.Assert(err, qt.IsNil)
	c.Assert(string(recovered), qt.Equals, string(message))
	c.Assert(filler, qt.HasLen, key.Size()-3-len(message))
	for _, b := range filler {
		c.Assert(b, qt.Not(qt.Equals), byte(0))
	}

	// Re-padding with the recovered filler and re-encrypting with plain
	// modular arithmetic reproduces the ciphertext exactly.
	block := make([]byte, 0, key.Size())
	block = append(block, 0x00, 0x02)
	block = append(block, filler...)
	block = append(block, 0x00)
	block = append(block, message...)
	e := big.NewInt(int64(key.E))
	ct := new(big.Int).Exp(new(big.Int).SetBytes(block), e, key.N)
	c.Assert(ct.FillBytes(make([]byte, key.Size())), qt.DeepEquals, ciphertext)
}

func TestRecoverRandomnessMalformed(t *testing.T) {
	c := qt.New(t)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	c.Assert(err, qt.IsNil)

	// Wrong ciphertext length.
	_, _, err = RecoverPKCS1v15Randomness(key, make([]byte, 100))
	c.Assert(errors.Is(err, ErrMalformedPadding), qt.IsTrue)

	// Ciphertext value not below the modulus.
	tooBig := new(big.Int).Add(key.N, big.NewInt(1)).FillBytes(make([]byte, key.Size()))
	_, _, err = RecoverPKCS1v15Randomness(key, tooBig)
	c.Assert(errors.Is(err, ErrMalformedPadding), qt.IsTrue)

	// c = 1 decrypts to 1, which carries no 0x02 marker.
	one := big.NewInt(1).FillBytes(make([]byte, key.Size()))
	_, _, err = RecoverPKCS1v15Randomness(key, one)
	c.Assert(errors.Is(err, ErrMalformedPadding), qt.IsTrue)
}
