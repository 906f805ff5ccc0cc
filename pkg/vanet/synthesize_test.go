package vanet

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	circuit "vanet-auth/circuits/vanet"
)

const sampleMessage = "0xd91c747b4a76B8013Aa336Cbc52FD95a7a9BD3D9$GPRMC,092927.000,A,2235.9058,N,11400.0518,E,0.000,74.11,151216,,D*49"

func TestSynthesizeMaterial(t *testing.T) {
	c := qt.New(t)

	cfg := circuit.DefaultConfig()
	c.Assert(len(sampleMessage), qt.Equals, cfg.MessageLen)

	m, err := Synthesize(cfg, []byte(sampleMessage))
	c.Assert(err, qt.IsNil)

	// Format contracts.
	c.Assert(m.PublicKeyHex, qt.HasLen, cfg.HexLen())
	c.Assert(m.Randomness, qt.HasLen, cfg.RandomnessLen())
	c.Assert(m.Ciphertext, qt.HasLen, cfg.KeyBytes())
	c.Assert(m.Signature.Cmp(m.Authority.N) < 0, qt.IsTrue)
	for _, b := range m.Randomness {
		c.Assert(b, qt.Not(qt.Equals), byte(0))
	}

	// The certificate verifies with the host library too.
	digest := sha256.Sum256(m.PublicKeyHex)
	sigBytes := m.Signature.FillBytes(make([]byte, cfg.KeyBytes()))
	err = rsa.VerifyPKCS1v15(&m.Authority.PublicKey, crypto.SHA256, digest[:], sigBytes)
	c.Assert(err, qt.IsNil)

	// Decrypting the ciphertext returns the message.
	plain, err := rsa.DecryptPKCS1v15(nil, m.Vehicle, m.Ciphertext)
	c.Assert(err, qt.IsNil)
	c.Assert(string(plain), qt.Equals, sampleMessage)
}

func TestSynthesizeFreshKeysPerRun(t *testing.T) {
	c := qt.New(t)

	cfg := circuit.DefaultConfig()
	m1, err := Synthesize(cfg, []byte(sampleMessage))
	c.Assert(err, qt.IsNil)
	m2, err := Synthesize(cfg, []byte(sampleMessage))
	c.Assert(err, qt.IsNil)

	c.Assert(m1.Vehicle.N.Cmp(m2.Vehicle.N), qt.Not(qt.Equals), 0)
	c.Assert(m1.Authority.N.Cmp(m2.Authority.N), qt.Not(qt.Equals), 0)
}

func TestSynthesizeConfigErrors(t *testing.T) {
	c := qt.New(t)

	// Message length disagreeing with the config.
	_, err := Synthesize(circuit.DefaultConfig(), []byte("too short"))
	c.Assert(errors.Is(err, circuit.ErrInvalidConfig), qt.IsTrue)

	// Key length not aligned to the limb width.
	_, err = Synthesize(circuit.Config{Name: "bad", KeyBits: 1000, MessageLen: 16}, make([]byte, 16))
	c.Assert(errors.Is(err, circuit.ErrInvalidConfig), qt.IsTrue)
}
