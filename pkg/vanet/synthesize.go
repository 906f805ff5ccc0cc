// Package vanet synthesizes witnesses for the VANET authentication
// statement with real cryptography and drives the Groth16 lifecycle for it.
// The statement itself lives in circuits/vanet; this package produces one
// consistent set of concrete values per proof instance: two fresh RSA key
// pairs, a certificate signature, a ciphertext, and the recovered padding
// randomness that makes the encryption reproducible inside the circuit.
package vanet

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"math/big"

	circuit "vanet-auth/circuits/vanet"
)

// Material is one fully consistent witness for the statement. Re-running
// Synthesize yields a different valid Material each time: key generation
// and encryption padding are randomized.
type Material struct {
	Config       circuit.Config
	Message      []byte
	Authority    *rsa.PrivateKey // certificate authority key pair
	Vehicle      *rsa.PrivateKey // vehicle key pair
	PublicKeyHex []byte          // hex encoding of the vehicle modulus, the certified bytes
	Signature    *big.Int        // authority signature over SHA-256(PublicKeyHex)
	Ciphertext   []byte          // PKCS#1 v1.5 encryption of Message under the vehicle key
	Randomness   []byte          // recovered padding filler of Ciphertext
}

// Synthesize produces a witness for message under cfg. The certificate and
// the ciphertext come from the standard library, so a satisfied circuit
// proves agreement with real PKCS#1 v1.5, not with a re-implementation.
func Synthesize(cfg circuit.Config, message []byte) (*Material, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(message) != cfg.MessageLen {
		return nil, fmt.Errorf("%w: message is %d bytes, config expects %d", circuit.ErrInvalidConfig, len(message), cfg.MessageLen)
	}

	authority, err := rsa.GenerateKey(rand.Reader, cfg.KeyBits)
	if err != nil {
		return nil, &CryptoError{Op: "authority key generation", Err: err}
	}
	vehicle, err := rsa.GenerateKey(rand.Reader, cfg.KeyBits)
	if err != nil {
		return nil, &CryptoError{Op: "vehicle key generation", Err: err}
	}

	pubHex, err := circuit.ModulusHex(vehicle.N, cfg.HexLen())
	if err != nil {
		return nil, fmt.Errorf("vehicle modulus encoding: %w", err)
	}

	// CertGen: the authority signs the digest of the hex-encoded vehicle
	// modulus, the same bytes the circuit hashes.
	digest := sha256.Sum256(pubHex)
	sigBytes, err := rsa.SignPKCS1v15(rand.Reader, authority, crypto.SHA256, digest[:])
	if err != nil {
		return nil, &CryptoError{Op: "certificate signing", Err: err}
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, &vehicle.PublicKey, message)
	if err != nil {
		return nil, &CryptoError{Op: "message encryption", Err: err}
	}

	filler, recovered, err := RecoverPKCS1v15Randomness(vehicle, ciphertext)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(recovered, message) {
		return nil, fmt.Errorf("%w: recovered %d bytes, encrypted %d", ErrPaddingMismatch, len(recovered), len(message))
	}

	return &Material{
		Config:       cfg,
		Message:      message,
		Authority:    authority,
		Vehicle:      vehicle,
		PublicKeyHex: pubHex,
		Signature:    new(big.Int).SetBytes(sigBytes),
		Ciphertext:   ciphertext,
		Randomness:   filler,
	}, nil
}

// Assignment converts the material into a full circuit witness.
func (m *Material) Assignment() (*circuit.Circuit, error) {
	return circuit.Assignment(m.Config, m.Message, m.Authority.N, m.Vehicle.N, m.Signature, m.Randomness, m.Ciphertext)
}
