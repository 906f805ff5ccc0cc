// Package vanet defines the statement a vehicle proves to authenticate
// itself without revealing its key material: its RSA public key carries a
// valid PKCS#1 v1.5 certificate (a signature over the SHA-256 digest of the
// hex-encoded modulus) issued by a known authority, and a given plaintext
// was PKCS#1 v1.5 encrypted under that same public key.
//
// Public: the authority modulus, the plaintext, the certificate-check
// result, and the word-packed ciphertext. Private: the vehicle modulus, its
// hex encoding, the certificate signature, and the encryption randomness.
package vanet

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/sha2"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/uints"

	"vanet-auth/circuits/lib/zkrsa"
)

const (
	// DefaultKeyBits and DefaultMessageLen are the tested VANET parameters:
	// RSA-2048 certificates over a 111-byte address+GPS record.
	DefaultKeyBits    = 2048
	DefaultMessageLen = 111

	// bytesPerWord is the ciphertext grouping factor. 30 bytes (240 bits)
	// per public word stays under the BN254 field size and cuts the number
	// of public ciphertext values from 256 to 9.
	bytesPerWord = 30

	// limbBits is the limb width of the emulated integer representation.
	limbBits = 64

	// maxKeyBits is the capacity of zkrsa.Mod2048.
	maxKeyBits = 2048
)

// ErrInvalidConfig reports a key/plaintext length combination the statement
// cannot be built for. It is always detected before any witness work.
var ErrInvalidConfig = errors.New("invalid circuit configuration")

// Config fixes the statement's dimensions. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	Name       string
	KeyBits    int
	MessageLen int
}

// DefaultConfig returns the tested RSA-2048 / 111-byte configuration.
func DefaultConfig() Config {
	return Config{Name: "vanet_rsa2048", KeyBits: DefaultKeyBits, MessageLen: DefaultMessageLen}
}

// Validate checks the dimensions against the limb width and the PKCS#1 v1.5
// minimum-padding requirement.
func (c Config) Validate() error {
	if c.KeyBits <= 0 || c.KeyBits%limbBits != 0 {
		return fmt.Errorf("%w: key length %d must be a positive multiple of %d bits", ErrInvalidConfig, c.KeyBits, limbBits)
	}
	if c.KeyBits > maxKeyBits {
		return fmt.Errorf("%w: key length %d exceeds the %d-bit limb capacity", ErrInvalidConfig, c.KeyBits, maxKeyBits)
	}
	if c.MessageLen <= 0 || c.MessageLen > c.KeyBytes()-zkrsa.MinPadding {
		return fmt.Errorf("%w: message length %d must be in [1, %d] for a %d-bit key", ErrInvalidConfig, c.MessageLen, c.KeyBytes()-zkrsa.MinPadding, c.KeyBits)
	}
	return nil
}

// KeyBytes returns the modulus length in bytes.
func (c Config) KeyBytes() int { return c.KeyBits / 8 }

// HexLen returns the length of the hex encoding of the modulus.
func (c Config) HexLen() int { return c.KeyBits / 4 }

// RandomnessLen returns the PKCS#1 v1.5 filler length for this statement.
func (c Config) RandomnessLen() int {
	return zkrsa.RandomnessLength(c.KeyBytes(), c.MessageLen)
}

// WordCount returns the number of packed ciphertext words.
func (c Config) WordCount() int {
	return (c.KeyBytes() + bytesPerWord - 1) / bytesPerWord
}

// Circuit is the VANET authentication statement. Wire counts are fixed by
// the Config used in NewCircuit; Define only composes the sub-circuits.
type Circuit struct {
	// SignatureValid is 1 iff the certificate signature verifies against
	// the authority modulus and the digest of the vehicle key.
	SignatureValid frontend.Variable `gnark:",public"`

	// CipherWords is the ciphertext, packed 30 bytes per word big-endian.
	CipherWords []frontend.Variable `gnark:",public"`

	// Message is the plaintext being proven encrypted.
	Message []uints.U8 `gnark:",public"`

	// AuthorityModulus is the trusted authority's RSA modulus.
	AuthorityModulus emulated.Element[zkrsa.Mod2048] `gnark:",public"`

	// PublicKeyHex is the ASCII hex encoding of the vehicle modulus,
	// KeyBits/4 bytes. The certificate signs its SHA-256 digest.
	PublicKeyHex []uints.U8

	// Signature is the authority's certificate signature as an integer.
	Signature emulated.Element[zkrsa.Mod2048]

	// VehicleModulus is the vehicle's own RSA modulus. It stays private:
	// the statement only reveals that it is certified and was used for
	// the encryption.
	VehicleModulus emulated.Element[zkrsa.Mod2048]

	// Randomness is the PKCS#1 v1.5 padding filler of the encryption.
	Randomness []uints.U8
}

// NewCircuit allocates a placeholder circuit for cfg, for compilation and
// as the shape of witness assignments.
func NewCircuit(cfg Config) (*Circuit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Circuit{
		CipherWords:  make([]frontend.Variable, cfg.WordCount()),
		Message:      make([]uints.U8, cfg.MessageLen),
		PublicKeyHex: make([]uints.U8, cfg.HexLen()),
		Randomness:   make([]uints.U8, cfg.RandomnessLen()),
	}, nil
}

func (c *Circuit) Define(api frontend.API) error {
	uapi, err := uints.NewBytes(api)
	if err != nil {
		return err
	}
	f, err := emulated.NewField[zkrsa.Mod2048](api)
	if err != nil {
		return err
	}
	keyBytes := len(c.PublicKeyHex) / 2

	// Digest of the vehicle key, as the authority signed it.
	h, err := sha2.New(api)
	if err != nil {
		return err
	}
	h.Write(c.PublicKeyHex)
	digest := h.Sum()

	// The signature is a witness, so pin down its range before using it:
	// strictly below the authority modulus. The bound must be reduced,
	// AssertIsLessOrEqual rejects operands carrying overflow.
	bound := f.Reduce(f.Sub(&c.AuthorityModulus, f.One()))
	f.AssertIsLessOrEqual(&c.Signature, bound)

	valid, err := zkrsa.VerifyPKCS1v15(api, f, &c.AuthorityModulus, digest, &c.Signature, keyBytes)
	if err != nil {
		return err
	}
	api.AssertIsEqual(valid, c.SignatureValid)

	// Encryption of the public message under the certified key.
	zkrsa.AssertRandomnessCompliance(api, c.Randomness)
	ct, err := zkrsa.EncryptPKCS1v15(api, uapi, f, &c.VehicleModulus, c.Message, c.Randomness, keyBytes)
	if err != nil {
		return err
	}

	words := packWords(api, ct)
	if len(words) != len(c.CipherWords) {
		return fmt.Errorf("ciphertext packs into %d words, circuit has %d", len(words), len(c.CipherWords))
	}
	for i := range words {
		api.AssertIsEqual(words[i], c.CipherWords[i])
	}
	return nil
}

// packWords groups ciphertext bytes into bytesPerWord-byte big-endian
// words; the trailing word holds the remainder.
func packWords(api frontend.API, bs []uints.U8) []frontend.Variable {
	words := make([]frontend.Variable, 0, (len(bs)+bytesPerWord-1)/bytesPerWord)
	for start := 0; start < len(bs); start += bytesPerWord {
		end := min(start+bytesPerWord, len(bs))
		var w frontend.Variable = 0
		for i := start; i < end; i++ {
			w = api.Add(api.Mul(w, 256), bs[i].Val)
		}
		words = append(words, w)
	}
	return words
}
