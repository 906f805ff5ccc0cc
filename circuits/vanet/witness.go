package vanet

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/uints"

	"vanet-auth/circuits/lib/zkrsa"
)

// ModulusHex returns the lowercase hex encoding of an RSA modulus, zero
// padded on the left to width characters. This is the exact byte sequence
// the authority certifies; a canonical full-width modulus never needs the
// padding, but the contract is a fixed length.
func ModulusHex(n *big.Int, width int) ([]byte, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, fmt.Errorf("modulus must be a positive integer")
	}
	s := n.Text(16)
	if len(s) > width {
		return nil, fmt.Errorf("modulus hex is %d chars, want at most %d", len(s), width)
	}
	return []byte(strings.Repeat("0", width-len(s)) + s), nil
}

// Assignment builds the full witness for one proof instance. Every length
// is validated against cfg; the expected SignatureValid value is fixed to 1
// since the assignment is only satisfiable for a genuine certificate.
func Assignment(cfg Config, message []byte, authorityN, vehicleN, signature *big.Int, randomness, ciphertext []byte) (*Circuit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(message) != cfg.MessageLen {
		return nil, fmt.Errorf("message is %d bytes, config expects %d", len(message), cfg.MessageLen)
	}
	if len(randomness) != cfg.RandomnessLen() {
		return nil, fmt.Errorf("randomness is %d bytes, config expects %d", len(randomness), cfg.RandomnessLen())
	}
	if len(ciphertext) != cfg.KeyBytes() {
		return nil, fmt.Errorf("ciphertext is %d bytes, config expects %d", len(ciphertext), cfg.KeyBytes())
	}
	pubHex, err := ModulusHex(vehicleN, cfg.HexLen())
	if err != nil {
		return nil, err
	}

	return &Circuit{
		SignatureValid:   1,
		CipherWords:      toVariables(PackCiphertext(ciphertext)),
		Message:          uints.NewU8Array(message),
		AuthorityModulus: emulated.ValueOf[zkrsa.Mod2048](authorityN),
		PublicKeyHex:     uints.NewU8Array(pubHex),
		Signature:        emulated.ValueOf[zkrsa.Mod2048](signature),
		VehicleModulus:   emulated.ValueOf[zkrsa.Mod2048](vehicleN),
		Randomness:       uints.NewU8Array(randomness),
	}, nil
}

// PublicAssignment builds the verifier's view of the statement: the
// plaintext, the authority modulus, the packed ciphertext, and the expected
// certificate-check result of 1. Secret wires stay unset.
func PublicAssignment(cfg Config, message []byte, authorityN *big.Int, ciphertext []byte) (*Circuit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(message) != cfg.MessageLen {
		return nil, fmt.Errorf("message is %d bytes, config expects %d", len(message), cfg.MessageLen)
	}
	if len(ciphertext) != cfg.KeyBytes() {
		return nil, fmt.Errorf("ciphertext is %d bytes, config expects %d", len(ciphertext), cfg.KeyBytes())
	}
	return &Circuit{
		SignatureValid:   1,
		CipherWords:      toVariables(PackCiphertext(ciphertext)),
		Message:          uints.NewU8Array(message),
		AuthorityModulus: emulated.ValueOf[zkrsa.Mod2048](authorityN),
	}, nil
}

func toVariables(words []*big.Int) []frontend.Variable {
	vars := make([]frontend.Variable, len(words))
	for i, w := range words {
		vars[i] = w
	}
	return vars
}
