package vanet

import (
	"bytes"
	"fmt"
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	circuit "vanet-auth/circuits/vanet"
)

// ProvingKeys holds the compiled constraint system and Groth16 keys for one
// circuit configuration.
type ProvingKeys struct {
	Config circuit.Config
	CCS    constraint.ConstraintSystem
	PK     groth16.ProvingKey
	VK     groth16.VerifyingKey
}

var (
	cachedKeys *ProvingKeys
	keysMutex  sync.Mutex
)

// Setup compiles the statement for cfg and runs the Groth16 trusted setup.
// The result is cached per configuration; setup at RSA-2048 is expensive
// and the keys are reusable across proof instances.
func Setup(cfg circuit.Config) (*ProvingKeys, error) {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	if cachedKeys != nil && cachedKeys.Config == cfg {
		return cachedKeys, nil
	}

	placeholder, err := circuit.NewCircuit(cfg)
	if err != nil {
		return nil, err
	}
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, placeholder)
	if err != nil {
		return nil, fmt.Errorf("circuit compilation failed: %w", err)
	}
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, fmt.Errorf("groth16 setup failed: %w", err)
	}

	cachedKeys = &ProvingKeys{Config: cfg, CCS: ccs, PK: pk, VK: vk}
	return cachedKeys, nil
}

// Prove generates a serialized Groth16 proof that the material satisfies
// the statement.
func Prove(keys *ProvingKeys, m *Material) ([]byte, error) {
	if keys.Config != m.Config {
		return nil, fmt.Errorf("material was synthesized for %+v, keys for %+v", m.Config, keys.Config)
	}
	assignment, err := m.Assignment()
	if err != nil {
		return nil, fmt.Errorf("witness assignment failed: %w", err)
	}
	witness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness creation failed: %w", err)
	}
	proof, err := groth16.Prove(keys.CCS, keys.PK, witness)
	if err != nil {
		return nil, fmt.Errorf("proving failed: %w", err)
	}

	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("proof serialization failed: %w", err)
	}
	return buf.Bytes(), nil
}

// Verify checks a serialized proof against the statement's public view:
// the plaintext, the authority modulus, and the ciphertext the verifier
// expects (with SignatureValid pinned to 1).
func Verify(keys *ProvingKeys, proofBytes, message []byte, authorityN *big.Int, ciphertext []byte) error {
	public, err := circuit.PublicAssignment(keys.Config, message, authorityN, ciphertext)
	if err != nil {
		return err
	}
	pubWitness, err := frontend.NewWitness(public, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("public witness creation failed: %w", err)
	}
	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return fmt.Errorf("proof deserialization failed: %w", err)
	}
	if err := groth16.Verify(proof, keys.VK, pubWitness); err != nil {
		return fmt.Errorf("proof verification failed: %w", err)
	}
	return nil
}
