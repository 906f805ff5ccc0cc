// Package zkrsa provides in-circuit building blocks for RSA PKCS#1 v1.5:
// signature verification over a SHA-256 digest and encryption of a short
// message, both against a 2048-bit modulus supplied as a circuit input.
//
// Values wider than the native field are represented as emulated elements
// over the ring Z/(2^2048-1). Because the RSA modulus is an input wire
// rather than a compile-time constant, all modular arithmetic goes through
// the variable-modulus operations of the emulated field (ModMul), following
// the same pattern gnark uses for the EVM MODEXP precompile.
package zkrsa

import "math/big"

// Mod2048 parametrizes the emulated ring Z/(2^2048-1). 32 limbs of 64 bits
// hold any RSA-2048 value; every value in play stays fully reduced below
// the real RSA modulus, which is threaded through each operation
// explicitly, so the ring modulus only bounds the representation.
type Mod2048 struct{}

// NbLimbs returns the number of limbs used to represent an element.
func (Mod2048) NbLimbs() uint { return 32 }

// BitsPerLimb returns the width of a single limb.
func (Mod2048) BitsPerLimb() uint { return 64 }

// IsPrime returns false; the ring is not a field and inversion is not used.
func (Mod2048) IsPrime() bool { return false }

// Modulus returns 2^2048 - 1, the widest value 32 limbs can carry.
func (Mod2048) Modulus() *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), 2048)
	return m.Sub(m, big.NewInt(1))
}
