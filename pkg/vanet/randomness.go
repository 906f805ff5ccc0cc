package vanet

import (
	"bytes"
	"crypto/rsa"
	"fmt"
	"math/big"
)

// RecoverPKCS1v15Randomness re-derives the padding filler the standard
// library drew during EncryptPKCS1v15. The library does not expose it, so
// the ciphertext is run through the raw private-key operation and the
// padded block
//
//	0x00 0x02 <filler> 0x00 <message>
//
// is sliced apart. Both segments are returned; the caller is responsible
// for checking the message against what it encrypted.
func RecoverPKCS1v15Randomness(priv *rsa.PrivateKey, ciphertext []byte) (filler, message []byte, err error) {
	k := priv.Size()
	if len(ciphertext) != k {
		return nil, nil, fmt.Errorf("%w: ciphertext is %d bytes, want %d", ErrMalformedPadding, len(ciphertext), k)
	}
	c := new(big.Int).SetBytes(ciphertext)
	if c.Cmp(priv.N) >= 0 {
		return nil, nil, fmt.Errorf("%w: ciphertext value exceeds the modulus", ErrMalformedPadding)
	}

	block := new(big.Int).Exp(c, priv.D, priv.N).FillBytes(make([]byte, k))
	if block[0] != 0x00 || block[1] != 0x02 {
		return nil, nil, fmt.Errorf("%w: block starts %02x %02x, want 00 02", ErrMalformedPadding, block[0], block[1])
	}
	sep := bytes.IndexByte(block[2:], 0x00)
	if sep < 0 {
		return nil, nil, fmt.Errorf("%w: missing terminator byte", ErrMalformedPadding)
	}
	if sep < 8 {
		return nil, nil, fmt.Errorf("%w: filler is %d bytes, want at least 8", ErrMalformedPadding, sep)
	}
	return block[2 : 2+sep], block[2+sep+1:], nil
}
