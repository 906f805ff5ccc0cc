package vanet

import (
	"fmt"
	"math/big"
)

// PackCiphertext groups concrete ciphertext bytes the same way the circuit
// does: 30 bytes per word, big-endian, remainder in the last word. The
// result is the expected value of the CipherWords public inputs.
func PackCiphertext(ct []byte) []*big.Int {
	words := make([]*big.Int, 0, (len(ct)+bytesPerWord-1)/bytesPerWord)
	for start := 0; start < len(ct); start += bytesPerWord {
		end := min(start+bytesPerWord, len(ct))
		words = append(words, new(big.Int).SetBytes(ct[start:end]))
	}
	return words
}

// UnpackCiphertext reverses PackCiphertext, reconstructing the keyBytes
// ciphertext a verifier needs to decrypt or compare against.
func UnpackCiphertext(words []*big.Int, keyBytes int) ([]byte, error) {
	ct := make([]byte, 0, keyBytes)
	remaining := keyBytes
	for i, w := range words {
		n := min(bytesPerWord, remaining)
		if n <= 0 {
			return nil, fmt.Errorf("%d words exceed a %d-byte ciphertext", len(words), keyBytes)
		}
		if w.BitLen() > n*8 {
			return nil, fmt.Errorf("word %d has %d bits, at most %d expected", i, w.BitLen(), n*8)
		}
		ct = append(ct, w.FillBytes(make([]byte, n))...)
		remaining -= n
	}
	if remaining != 0 {
		return nil, fmt.Errorf("%d words cover %d bytes, want %d", len(words), keyBytes-remaining, keyBytes)
	}
	return ct, nil
}
