package vanet

import (
	"errors"
	"fmt"
)

// Synthesis failures fall into three buckets the caller can tell apart:
// configuration errors (circuits/vanet.ErrInvalidConfig, raised before any
// key material is touched), host-cryptography failures (CryptoError, naming
// the operation), and padding-consistency failures below. None of them are
// retried here; the caller decides whether to regenerate key material.
var (
	// ErrMalformedPadding reports a decrypted block that is not PKCS#1
	// v1.5 conformant (bad markers, missing terminator, short filler).
	ErrMalformedPadding = errors.New("decrypted block is not PKCS#1 v1.5 conformant")

	// ErrPaddingMismatch reports that the plaintext recovered during
	// randomness extraction differs from the message that was encrypted.
	// It means the host library's padding layout disagrees with the
	// circuit's assumptions and must never be ignored.
	ErrPaddingMismatch = errors.New("recovered plaintext does not match the encrypted message")
)

// CryptoError wraps a failure inside a host cryptography primitive during
// witness synthesis, identifying the originating operation.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *CryptoError) Unwrap() error { return e.Err }
