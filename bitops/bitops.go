package bitops

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when XOR operands differ in length.
	ErrLengthMismatch = errors.New("XOR expects two equal length buffers")
	// ErrEmptyKey is returned by RollingXOR for a zero-length key.
	ErrEmptyKey = errors.New("repeating key must not be empty")
)

// XOR combines two equal length buffers into a new one.
func XOR(first []byte, second []byte) ([]byte, error) {
	if len(first) != len(second) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(first), len(second))
	}
	res := make([]byte, len(first))
	for i := 0; i < len(first); i++ {
		res[i] = first[i] ^ second[i]
	}
	return res, nil
}

// RollingXOR encrypts (or decrypts) txt with key, cycling the key bytes.
func RollingXOR(txt []byte, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	res := make([]byte, len(txt))
	for i, c := range txt {
		res[i] = c ^ key[i%len(key)]
	}
	return res, nil
}

// GenSingleByteSlice returns ln copies of bt.
func GenSingleByteSlice(bt byte, ln int) []byte {
	key := make([]byte, ln)
	for i := range key {
		key[i] = bt
	}
	return key
}
