// Package codec converts between raw bytes, hexadecimal and base64 text.
//
// Base64 here is the unpadded variant: every group of three bytes becomes
// four symbols and a short final group is zero-filled instead of padded
// with '='.
package codec

import (
	"errors"
	"fmt"
)

const (
	hexAlphabet    = "0123456789abcdef"
	base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
)

// ErrInvalidEncoding is returned for malformed hex or base64 input.
var ErrInvalidEncoding = errors.New("invalid encoding")

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func base64Value(c byte) (uint32, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return uint32(c - 'A'), true
	case c >= 'a' && c <= 'z':
		return uint32(c-'a') + 26, true
	case c >= '0' && c <= '9':
		return uint32(c-'0') + 52, true
	case c == '+':
		return 62, true
	case c == '/':
		return 63, true
	}
	return 0, false
}

// BytesToHex returns the lowercase hex form of src, high nibble first.
func BytesToHex(src []byte) string {
	res := make([]byte, 0, 2*len(src))
	for _, bt := range src {
		res = append(res, hexAlphabet[bt>>4], hexAlphabet[bt&15])
	}
	return string(res)
}

// HexToBytes decodes hex text in either case. Odd-length input is rejected
// rather than dropping the dangling nibble.
func HexToBytes(src string) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, fmt.Errorf("%w: odd hex length %d", ErrInvalidEncoding, len(src))
	}
	res := make([]byte, len(src)/2)
	for i := 0; i < len(src); i++ {
		n, ok := hexNibble(src[i])
		if !ok {
			return nil, fmt.Errorf("%w: bad hex character %q at offset %d", ErrInvalidEncoding, src[i], i)
		}
		if i%2 == 0 {
			res[i/2] = n
		} else {
			res[i/2] = res[i/2]<<4 | n
		}
	}
	return res, nil
}

// BytesToBase64 encodes src without padding. Groups are packed from the end
// of the buffer backwards, each 24-bit group emitting its four symbols low
// bits first, and the whole output is reversed at the end.
func BytesToBase64(src []byte) string {
	groups := (len(src) + 2) / 3
	res := make([]byte, 0, groups*4)
	for g := groups - 1; g >= 0; g-- {
		var seg uint32
		for i := 0; i < 3; i++ {
			seg <<= 8
			if j := g*3 + i; j < len(src) {
				seg |= uint32(src[j])
			}
		}
		for shift := 0; shift < 4; shift++ {
			res = append(res, base64Alphabet[(seg>>(6*shift))&63])
		}
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return string(res)
}

// Base64ToBytes decodes text produced by BytesToBase64. The length must be a
// multiple of four and '=' is not accepted.
func Base64ToBytes(src string) ([]byte, error) {
	if len(src)%4 != 0 {
		return nil, fmt.Errorf("%w: base64 length %d is not a multiple of 4", ErrInvalidEncoding, len(src))
	}
	res := make([]byte, 0, len(src)/4*3)
	for g := 0; g < len(src); g += 4 {
		var seg uint32
		for i := 0; i < 4; i++ {
			v, ok := base64Value(src[g+i])
			if !ok {
				return nil, fmt.Errorf("%w: bad base64 character %q at offset %d", ErrInvalidEncoding, src[g+i], g+i)
			}
			seg = seg<<6 | v
		}
		res = append(res, byte(seg>>16), byte(seg>>8), byte(seg))
	}
	return res, nil
}

// HexToBase64 re-encodes hex text as base64.
func HexToBase64(src string) (string, error) {
	bts, err := HexToBytes(src)
	if err != nil {
		return "", err
	}
	return BytesToBase64(bts), nil
}

// Base64ToHex re-encodes base64 text as hex.
func Base64ToHex(src string) (string, error) {
	bts, err := Base64ToBytes(src)
	if err != nil {
		return "", err
	}
	return BytesToHex(bts), nil
}
