package klvutil

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/ansel1/merry"
)

var ErrInvalidHexString = errors.New("invalid hex string")

// ParseHex decodes a hex string, ignoring "0x" prefixes and any characters
// which are not hex digits, such as whitespace, '|' and '.'.
func ParseHex(s string) ([]byte, error) {
	s = strings.ReplaceAll(strings.ReplaceAll(s, "0x", ""), "0X", "")
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, merry.Here(ErrInvalidHexString).WithCause(err)
	}
	return b, nil
}

// ParseHexUint parses an unsigned integer from a hex string prefixed with
// "0x", e.g. "0x0a" or "0x810a".
func ParseHexUint(s string) (uint64, error) {
	if !strings.HasPrefix(s, "0x") {
		return 0, merry.Here(ErrInvalidHexString).Append("must start with 0x")
	}
	digits := s[2:]
	if len(digits) == 0 {
		return 0, merry.Here(ErrInvalidHexString).Append("no digits")
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return 0, merry.Here(ErrInvalidHexString).WithCause(err)
	}
	if len(b) > 8 {
		return 0, merry.Here(ErrInvalidHexString).Append("must be max 8 bytes (16 hex characters)")
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v, nil
}
