package uuidcodec

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

const canonicalLen = 36

var hyphenPositions = [...]int{8, 13, 18, 23}

// FromHalves builds a UUID from its most and least significant 64 bits,
// each laid out big-endian.
func FromHalves(msb, lsb uint64) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], msb)
	binary.BigEndian.PutUint64(u[8:], lsb)
	return u
}

// Halves is the inverse of FromHalves.
func Halves(u uuid.UUID) (msb, lsb uint64) {
	return binary.BigEndian.Uint64(u[:8]), binary.BigEndian.Uint64(u[8:])
}

// ParseCanonical parses the hyphenated 8-4-4-4-12 form only. Unlike
// uuid.Parse it rejects the braced, URN and unhyphenated forms. Hex digits
// may be of either case.
func ParseCanonical(s string) (uuid.UUID, error) {
	if len(s) != canonicalLen {
		return uuid.Nil, NewMalformedValueError("length", s, fmt.Errorf("got %d characters, want %d", len(s), canonicalLen))
	}

	for _, i := range hyphenPositions {
		if s[i] != '-' {
			return uuid.Nil, NewMalformedValueError("hyphen", s, fmt.Errorf("expected '-' at position %d", i))
		}
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, NewMalformedValueError("hex", s, err)
	}
	return u, nil
}

// MustParseCanonical is like ParseCanonical but panics on error.
func MustParseCanonical(s string) uuid.UUID {
	u, err := ParseCanonical(s)
	if err != nil {
		panic(err)
	}
	return u
}
