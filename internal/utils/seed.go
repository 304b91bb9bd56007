package utils

import (
	"encoding/binary"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// SeedFromString converts a user supplied seed into a uint64. Decimal
// numbers are used as-is so "--seed 42" means 42; any other string is hashed
// with BLAKE2b-256 and the first eight bytes are used.
func SeedFromString(s string) uint64 {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n
	}
	sum := blake2b.Sum256([]byte(s))
	return binary.BigEndian.Uint64(sum[:8])
}
