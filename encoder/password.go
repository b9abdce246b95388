// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package encoder

import (
	"crypto/subtle"
	"strconv"
	"unicode/utf16"
)

// HashPassword computes the link password hash (acc*31 + unit, 32-bit, base 36).
// Not cryptographically secure.
func HashPassword(password string) string {
	var hash uint32
	for _, unit := range utf16.Encode([]rune(password)) {
		hash = hash*31 + uint32(unit)
	}

	abs := int64(int32(hash))
	if abs < 0 {
		abs = -abs
	}
	return strconv.FormatInt(abs, 36)
}

// VerifyPassword reports whether password hashes to storedHash
func VerifyPassword(password, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(storedHash)) == 1
}
