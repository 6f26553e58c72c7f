package fccid

// IsValidCID reports whether s is a well-formed CID: the literal
// "sha256:" followed by exactly 64 characters from [0-9a-f]. Purely
// syntactic; it does not verify that any shape produces the digest.
// Malformed input yields false, never an error.
func IsValidCID(s string) bool {
	if len(s) != len(Prefix)+DigestLen {
		return false
	}
	if s[:len(Prefix)] != Prefix {
		return false
	}
	return isLowerHex(s[len(Prefix):])
}

// IsValidShortCID reports whether s is a well-formed short CID: exactly
// 8 characters from [0-9a-f].
func IsValidShortCID(s string) bool {
	return len(s) == ShortLen && isLowerHex(s)
}

func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') {
			continue
		}
		return false
	}
	return true
}
