// Package addresspkg provides account address helpers for apps.
//
// Ledger accounts are keyed by 20-byte hex addresses written as 0x followed
// by 40 hex digits. The canonical form applies the EIP-55 mixed-case
// checksum, so one string both identifies the account and guards against
// transcription errors.
package addresspkg

import "golang.org/x/crypto/sha3"

// Zero is the canonical null address. It is never a valid transfer
// recipient.
const Zero = "0x0000000000000000000000000000000000000000"

const hexDigits = "0123456789abcdefABCDEF"

// Valid reports whether s is syntactically an account address. Letter case
// is not checked; Normalize produces the canonical form.
func Valid(s string) bool {
	if len(s) != 42 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}

	for i := 2; i < len(s); i++ {
		if !isHex(s[i]) {
			return false
		}
	}

	return true
}

// Normalize parses s and returns the canonical checksummed form.
func Normalize(s string) (string, bool) {
	if !Valid(s) {
		return "", false
	}

	lower := make([]byte, 40)

	for i := 0; i < 40; i++ {
		c := s[i+2]
		if c >= 'A' && c <= 'F' {
			c += 'a' - 'A'
		}

		lower[i] = c
	}

	return checksum(lower), true
}

// IsZero reports whether addr is the null address. The input is expected in
// canonical form.
func IsZero(addr string) bool {
	return addr == Zero
}

// checksum renders the EIP-55 form of a lowercase 40-digit hex address:
// a letter is uppercased when the matching nibble of the Keccak-256 hash of
// the lowercase address is 8 or above.
func checksum(lower []byte) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(lower)
	sum := h.Sum(nil)

	out := make([]byte, 42)
	out[0], out[1] = '0', 'x'

	for i := 0; i < 40; i++ {
		c := lower[i]

		if c >= 'a' && c <= 'f' {
			nibble := sum[i/2]
			if i%2 == 0 {
				nibble >>= 4
			} else {
				nibble &= 0x0f
			}

			if nibble >= 8 {
				c -= 'a' - 'A'
			}
		}

		out[i+2] = c
	}

	return string(out)
}

func isHex(c byte) bool {
	for i := 0; i < len(hexDigits); i++ {
		if hexDigits[i] == c {
			return true
		}
	}

	return false
}
