package internal

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// CacheKey creates a stable file name for a synthesized word.
// Format: sanitized(word)_md5(word + settings)[:12]
func CacheKey(word string, settings ...string) string {
	h := md5.New()
	h.Write([]byte(word))
	for _, s := range settings {
		h.Write([]byte{0})
		h.Write([]byte(s))
	}
	hashStr := hex.EncodeToString(h.Sum(nil))[:12]

	name := SanitizeFilename(strings.ToLower(word))
	if len(name) > 40 {
		name = name[:40]
	}
	return name + "_" + hashStr
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// isAlphaNumeric checks if a rune is an ASCII letter or digit
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
