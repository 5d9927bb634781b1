package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// NormalizeText collapses whitespace and lowercases text so semantically
// identical queries map to the same cache key.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// CacheKey derives a content-addressed key from normalized text and the
// purpose of the computation. Identical (text, purpose) pairs always map to
// the same key.
func CacheKey(purpose, normalizedText string) string {
	hash := sha256.Sum256([]byte(purpose + "|" + normalizedText))
	return fmt.Sprintf("cache:%s:%s", purpose, hex.EncodeToString(hash[:]))
}
