package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewRef builds a human-readable reference number such as "PROP-20260831-3fa2".
// The random suffix keeps concurrent creations apart; a unique index on the
// column plus insert retry covers the residual collision chance.
func NewRef(prefix string, now time.Time) string {
	b := make([]byte, 2)
	_, _ = rand.Read(b)
	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format("20060102"), hex.EncodeToString(b))
}
