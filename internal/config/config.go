package config

import (
	"os"
	"time"
)

const (
	// Profile defaults applied when a client omits or blanks a field.
	DefaultGender   = "Unknown"
	DefaultLocation = "Unknown"

	// NameTagLength is how many characters of the session id go into a
	// generated display name ("User-ab12c").
	NameTagLength = 5

	// AnonTokenTTL bounds the lifetime of a minted anonymous token.
	AnonTokenTTL = 72 * time.Hour

	// StaleNoticeInterval rate-limits stale-partner diagnostics sent to
	// the ops channel.
	StaleNoticeInterval = time.Minute

	// DefaultRetentionDays is how long archived room records are kept
	// before `admin purge` drops them.
	DefaultRetentionDays = 30
)

// Getenv returns the value of key, or fallback when it is unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
