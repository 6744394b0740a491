package utils

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

// NewBookingReference returns a short upper-case reference like "BK-1F3A9C0D2E".
func NewBookingReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BK-" + strings.ToUpper(id[:10])
}

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
