package utils

import (
	"github.com/google/uuid"
)

// IsUUID reports whether s parses as a UUID. Property detail lookups accept
// either a UUID or a slug and are disambiguated with this check.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
