package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// GenerateReference generates a random reference number such as INV-3f2a-91cd.
// Used for invoice numbers in the seeded baseline data.
func GenerateReference(prefix string) (string, error) {
	bytes := make([]byte, 4)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	hex := hex.EncodeToString(bytes)
	return fmt.Sprintf("%s-%s-%s", strings.ToUpper(prefix), hex[0:4], hex[4:8]), nil
}
