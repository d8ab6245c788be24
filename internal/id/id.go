package id

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NewTransactionID returns a random identifier for a transaction or log entry.
func NewTransactionID() string {
	return uuid.NewString()
}

// ParseAccountID parses an operator-supplied account ID such as "42".
// Surrounding whitespace is ignored and leading zeros are accepted.
func ParseAccountID(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid account ID %q: %w", s, err)
	}
	return n, nil
}

// FormatAccountID returns the canonical form written to the accounts file.
func FormatAccountID(n int) string {
	return strconv.Itoa(n)
}
