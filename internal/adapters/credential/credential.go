package credential

import (
	"fmt"

	"github.com/rafaelleal24/inventory/internal/core/port"
)

const (
	HasherSHA256 = "sha256"
	HasherBcrypt = "bcrypt"
)

// NewVerifier returns the verifier named by hasher. An empty name selects sha256.
func NewVerifier(hasher string, bcryptCost int) (port.CredentialVerifier, error) {
	switch hasher {
	case "", HasherSHA256:
		return NewSHA256Verifier(), nil
	case HasherBcrypt:
		return NewBcryptVerifier(bcryptCost), nil
	default:
		return nil, fmt.Errorf("unknown credential hasher: %q", hasher)
	}
}
