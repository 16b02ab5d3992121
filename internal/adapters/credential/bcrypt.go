package credential

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/port"
)

// BcryptVerifier stores a salted bcrypt hash, so two digests of the same pair
// differ. The pair is pre-hashed because bcrypt ignores input past 72 bytes.
type BcryptVerifier struct {
	cost int
}

func NewBcryptVerifier(cost int) port.CredentialVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

func (v *BcryptVerifier) Digest(username, password string) (domain.Digest, error) {
	hash, err := bcrypt.GenerateFromPassword(preHash(username, password), v.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash credentials: %w", err)
	}
	return domain.Digest(hash), nil
}

func (v *BcryptVerifier) Verify(stored domain.Digest, username, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), preHash(username, password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("failed to verify credentials: %w", err)
}

func preHash(username, password string) []byte {
	return []byte(pairHash(username, password))
}
