package port

import "github.com/rafaelleal24/inventory/internal/core/domain"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type CredentialVerifier interface {
	Digest(username, password string) (domain.Digest, error)
	Verify(stored domain.Digest, username, password string) (bool, error)
}
