package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"

	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/port"
)

// SHA256Verifier digests the raw bytes of the credential pair. The same pair
// always yields the same digest.
type SHA256Verifier struct{}

func NewSHA256Verifier() port.CredentialVerifier {
	return &SHA256Verifier{}
}

func (v *SHA256Verifier) Digest(username, password string) (domain.Digest, error) {
	return domain.Digest(pairHash(username, password)), nil
}

func (v *SHA256Verifier) Verify(stored domain.Digest, username, password string) (bool, error) {
	digest, err := v.Digest(username, password)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(digest), []byte(stored)) == 1, nil
}

// pairHash is the hex SHA-256 of both fields, each prefixed with its length so
// ("ab", "c") and ("a", "bc") stay apart. Bytes are hashed as given, valid
// UTF-8 or not.
func pairHash(username, password string) string {
	h := sha256.New()
	for _, field := range []string{username, password} {
		h.Write(binary.AppendUvarint(nil, uint64(len(field))))
		h.Write([]byte(field))
	}
	return hex.EncodeToString(h.Sum(nil))
}
