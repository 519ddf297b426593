package security

import (
	"fmt"
	"strings"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
)

const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// NewHasher picks the EncryptionGateway for the configured algorithm.
func NewHasher(algorithm string, bcryptCost int) (gateway.EncryptionGateway, error) {
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case "", AlgorithmBcrypt:
		return NewBcryptHasher(bcryptCost), nil
	case AlgorithmArgon2id:
		return NewArgon2Hasher(DefaultArgon2Params()), nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", algorithm)
	}
}
