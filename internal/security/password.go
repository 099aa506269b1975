// Package security provides one-way password hashing. The default hasher is
// bcrypt with a fixed work factor, matching the hashes already present in the
// user collection; argon2id is available for new deployments.
package security

import (
	"errors"
	"fmt"

	"github.com/matthewhartstonge/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes passwords and verifies candidates against stored hashes.
type Hasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) (bool, error)
}

// NewHasher returns the hasher selected by name, one of "bcrypt" or "argon2id".
func NewHasher(name string, bcryptCost int) (Hasher, error) {
	switch name {
	case "bcrypt":
		return &bcryptHasher{cost: bcryptCost}, nil
	case "argon2id":
		return &argon2Hasher{config: argon2.DefaultConfig()}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}

type bcryptHasher struct {
	cost int
}

func (h *bcryptHasher) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func (h *bcryptHasher) VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

type argon2Hasher struct {
	config argon2.Config
}

func (h *argon2Hasher) HashPassword(password string) (string, error) {
	encoded, err := h.config.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

func (h *argon2Hasher) VerifyPassword(password, hash string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(hash))
}
