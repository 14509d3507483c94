package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=hash.go -destination=mock_hash.go -package=auth

type HashServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

// Password length bounds. bcrypt ignores everything past 72 bytes, so longer
// passwords are rejected instead of silently truncated.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

var (
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")
)

// HashService hashes member passwords with bcrypt. The zero value uses
// bcrypt.DefaultCost.
type HashService struct {
	Cost int
}

func (h *HashService) cost() int {
	if h.Cost < bcrypt.MinCost {
		return bcrypt.DefaultCost
	}
	return h.Cost
}

func (h *HashService) HashPassword(password string) (string, error) {
	switch {
	case len(password) < MinPasswordLength:
		return "", ErrPasswordTooShort
	case len(password) > MaxPasswordLength:
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost())
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *HashService) ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
