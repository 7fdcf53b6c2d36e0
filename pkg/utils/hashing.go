package utils

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// MinAdminPasswordLength is the shortest admin password hashadmin accepts.
const MinAdminPasswordLength = 12

var ErrWeakPassword = errors.New("password too short")

// HashAdminPassword produces the bcrypt value stored in ADMIN_PASSWORD_HASH.
// Surrounding whitespace, such as a trailing newline from stdin, is dropped.
func HashAdminPassword(password string) (string, error) {
	password = strings.TrimSpace(password)
	if len(password) < MinAdminPasswordLength {
		return "", fmt.Errorf("%w: need at least %d characters", ErrWeakPassword, MinAdminPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash admin password: %w", err)
	}
	return string(hash), nil
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}
