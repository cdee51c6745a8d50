package models

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Operator is the single account allowed to use the HTTP API. It lives in
// the configuration, not in the database.
type Operator struct {
	Username     string
	PasswordHash string
}

// HashPassword hashes password for storage in auth.password_hash.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckCredentials reports whether username and password match the operator.
func (o Operator) CheckCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(o.Username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)) == nil
	return userOK && passOK
}
