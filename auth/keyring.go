// Package auth provides a high-level API for persisting and retrieving the Shikimori API token from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service = "shikigo"
	user    = "shikimori-token"
)

// SetToken persists the Shikimori OAuth token to the system keyring.
func SetToken(token string) error {
	return keyring.Set(service, user, token)
}

// GetToken retrieves the Shikimori OAuth token from the system keyring.
func GetToken() (string, error) {
	return keyring.Get(service, user)
}

// DeleteToken removes the Shikimori OAuth token from the system keyring.
func DeleteToken() error {
	return keyring.Delete(service, user)
}

// Token returns the stored token, or an empty string when none is set.
// Unauthenticated requests still work for public searches, so a missing
// token is not an error here.
func Token() string {
	token, err := GetToken()
	if err != nil {
		return ""
	}
	return token
}
