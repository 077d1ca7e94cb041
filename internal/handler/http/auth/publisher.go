// Package auth implements the admin surface's shared-secret authentication.
// Every admin operation except the public article read carries a
// publisher_key form field that must match the configured secret exactly.
package auth

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"pressroom/internal/handler/http/respond"
)

// PublisherKeyField is the form field carrying the shared secret.
const PublisherKeyField = "publisher_key"

// msgIncorrectKey is the body returned on any key mismatch, regardless of
// the rest of the input.
const msgIncorrectKey = "Incorrect publisher_key."

// weakKeys are values that must never be accepted as the configured secret.
var weakKeys = map[string]struct{}{
	"password":      {},
	"secret":        {},
	"changeme":      {},
	"publisher_key": {},
	"test":          {},
	"admin":         {},
}

// ValidateKey checks a configured publisher key at startup. It rejects
// empty and well-known placeholder values and keys too short to resist
// guessing.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("publisher key is not set")
	}
	if _, weak := weakKeys[key]; weak {
		return fmt.Errorf("publisher key is a well-known placeholder value")
	}
	if len(key) < 16 {
		return fmt.Errorf("publisher key must be at least 16 characters, got %d", len(key))
	}
	return nil
}

// RequireKey returns middleware that rejects requests whose publisher_key
// form field does not exactly match key. The comparison is constant-time.
// A mismatch always yields 403 with the same body, before any other input
// is looked at.
func RequireKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				recordAuth("rejected")
				respond.Error(w, http.StatusForbidden, msgIncorrectKey)
				return
			}

			supplied := r.PostForm.Get(PublisherKeyField)
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
				recordAuth("rejected")
				respond.Error(w, http.StatusForbidden, msgIncorrectKey)
				return
			}

			recordAuth("accepted")
			next.ServeHTTP(w, r)
		})
	}
}
