package session

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
)

// Session is an authenticated login on one device. Records are persisted
// as JSON under "session:<id>"; the ids a user currently holds live in
// the set "user:sessions:<userId>".
type Session struct {
	ID        string    `json:"-"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
}

// ClientMeta carries the connection details captured at login time.
type ClientMeta struct {
	IP        string
	UserAgent string
}

const (
	recordPrefix = "session:"
	indexPrefix  = "user:sessions:"
)

func recordKey(sessionID string) string { return recordPrefix + sessionID }
func indexKey(userID string) string     { return indexPrefix + userID }

// GenerateID returns a 256-bit random session id, hex encoded.
func GenerateID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "session.GenerateID")
	}
	return hex.EncodeToString(b), nil
}
