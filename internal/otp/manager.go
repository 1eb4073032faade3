package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"time"

	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
	"github.com/pkg/errors"
)

// Purpose namespaces codes so a registration code can never unlock a
// password reset.
type Purpose string

const (
	PurposeRegister       Purpose = "otp"
	PurposeForgotPassword Purpose = "forgotPasswordOtp"
)

// key builds the storage key. Issuance and verification both go through
// here; keeping a single builder is what guarantees the two sides can
// never disagree on the key scheme.
func key(userID string, purpose Purpose) string {
	return "verify:" + string(purpose) + ":" + userID
}

// Manager issues and verifies short-lived single-use numeric codes, at
// most one live code per (user, purpose). What a successful verification
// means (account verified, password-change window) is the caller's
// business; the manager only gates the code lifecycle.
type Manager struct {
	store      Store
	ttl        time.Duration
	codeLength int
}

func NewManager(store Store, ttl time.Duration, codeLength int) *Manager {
	if codeLength <= 0 {
		codeLength = 6
	}
	return &Manager{store: store, ttl: ttl, codeLength: codeLength}
}

// Generate stores a fresh code for (userID, purpose), silently
// superseding any prior one. Resend is just another Generate.
func (m *Manager) Generate(ctx context.Context, userID string, purpose Purpose) (string, error) {
	code, err := m.randomCode()
	if err != nil {
		return "", err
	}
	if err := m.store.Set(ctx, key(userID, purpose), code, m.ttl); err != nil {
		return "", appErrors.ErrStorageFailure(err)
	}
	return code, nil
}

// Verify consumes the stored code on success. A mismatch leaves the code
// in place so the user can retry until the TTL runs out.
func (m *Manager) Verify(ctx context.Context, userID, submitted string, purpose Purpose) error {
	stored, err := m.store.Get(ctx, key(userID, purpose))
	if err != nil {
		return appErrors.ErrStorageFailure(err)
	}
	if stored == "" {
		return appErrors.ErrOtpExpired
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) != 1 {
		return appErrors.ErrOtpMismatch
	}
	if err := m.store.Del(ctx, key(userID, purpose)); err != nil {
		return appErrors.ErrStorageFailure(err)
	}
	return nil
}

func (m *Manager) randomCode() (string, error) {
	digits := make([]byte, m.codeLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", errors.Wrap(err, "otp.randomCode")
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
