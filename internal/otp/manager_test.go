package otp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
)

func newTestManager() *Manager {
	return NewManager(NewMemoryStore(), 5*time.Minute, 6)
}

func Test_GenerateAndVerify(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	code, err := m.Generate(ctx, "u1", PurposeRegister)
	require.NoError(t, err)
	require.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9')
	}

	t.Run("wrong code leaves the stored one intact", func(t *testing.T) {
		err := m.Verify(ctx, "u1", "000000x", PurposeRegister)
		assert.ErrorIs(t, err, appErrors.ErrOtpMismatch)

		// Retry with the right one still succeeds.
		require.NoError(t, m.Verify(ctx, "u1", code, PurposeRegister))
	})

	t.Run("codes are single-use", func(t *testing.T) {
		err := m.Verify(ctx, "u1", code, PurposeRegister)
		assert.ErrorIs(t, err, appErrors.ErrOtpExpired)
	})
}

func Test_Verify_NeverIssued(t *testing.T) {
	m := newTestManager()
	err := m.Verify(context.Background(), "nobody", "123456", PurposeRegister)
	assert.ErrorIs(t, err, appErrors.ErrOtpExpired)
}

func Test_Generate_Supersedes(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	first, err := m.Generate(ctx, "u1", PurposeForgotPassword)
	require.NoError(t, err)
	second, err := m.Generate(ctx, "u1", PurposeForgotPassword)
	require.NoError(t, err)

	if first != second {
		err = m.Verify(ctx, "u1", first, PurposeForgotPassword)
		assert.ErrorIs(t, err, appErrors.ErrOtpMismatch, "superseded code must no longer verify")
	}
	require.NoError(t, m.Verify(ctx, "u1", second, PurposeForgotPassword))
}

func Test_PurposesAreIndependent(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	regCode, err := m.Generate(ctx, "u1", PurposeRegister)
	require.NoError(t, err)
	_, err = m.Generate(ctx, "u1", PurposeForgotPassword)
	require.NoError(t, err)

	// Consuming the register code must not touch the reset code.
	require.NoError(t, m.Verify(ctx, "u1", regCode, PurposeRegister))

	err = m.Verify(ctx, "u1", "999999", PurposeForgotPassword)
	assert.ErrorIs(t, err, appErrors.ErrOtpMismatch)
}

func Test_CodeExpiry(t *testing.T) {
	m := NewManager(NewMemoryStore(), 10*time.Millisecond, 6)
	ctx := context.Background()

	code, err := m.Generate(ctx, "u1", PurposeRegister)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	err = m.Verify(ctx, "u1", code, PurposeRegister)
	assert.ErrorIs(t, err, appErrors.ErrOtpExpired)
}
