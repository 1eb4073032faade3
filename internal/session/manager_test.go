package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
)

var errBackendDown = errors.New("backend down")

// flakyStore wraps a MemoryStore and fails every call while tripped,
// standing in for an unreachable redis.
type flakyStore struct {
	inner *MemoryStore
	down  atomic.Bool
}

func newFlakyStore() *flakyStore {
	return &flakyStore{inner: NewMemoryStore(time.Minute)}
}

func (f *flakyStore) Save(ctx context.Context, s Session, ttl time.Duration) error {
	if f.down.Load() {
		return errBackendDown
	}
	return f.inner.Save(ctx, s, ttl)
}

func (f *flakyStore) Get(ctx context.Context, id string) (*Session, error) {
	if f.down.Load() {
		return nil, errBackendDown
	}
	return f.inner.Get(ctx, id)
}

func (f *flakyStore) Delete(ctx context.Context, id string) error {
	if f.down.Load() {
		return errBackendDown
	}
	return f.inner.Delete(ctx, id)
}

func (f *flakyStore) AddToIndex(ctx context.Context, userID, id string, ttl time.Duration) error {
	if f.down.Load() {
		return errBackendDown
	}
	return f.inner.AddToIndex(ctx, userID, id, ttl)
}

func (f *flakyStore) RemoveFromIndex(ctx context.Context, userID, id string) error {
	if f.down.Load() {
		return errBackendDown
	}
	return f.inner.RemoveFromIndex(ctx, userID, id)
}

func (f *flakyStore) IndexMembers(ctx context.Context, userID string) ([]string, error) {
	if f.down.Load() {
		return nil, errBackendDown
	}
	return f.inner.IndexMembers(ctx, userID)
}

func (f *flakyStore) ClearIndex(ctx context.Context, userID string) error {
	if f.down.Load() {
		return errBackendDown
	}
	return f.inner.ClearIndex(ctx, userID)
}

func (f *flakyStore) Ping(ctx context.Context) error {
	if f.down.Load() {
		return errBackendDown
	}
	return f.inner.Ping(ctx)
}

func newTestManager(t *testing.T) (*Manager, *flakyStore) {
	t.Helper()
	primary := newFlakyStore()
	fallback := NewMemoryStore(time.Minute)
	m := NewManager(primary, fallback, time.Hour, 10*time.Millisecond, nil)
	t.Cleanup(func() {
		m.Close()
		primary.inner.Close()
		fallback.Close()
	})
	return m, primary
}

func Test_Manager_CreateValidateRevoke(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	id, err := m.Create(ctx, "u1", ClientMeta{IP: "127.0.0.1", UserAgent: "test"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	s, err := m.Validate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "u1", s.UserID)
	assert.Equal(t, "127.0.0.1", s.IP)
	assert.Equal(t, "test", s.UserAgent)

	require.NoError(t, m.Revoke(ctx, id))

	_, err = m.Validate(ctx, id)
	assert.ErrorIs(t, err, appErrors.ErrSessionExpired)
}

func Test_Manager_RevokeIdempotent(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	id, err := m.Create(ctx, "u1", ClientMeta{})
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, id))
	require.NoError(t, m.Revoke(ctx, id), "second revoke must be a no-op")
	require.NoError(t, m.Revoke(ctx, "never-existed"))
}

func Test_Manager_RevokeAll(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := m.Create(ctx, "u1", ClientMeta{})
		require.NoError(t, err)
	}
	otherID, err := m.Create(ctx, "u2", ClientMeta{})
	require.NoError(t, err)

	count, err := m.RevokeAll(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	sessions, err := m.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, sessions)

	// Other users are untouched.
	s, err := m.Validate(ctx, otherID)
	require.NoError(t, err)
	assert.Equal(t, "u2", s.UserID)
}

func Test_Manager_ListPrunesStaleIndexEntries(t *testing.T) {
	m, primary := newTestManager(t)
	ctx := context.Background()

	id, err := m.Create(ctx, "u1", ClientMeta{})
	require.NoError(t, err)

	// Simulate the non-atomic create: an index entry whose record never
	// landed (or already expired).
	require.NoError(t, primary.AddToIndex(ctx, "u1", "ghost-session", time.Hour))

	sessions, err := m.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, id, sessions[0].ID)

	ids, err := primary.IndexMembers(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{id}, ids, "ghost entry must be pruned from the index")
}

func Test_Manager_FallsBackWhenPrimaryDies(t *testing.T) {
	m, primary := newTestManager(t)
	ctx := context.Background()

	primary.down.Store(true)

	id, err := m.Create(ctx, "u1", ClientMeta{})
	require.NoError(t, err, "backend outage must not surface to callers")

	s, err := m.Validate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "u1", s.UserID)

	sessions, err := m.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	require.NoError(t, m.Revoke(ctx, id))
	_, err = m.Validate(ctx, id)
	assert.ErrorIs(t, err, appErrors.ErrSessionExpired)
}

func Test_Manager_RecoversPrimary(t *testing.T) {
	m, primary := newTestManager(t)
	ctx := context.Background()

	primary.down.Store(true)
	_, err := m.Create(ctx, "u1", ClientMeta{})
	require.NoError(t, err)
	require.False(t, m.primaryHealthy.Load())

	primary.down.Store(false)

	require.Eventually(t, func() bool {
		return m.primaryHealthy.Load()
	}, time.Second, 5*time.Millisecond, "watchdog should restore the primary")

	id, err := m.Create(ctx, "u2", ClientMeta{})
	require.NoError(t, err)

	// The record must have landed on the recovered primary.
	s, err := primary.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "u2", s.UserID)
}
