package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
	"github.com/Ankit-Silwal/yapify-backend/pkg/logger"
)

// Manager is the caller-facing session store. It prefers the distributed
// backend and flips to the in-process one when redis becomes unreachable;
// callers never observe which backend served them. A watchdog goroutine
// pings the primary and restores it once it answers again.
type Manager struct {
	primary  Store
	fallback Store
	ttl      time.Duration
	logger   *logger.Logger

	primaryHealthy atomic.Bool

	stop     chan struct{}
	stopOnce sync.Once
}

func NewManager(primary, fallback Store, ttl, healthInterval time.Duration, log *logger.Logger) *Manager {
	m := &Manager{
		primary:  primary,
		fallback: fallback,
		ttl:      ttl,
		logger:   log,
		stop:     make(chan struct{}),
	}
	m.primaryHealthy.Store(true)
	go m.watch(healthInterval)
	return m
}

func (m *Manager) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *Manager) watch(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			err := m.primary.Ping(ctx)
			cancel()

			was := m.primaryHealthy.Load()
			now := err == nil
			if was == now {
				continue
			}
			m.primaryHealthy.Store(now)
			if now {
				m.logger.Info("session backend recovered, resuming distributed store")
			} else {
				m.logger.Warn("session backend unreachable, serving from in-process store", "err", err)
			}
		}
	}
}

// run executes op against the active store. A primary failure degrades to
// the fallback and re-runs there, so backend trouble never escapes.
func (m *Manager) run(op func(Store) error) error {
	if m.primaryHealthy.Load() {
		err := op(m.primary)
		if err == nil {
			return nil
		}
		m.primaryHealthy.Store(false)
		m.logger.Warn("session backend failed mid-operation, falling back", "err", err)
	}
	return op(m.fallback)
}

// Create issues a new session for userID. The record write and the index
// append are two separate writes; an index failure is logged and absorbed
// since the index is only ever treated as a candidate list.
func (m *Manager) Create(ctx context.Context, userID string, meta ClientMeta) (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	s := Session{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
	}

	var used Store
	err = m.run(func(st Store) error {
		used = st
		return st.Save(ctx, s, m.ttl)
	})
	if err != nil {
		return "", appErrors.ErrStorageFailure(err)
	}

	// Index on the store that took the record, refreshing the set TTL.
	if err := used.AddToIndex(ctx, userID, id, m.ttl); err != nil {
		m.logger.Warn("session index append failed", "userId", userID, "err", err)
	}

	return id, nil
}

func (m *Manager) Validate(ctx context.Context, sessionID string) (*Session, error) {
	var s *Session
	err := m.run(func(st Store) error {
		var opErr error
		s, opErr = st.Get(ctx, sessionID)
		return opErr
	})
	if err != nil {
		return nil, appErrors.ErrStorageFailure(err)
	}
	if s == nil {
		return nil, appErrors.ErrSessionExpired
	}
	return s, nil
}

// Revoke deletes the session and its index entry. Revoking an unknown or
// already-revoked id is a no-op.
func (m *Manager) Revoke(ctx context.Context, sessionID string) error {
	return m.run(func(st Store) error {
		s, err := st.Get(ctx, sessionID)
		if err != nil {
			return err
		}
		if err := st.Delete(ctx, sessionID); err != nil {
			return err
		}
		if s != nil {
			return st.RemoveFromIndex(ctx, s.UserID, sessionID)
		}
		return nil
	})
}

// RevokeAll revokes every live session the user's index names and clears
// the index. The returned count covers records actually removed; stale
// index entries do not count.
func (m *Manager) RevokeAll(ctx context.Context, userID string) (int, error) {
	var removed int
	err := m.run(func(st Store) error {
		removed = 0
		ids, err := st.IndexMembers(ctx, userID)
		if err != nil {
			return err
		}
		for _, id := range ids {
			s, err := st.Get(ctx, id)
			if err != nil {
				return err
			}
			if s == nil {
				continue
			}
			if err := st.Delete(ctx, id); err != nil {
				return err
			}
			removed++
		}
		return st.ClearIndex(ctx, userID)
	})
	if err != nil {
		return 0, appErrors.ErrStorageFailure(err)
	}
	return removed, nil
}

// List returns the user's live sessions. Index entries that no longer
// resolve to a record are pruned as a side effect, which is what keeps
// the non-atomic Create honest.
func (m *Manager) List(ctx context.Context, userID string) ([]Session, error) {
	var out []Session
	err := m.run(func(st Store) error {
		out = nil
		ids, err := st.IndexMembers(ctx, userID)
		if err != nil {
			return err
		}
		for _, id := range ids {
			s, err := st.Get(ctx, id)
			if err != nil {
				return err
			}
			if s == nil {
				if err := st.RemoveFromIndex(ctx, userID, id); err != nil {
					return err
				}
				continue
			}
			out = append(out, *s)
		}
		return nil
	})
	if err != nil {
		return nil, appErrors.ErrStorageFailure(err)
	}
	return out, nil
}
