package session

import (
	"context"
	"time"
)

// Store is the keyed-TTL backend a Manager runs against. Get returns
// (nil, nil) for absent or expired records; an error always means the
// backend itself failed. The reverse index is a candidate list only,
// revalidated against records at read time, so index methods need no
// atomicity with record methods.
type Store interface {
	Save(ctx context.Context, s Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error

	AddToIndex(ctx context.Context, userID, sessionID string, ttl time.Duration) error
	RemoveFromIndex(ctx context.Context, userID, sessionID string) error
	IndexMembers(ctx context.Context, userID string) ([]string, error)
	ClearIndex(ctx context.Context, userID string) error

	Ping(ctx context.Context) error
}
