package user

import (
	"context"

	"github.com/google/uuid"

	User "github.com/Ankit-Silwal/yapify-backend/internal/user/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *User.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error)
	GetUserByEmail(ctx context.Context, email string) (*User.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	SetVerified(ctx context.Context, userID uuid.UUID) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// SearchUsers matches email or username case-insensitively, excluding
	// the requester, capped at limit rows.
	SearchUsers(ctx context.Context, requesterID uuid.UUID, query string, limit int) ([]User.User, error)
}
