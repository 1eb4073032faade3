package user

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Register creates an unverified account and issues its verification
	// code; the caller delivers the code out of band.
	Register(ctx context.Context, cmd RegisterCommand) (*RegistrationDTO, error)

	Login(ctx context.Context, cmd LoginCommand) (*AuthResultDTO, error)

	VerifyAccount(ctx context.Context, userID uuid.UUID, code string) error

	// ForgotPassword issues a reset code for the account behind email.
	ForgotPassword(ctx context.Context, email string) (userID uuid.UUID, code string, err error)

	// ResetPassword consumes the reset code, swaps the hash and revokes
	// every live session of the user.
	ResetPassword(ctx context.Context, userID uuid.UUID, code, newPassword string) error

	GetUserProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)

	// Search users by email or username (for finding people to chat with)
	SearchUsers(ctx context.Context, requesterID uuid.UUID, query string, limit int) ([]*UserDTO, error)
}
