package user

import (
	"github.com/google/uuid"

	"github.com/Ankit-Silwal/yapify-backend/internal/session"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type RegisterCommand struct {
	Email    string
	Username string
	Password string
}

type LoginCommand struct {
	Email    string
	Password string
	Meta     session.ClientMeta
}

// Output DTOs
type UserDTO struct {
	ID         uuid.UUID
	Email      string
	Username   string
	IsVerified bool
}

// RegistrationDTO carries the verification code back to the boundary;
// mail delivery happens there, not in the usecase.
type RegistrationDTO struct {
	User             *UserDTO
	VerificationCode string
}

type AuthResultDTO struct {
	User      *UserDTO
	SessionID string
}
