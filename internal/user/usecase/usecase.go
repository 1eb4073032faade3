package usecase

import (
	"context"
	"errors"
	"net/mail"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ankit-Silwal/yapify-backend/internal/otp"
	"github.com/Ankit-Silwal/yapify-backend/internal/session"
	"github.com/Ankit-Silwal/yapify-backend/internal/user"
	models "github.com/Ankit-Silwal/yapify-backend/internal/user/model"
	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
	"github.com/Ankit-Silwal/yapify-backend/pkg/logger"
)

const bcryptCost = 10

type UserUsecase struct {
	repo     user.UserRepository
	sessions *session.Manager
	codes    *otp.Manager
	logger   *logger.Logger
}

func NewUserUsecase(repo user.UserRepository, sessions *session.Manager, codes *otp.Manager, logger *logger.Logger) *UserUsecase {
	return &UserUsecase{repo: repo, sessions: sessions, codes: codes, logger: logger}
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.RegistrationDTO, error) {
	if _, err := mail.ParseAddress(cmd.Email); err != nil {
		return nil, appErrors.InvalidArg("invalid email address")
	}
	if cmd.Username == "" {
		return nil, appErrors.InvalidArg("username is required")
	}
	if err := validatePassword(cmd.Password); err != nil {
		return nil, err
	}

	if exists, err := uc.repo.EmailExists(ctx, cmd.Email); err != nil {
		uc.logger.Error("database error checking email", "err", err)
		return nil, appErrors.ErrStorageFailure(err)
	} else if exists {
		return nil, appErrors.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcryptCost)
	if err != nil {
		return nil, appErrors.Internal("failed to hash password")
	}

	u := &models.User{
		Email:        cmd.Email,
		Username:     cmd.Username,
		PasswordHash: string(hash),
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		uc.logger.Error("failed to create user", "email", cmd.Email, "err", err)
		return nil, appErrors.ErrStorageFailure(err)
	}

	code, err := uc.codes.Generate(ctx, u.ID.String(), otp.PurposeRegister)
	if err != nil {
		// account exists; the code can be re-issued later
		uc.logger.Error("failed to issue verification code", "userId", u.ID, "err", err)
		return nil, appErrors.ErrStorageFailure(err)
	}

	return &user.RegistrationDTO{
		User:             toDTO(u),
		VerificationCode: code,
	}, nil
}

func (uc *UserUsecase) Login(ctx context.Context, cmd user.LoginCommand) (*user.AuthResultDTO, error) {
	u, err := uc.repo.GetUserByEmail(ctx, cmd.Email)
	if err != nil {
		// unknown email and bad password look identical to the caller
		if errors.Is(err, appErrors.ErrUserNotFound) {
			return nil, appErrors.ErrWrongPassword
		}
		return nil, appErrors.ErrStorageFailure(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(cmd.Password)); err != nil {
		return nil, appErrors.ErrWrongPassword
	}

	sessionID, err := uc.sessions.Create(ctx, u.ID.String(), cmd.Meta)
	if err != nil {
		uc.logger.Error("failed to create session", "userId", u.ID, "err", err)
		return nil, err
	}

	return &user.AuthResultDTO{User: toDTO(u), SessionID: sessionID}, nil
}

func (uc *UserUsecase) VerifyAccount(ctx context.Context, userID uuid.UUID, code string) error {
	if err := uc.codes.Verify(ctx, userID.String(), code, otp.PurposeRegister); err != nil {
		return err
	}
	return uc.repo.SetVerified(ctx, userID)
}

func (uc *UserUsecase) ForgotPassword(ctx context.Context, email string) (uuid.UUID, string, error) {
	u, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, "", err
	}
	code, err := uc.codes.Generate(ctx, u.ID.String(), otp.PurposeForgotPassword)
	if err != nil {
		uc.logger.Error("failed to issue reset code", "userId", u.ID, "err", err)
		return uuid.Nil, "", appErrors.ErrStorageFailure(err)
	}
	return u.ID, code, nil
}

func (uc *UserUsecase) ResetPassword(ctx context.Context, userID uuid.UUID, code, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	if err := uc.codes.Verify(ctx, userID.String(), code, otp.PurposeForgotPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return appErrors.Internal("failed to hash password")
	}
	if err := uc.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	// a stolen session must not survive a password reset
	if _, err := uc.sessions.RevokeAll(ctx, userID.String()); err != nil {
		uc.logger.Error("failed to revoke sessions after password reset", "userId", userID, "err", err)
		return err
	}
	return nil
}

func (uc *UserUsecase) GetUserProfile(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

func (uc *UserUsecase) SearchUsers(ctx context.Context, requesterID uuid.UUID, query string, limit int) ([]*user.UserDTO, error) {
	if query == "" {
		return nil, appErrors.InvalidArg("search query is required")
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	found, err := uc.repo.SearchUsers(ctx, requesterID, query, limit)
	if err != nil {
		return nil, appErrors.ErrStorageFailure(err)
	}
	dtos := make([]*user.UserDTO, 0, len(found))
	for i := range found {
		dtos = append(dtos, toDTO(&found[i]))
	}
	return dtos, nil
}

func toDTO(u *models.User) *user.UserDTO {
	return &user.UserDTO{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		IsVerified: u.IsVerified,
	}
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return appErrors.InvalidArg("password must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return appErrors.InvalidArg("password must contain letters and digits")
	}
	return nil
}
