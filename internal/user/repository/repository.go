package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	User "github.com/Ankit-Silwal/yapify-backend/internal/user/model"
	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
	"github.com/Ankit-Silwal/yapify-backend/pkg/logger"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewUserRepository(db *bun.DB, logger *logger.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *User.User) error {
	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "authRepo.CreateUser.InsertUser: ")
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error) {
	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("u.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "authRepo.GetUserByID.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*User.User, error) {
	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("u.email = ?", email).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "authRepo.GetUserByEmail.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*User.User)(nil)).
		Where("u.email = ?", email).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "authRepo.EmailExists.Exists: ")
	}
	return exists, nil
}

func (r *UserRepository) SetVerified(ctx context.Context, userID uuid.UUID) error {
	res, err := r.db.NewUpdate().
		Model((*User.User)(nil)).
		Set("is_verified = TRUE").
		Set("updated_at = now()").
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "authRepo.SetVerified.Update: ")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	res, err := r.db.NewUpdate().
		Model((*User.User)(nil)).
		Set("password_hash = ?", passwordHash).
		Set("updated_at = now()").
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "authRepo.UpdatePassword.Update: ")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SearchUsers(ctx context.Context, requesterID uuid.UUID, query string, limit int) ([]User.User, error) {
	var users []User.User
	pattern := "%" + query + "%"
	err := r.db.NewSelect().
		Model(&users).
		Where("(u.email ILIKE ? OR u.username ILIKE ?)", pattern, pattern).
		Where("u.id != ?", requesterID).
		Order("u.email ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "authRepo.SearchUsers.Scan: ")
	}
	return users, nil
}
