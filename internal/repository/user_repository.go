package repository

import (
	"context"
	"errors"

	"arcoiris/internal/domain/model"
)

var ErrUserNotFound = errors.New("user not found")

// Dashboard users only.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}
