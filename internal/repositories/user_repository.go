package repositories

import (
	"context"
	"errors"

	"github.com/PhotoScout/API/internal/models/db_models"
	"github.com/PhotoScout/API/pkg/logger"
	"gorm.io/gorm"
)

type UserRepository interface {
	InsertTx(user *db_models.User, ctx context.Context) error
	FindById(ctx context.Context, id string) (*db_models.User, error)
	FindByUsername(ctx context.Context, username string) (*db_models.User, error)
}

type userRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {

	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func NewUserRepository(db *gorm.DB, logger logger.Logger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) InsertTx(user *db_models.User, ctx context.Context) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}
	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *userRepository) FindById(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
