package repositories

import (
	"context"
	"errors"

	"github.com/PhotoScout/API/internal/models/db_models"
	"github.com/PhotoScout/API/pkg/logger"
	"gorm.io/gorm"
)

type LensRepository interface {
	InsertTx(lens *db_models.Lens, ctx context.Context) error
	FindById(ctx context.Context, id string) (*db_models.Lens, error)
	GetListOfLensesByOwnerId(ctx context.Context, ownerID string) ([]db_models.Lens, error)
	Update(lens *db_models.Lens, ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

type lensRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewLensRepository(db *gorm.DB, logger logger.Logger) LensRepository {
	return &lensRepository{
		db:     db,
		logger: logger,
	}
}

func (r *lensRepository) InsertTx(lens *db_models.Lens, ctx context.Context) error {
	return r.db.WithContext(ctx).Create(lens).Error
}

func (r *lensRepository) FindById(ctx context.Context, id string) (*db_models.Lens, error) {
	var lens db_models.Lens
	err := r.db.WithContext(ctx).First(&lens, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &lens, nil
}

func (r *lensRepository) GetListOfLensesByOwnerId(ctx context.Context, ownerID string) ([]db_models.Lens, error) {
	var lenses []db_models.Lens
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&lenses).Error

	if err != nil {
		return nil, err
	}

	return lenses, nil
}

func (r *lensRepository) Update(lens *db_models.Lens, ctx context.Context) error {
	return r.db.WithContext(ctx).Save(lens).Error
}

func (r *lensRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Lens{}, "id = ?", id).Error
}
