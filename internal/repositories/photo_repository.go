// internal/repositories/photo_repo.go
package repositories

import (
	"context"
	"errors"

	"github.com/PhotoScout/API/internal/models/db_models"
	"github.com/PhotoScout/API/pkg/logger"
	"gorm.io/gorm"
)

type PhotoRepository interface {
	InsertTx(photo *db_models.Photo, ctx context.Context) error
	FindById(ctx context.Context, id string) (*db_models.Photo, error)
	FindByFlickrId(ctx context.Context, flickrID string) (*db_models.Photo, error)
	GetListOfPhotosByTag(ctx context.Context, page int, pageSize int, tag string) ([]db_models.Photo, error)
	IsOrphan(ctx context.Context, photoID string) (bool, error)
	GetOrphans(ctx context.Context) ([]db_models.Photo, error)
	DeleteOrphans(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}

type photoRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewPhotoRepository(db *gorm.DB, logger logger.Logger) PhotoRepository {
	return &photoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *photoRepository) InsertTx(photo *db_models.Photo, ctx context.Context) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *photoRepository) FindById(ctx context.Context, id string) (*db_models.Photo, error) {
	var photo db_models.Photo
	err := r.db.WithContext(ctx).First(&photo, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &photo, nil
}

func (r *photoRepository) FindByFlickrId(ctx context.Context, flickrID string) (*db_models.Photo, error) {
	var photo db_models.Photo
	err := r.db.WithContext(ctx).First(&photo, "flickr_id = ?", flickrID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &photo, nil
}

// GetListOfPhotosByTag matches against the text[] column, so this one is
// postgres only.
func (r *photoRepository) GetListOfPhotosByTag(ctx context.Context, page int, pageSize int, tag string) ([]db_models.Photo, error) {

	var photos []db_models.Photo
	err := r.db.WithContext(ctx).
		Where("? = ANY (tags)", tag).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&photos).Error

	if err != nil {
		return nil, err
	}

	return photos, nil
}

// IsOrphan reports whether no guide references the photo. The check goes
// straight at the join table rather than loading the association.
func (r *photoRepository) IsOrphan(ctx context.Context, photoID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("photo_guide").
		Where("photo_id = ?", photoID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count == 0, nil
}

func (r *photoRepository) GetOrphans(ctx context.Context) ([]db_models.Photo, error) {

	sub := r.db.WithContext(ctx).Table("photo_guide").Select("photo_id")

	var photos []db_models.Photo
	err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", sub).
		Find(&photos).Error

	if err != nil {
		return nil, err
	}

	return photos, nil
}

// DeleteOrphans removes every photo no guide references and reports how
// many went away.
func (r *photoRepository) DeleteOrphans(ctx context.Context) (int64, error) {

	sub := r.db.WithContext(ctx).Table("photo_guide").Select("photo_id")

	res := r.db.WithContext(ctx).
		Where("id NOT IN (?)", sub).
		Delete(&db_models.Photo{})

	if res.Error != nil {
		return 0, res.Error
	}

	r.logger.Info("Purged ", res.RowsAffected, " orphan photos")
	return res.RowsAffected, nil
}

// Delete unlinks the photo from every guide before removing it, keeping
// the join table free of dangling references.
func (r *photoRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var photo db_models.Photo
		if err := tx.First(&photo, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&photo).Association("Guides").Clear(); err != nil {
			return err
		}

		return tx.Delete(&photo).Error
	})
}
