package repositories

import (
	"context"
	"errors"

	"github.com/PhotoScout/API/internal/models/db_models"
	"github.com/PhotoScout/API/pkg/logger"
	"gorm.io/gorm"
)

type GuideRepository interface {
	InsertTx(guide *db_models.Guide, ctx context.Context) error
	FindById(ctx context.Context, id string) (*db_models.Guide, error)
	FindByIdWithPhotos(ctx context.Context, id string) (*db_models.Guide, error)
	GetListOfGuidesByOwnerId(ctx context.Context, page int, pageSize int, ownerID string) ([]db_models.Guide, error)
	GetListOfPublicGuides(ctx context.Context, page int, pageSize int) ([]db_models.Guide, error)
	Update(guide *db_models.Guide, ctx context.Context) error
	Delete(ctx context.Context, id string) error
	AttachPhoto(ctx context.Context, guide *db_models.Guide, photo *db_models.Photo) error
	DetachPhoto(ctx context.Context, guide *db_models.Guide, photo *db_models.Photo) error
	CountPhotos(ctx context.Context, guideID string) (int64, error)
	FirstPhoto(ctx context.Context, guideID string) (*db_models.Photo, error)
	GetPhotos(ctx context.Context, guideID string) ([]db_models.Photo, error)
}

type guideRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewGuideRepository(db *gorm.DB, logger logger.Logger) GuideRepository {
	return &guideRepository{
		db:     db,
		logger: logger,
	}
}

func (r *guideRepository) InsertTx(guide *db_models.Guide, ctx context.Context) error {
	if err := r.db.WithContext(ctx).Create(guide).Error; err != nil {
		return err
	}
	r.logger.Info("Created guide with id ", guide.ID)
	return nil
}

func (r *guideRepository) FindById(ctx context.Context, id string) (*db_models.Guide, error) {
	var guide db_models.Guide
	err := r.db.WithContext(ctx).First(&guide, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &guide, nil
}

func (r *guideRepository) FindByIdWithPhotos(ctx context.Context, id string) (*db_models.Guide, error) {

	var guide db_models.Guide
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Photos").
		First(&guide).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &guide, nil
}

func (r *guideRepository) GetListOfGuidesByOwnerId(ctx context.Context, page int, pageSize int, ownerID string) ([]db_models.Guide, error) {

	var guides []db_models.Guide
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&guides).Error

	if err != nil {
		return nil, err
	}

	return guides, nil
}

func (r *guideRepository) GetListOfPublicGuides(ctx context.Context, page int, pageSize int) ([]db_models.Guide, error) {

	var guides []db_models.Guide
	err := r.db.WithContext(ctx).
		Where("visibility = ?", db_models.GuidePublic).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&guides).Error

	if err != nil {
		return nil, err
	}

	return guides, nil
}

func (r *guideRepository) Update(guide *db_models.Guide, ctx context.Context) error {
	return r.db.WithContext(ctx).Save(guide).Error
}

// Delete clears the photo links first so orphan detection keeps working,
// then removes the guide itself.
func (r *guideRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var guide db_models.Guide
		if err := tx.First(&guide, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&guide).Association("Photos").Clear(); err != nil {
			return err
		}

		if err := tx.Delete(&guide).Error; err != nil {
			return err
		}

		r.logger.Info("Deleted guide with id ", id)
		return nil
	})
}

func (r *guideRepository) AttachPhoto(ctx context.Context, guide *db_models.Guide, photo *db_models.Photo) error {
	return r.db.WithContext(ctx).Model(guide).Association("Photos").Append(photo)
}

func (r *guideRepository) DetachPhoto(ctx context.Context, guide *db_models.Guide, photo *db_models.Photo) error {
	return r.db.WithContext(ctx).Model(guide).Association("Photos").Delete(photo)
}

func (r *guideRepository) CountPhotos(ctx context.Context, guideID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("photo_guide").
		Where("guide_id = ?", guideID).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

// FirstPhoto returns an arbitrary associated photo, in whatever order the
// store hands rows back. Callers must not read meaning into the choice.
func (r *guideRepository) FirstPhoto(ctx context.Context, guideID string) (*db_models.Photo, error) {

	var photo db_models.Photo
	err := r.db.WithContext(ctx).
		Joins("JOIN photo_guide ON photo_guide.photo_id = photos.id").
		Where("photo_guide.guide_id = ?", guideID).
		First(&photo).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &photo, nil
}

func (r *guideRepository) GetPhotos(ctx context.Context, guideID string) ([]db_models.Photo, error) {

	var photos []db_models.Photo
	err := r.db.WithContext(ctx).
		Joins("JOIN photo_guide ON photo_guide.photo_id = photos.id").
		Where("photo_guide.guide_id = ?", guideID).
		Find(&photos).Error

	if err != nil {
		return nil, err
	}

	return photos, nil
}
