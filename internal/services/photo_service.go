package services

import (
	"context"

	"github.com/PhotoScout/API/internal/models/db_models"
	"github.com/PhotoScout/API/internal/models/request_models"
	"github.com/PhotoScout/API/internal/models/response_models"
	"github.com/PhotoScout/API/internal/repositories"
	"github.com/PhotoScout/API/pkg/logger"
	"github.com/PhotoScout/API/pkg/utils"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type PhotoServiceInterface interface {
	AddPhoto(ctx context.Context, request request_models.AddPhotoRequest) (*db_models.Photo, error)
	GetPhotoById(ctx context.Context, photoID string) (*db_models.Photo, error)
	GetListOfPhotosByTag(ctx context.Context, page int, pageSize int, tag string) ([]response_models.PhotoResponse, error)
	IsOrphan(ctx context.Context, photoID string) (bool, error)
	PurgeOrphans(ctx context.Context) (int64, error)
}

type PhotoService struct {
	photoRepo repositories.PhotoRepository
	logger    logger.Logger
}

func NewPhotoService(photoRepo repositories.PhotoRepository, logger logger.Logger) PhotoServiceInterface {
	return &PhotoService{
		photoRepo: photoRepo,
		logger:    logger,
	}
}

// AddPhoto stores an imported photo. Re-importing a known flickr id is
// not an error, the stored record is handed back instead.
func (s *PhotoService) AddPhoto(ctx context.Context, request request_models.AddPhotoRequest) (*db_models.Photo, error) {

	if request.FlickrID != "" {
		existing, err := s.photoRepo.FindByFlickrId(ctx, request.FlickrID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return existing, nil
		}
	}

	photo := &db_models.Photo{
		Origin:     db_models.PhotoOrigin(request.Origin),
		Title:      request.Title,
		Author:     request.Author,
		FlickrID:   request.FlickrID,
		URL:        request.URL,
		Latitude:   request.Latitude,
		Longitude:  request.Longitude,
		LensFocal:  request.LensFocal,
		FlashFired: request.FlashFired,
		Exposure:   request.Exposure,
		Tags:       pq.StringArray(request.Tags),
		RawMeta:    datatypes.JSON(request.RawMeta),
	}

	if err := s.photoRepo.InsertTx(photo, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return photo, nil
}

func (s *PhotoService) GetPhotoById(ctx context.Context, photoID string) (*db_models.Photo, error) {

	photo, err := s.photoRepo.FindById(ctx, photoID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if photo == nil {
		return nil, utils.ErrPhotoNotFound
	}

	return photo, nil
}

func (s *PhotoService) GetListOfPhotosByTag(ctx context.Context, page int, pageSize int, tag string) ([]response_models.PhotoResponse, error) {

	if page <= 0 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize <= 0 {
		return nil, utils.ErrInvalidPageSize
	}

	photos, err := s.photoRepo.GetListOfPhotosByTag(ctx, page, pageSize, tag)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		out = append(out, response_models.PhotoResponse{
			ID:        photo.ID.String(),
			Origin:    string(photo.Origin),
			Title:     photo.Title,
			Author:    photo.Author,
			URL:       photo.URL,
			Latitude:  photo.Latitude,
			Longitude: photo.Longitude,
			Tags:      photo.Tags,
		})
	}

	return out, nil
}

func (s *PhotoService) IsOrphan(ctx context.Context, photoID string) (bool, error) {

	photo, err := s.photoRepo.FindById(ctx, photoID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if photo == nil {
		return false, utils.ErrPhotoNotFound
	}

	orphan, err := s.photoRepo.IsOrphan(ctx, photoID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}

	return orphan, nil
}

// PurgeOrphans sweeps out photos no guide references anymore and reports
// how many were removed.
func (s *PhotoService) PurgeOrphans(ctx context.Context) (int64, error) {

	purged, err := s.photoRepo.DeleteOrphans(ctx)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	return purged, nil
}
