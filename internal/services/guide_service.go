package services

import (
	"context"

	"github.com/PhotoScout/API/internal/models/db_models"
	"github.com/PhotoScout/API/internal/models/request_models"
	"github.com/PhotoScout/API/internal/models/response_models"
	"github.com/PhotoScout/API/internal/repositories"
	"github.com/PhotoScout/API/pkg/geo"
	"github.com/PhotoScout/API/pkg/logger"
	"github.com/PhotoScout/API/pkg/utils"
	"github.com/google/uuid"
)

type GuideServiceInterface interface {
	CreateGuide(ctx context.Context, request request_models.CreateGuideRequest, ownerID string) (*db_models.Guide, error)
	GetGuideById(ctx context.Context, guideID string) (*db_models.Guide, error)
	UpdateGuide(ctx context.Context, guideID string, request request_models.UpdateGuideRequest) (*db_models.Guide, error)
	DeleteGuide(ctx context.Context, guideID string) error
	GetListOfGuidesByOwnerId(ctx context.Context, page int, pageSize int, ownerID string) ([]response_models.GuideSummary, error)
	GetListOfPublicGuides(ctx context.Context, page int, pageSize int) ([]response_models.GuideSummary, error)
	AttachPhotoToGuide(ctx context.Context, guideID string, photoID string) error
	DetachPhotoFromGuide(ctx context.Context, guideID string, photoID string) error
	FeaturedLocation(ctx context.Context, guideID string) (*geo.Point, error)
	FeaturedImage(ctx context.Context, guideID string) (string, error)
	PhotoCount(ctx context.Context, guideID string) (int64, error)
	Summarize(ctx context.Context, guideID string) (*response_models.GuideSummary, error)
}

type GuideService struct {
	guideRepo repositories.GuideRepository
	photoRepo repositories.PhotoRepository
	logger    logger.Logger
}

func NewGuideService(
	guideRepo repositories.GuideRepository,
	photoRepo repositories.PhotoRepository,
	logger logger.Logger,
) GuideServiceInterface {
	return &GuideService{
		guideRepo: guideRepo,
		photoRepo: photoRepo,
		logger:    logger,
	}
}

func (s *GuideService) CreateGuide(ctx context.Context, request request_models.CreateGuideRequest, ownerID string) (*db_models.Guide, error) {

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	guide := &db_models.Guide{
		Title:      request.Title,
		Visibility: db_models.GuideVisibility(request.Visibility),
		OwnerID:    ownerUUID,
	}

	if err := s.guideRepo.InsertTx(guide, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return guide, nil
}

func (s *GuideService) GetGuideById(ctx context.Context, guideID string) (*db_models.Guide, error) {

	guide, err := s.guideRepo.FindById(ctx, guideID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guide == nil {
		return nil, utils.ErrGuideNotFound
	}

	return guide, nil
}

func (s *GuideService) UpdateGuide(ctx context.Context, guideID string, request request_models.UpdateGuideRequest) (*db_models.Guide, error) {

	guide, err := s.guideRepo.FindById(ctx, guideID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guide == nil {
		return nil, utils.ErrGuideNotFound
	}

	if request.Title != nil {
		guide.Title = *request.Title
	}
	if request.Visibility != nil {
		guide.Visibility = db_models.GuideVisibility(*request.Visibility)
	}

	if err := s.guideRepo.Update(guide, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return guide, nil
}

func (s *GuideService) DeleteGuide(ctx context.Context, guideID string) error {

	guide, err := s.guideRepo.FindById(ctx, guideID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if guide == nil {
		return utils.ErrGuideNotFound
	}

	if err := s.guideRepo.Delete(ctx, guideID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *GuideService) GetListOfGuidesByOwnerId(ctx context.Context, page int, pageSize int, ownerID string) ([]response_models.GuideSummary, error) {

	if page <= 0 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize <= 0 {
		return nil, utils.ErrInvalidPageSize
	}

	guides, err := s.guideRepo.GetListOfGuidesByOwnerId(ctx, page, pageSize, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.buildSummaries(ctx, guides)
}

func (s *GuideService) GetListOfPublicGuides(ctx context.Context, page int, pageSize int) ([]response_models.GuideSummary, error) {

	if page <= 0 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize <= 0 {
		return nil, utils.ErrInvalidPageSize
	}

	guides, err := s.guideRepo.GetListOfPublicGuides(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.buildSummaries(ctx, guides)
}

func (s *GuideService) AttachPhotoToGuide(ctx context.Context, guideID string, photoID string) error {

	guide, err := s.guideRepo.FindById(ctx, guideID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if guide == nil {
		return utils.ErrGuideNotFound
	}

	photo, err := s.photoRepo.FindById(ctx, photoID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if photo == nil {
		return utils.ErrPhotoNotFound
	}

	if err := s.guideRepo.AttachPhoto(ctx, guide, photo); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *GuideService) DetachPhotoFromGuide(ctx context.Context, guideID string, photoID string) error {

	guide, err := s.guideRepo.FindById(ctx, guideID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if guide == nil {
		return utils.ErrGuideNotFound
	}

	photo, err := s.photoRepo.FindById(ctx, photoID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if photo == nil {
		return utils.ErrPhotoNotFound
	}

	if err := s.guideRepo.DetachPhoto(ctx, guide, photo); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// FeaturedLocation reduces the guide's located photos to a single
// representative point. Nil when no photo carries coordinates.
func (s *GuideService) FeaturedLocation(ctx context.Context, guideID string) (*geo.Point, error) {

	guide, err := s.guideRepo.FindById(ctx, guideID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guide == nil {
		return nil, utils.ErrGuideNotFound
	}

	photos, err := s.guideRepo.GetPhotos(ctx, guideID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return meanOfPhotos(photos), nil
}

// FeaturedImage returns the URL of an arbitrary associated photo, or ""
// when the guide has none.
func (s *GuideService) FeaturedImage(ctx context.Context, guideID string) (string, error) {

	guide, err := s.guideRepo.FindById(ctx, guideID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if guide == nil {
		return "", utils.ErrGuideNotFound
	}

	photo, err := s.guideRepo.FirstPhoto(ctx, guideID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if photo == nil {
		return "", nil
	}

	return photo.URL, nil
}

func (s *GuideService) PhotoCount(ctx context.Context, guideID string) (int64, error) {

	guide, err := s.guideRepo.FindById(ctx, guideID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if guide == nil {
		return 0, utils.ErrGuideNotFound
	}

	count, err := s.guideRepo.CountPhotos(ctx, guideID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	return count, nil
}

func (s *GuideService) Summarize(ctx context.Context, guideID string) (*response_models.GuideSummary, error) {

	guide, err := s.guideRepo.FindById(ctx, guideID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guide == nil {
		return nil, utils.ErrGuideNotFound
	}

	return s.buildSummary(ctx, guide)
}

func (s *GuideService) buildSummaries(ctx context.Context, guides []db_models.Guide) ([]response_models.GuideSummary, error) {

	out := make([]response_models.GuideSummary, 0, len(guides))
	for i := range guides {
		summary, err := s.buildSummary(ctx, &guides[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *summary)
	}

	return out, nil
}

// buildSummary decorates one guide with its aggregates in a single photo
// fetch: count, arbitrary featured image, spherical-mean location.
func (s *GuideService) buildSummary(ctx context.Context, guide *db_models.Guide) (*response_models.GuideSummary, error) {

	photos, err := s.guideRepo.GetPhotos(ctx, guide.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summary := &response_models.GuideSummary{
		ID:               guide.ID.String(),
		Title:            guide.Title,
		Visibility:       int16(guide.Visibility),
		OwnerID:          guide.OwnerID.String(),
		Creation:         utils.FormatRFC3339(utils.FromUnixSeconds(guide.CreatedAt)),
		LastEdited:       utils.FormatRFC3339(utils.FromUnixSeconds(guide.UpdatedAt)),
		NumberPhoto:      int64(len(photos)),
		FeaturedLocation: meanOfPhotos(photos),
	}

	if len(photos) > 0 {
		summary.FeaturedImage = photos[0].URL
	}

	return summary, nil
}

func meanOfPhotos(photos []db_models.Photo) *geo.Point {
	points := make([]*geo.Point, 0, len(photos))
	for i := range photos {
		points = append(points, photos[i].Location())
	}
	return geo.Mean(points)
}
