package services

import (
	"context"

	"github.com/PhotoScout/API/internal/models/db_models"
	"github.com/PhotoScout/API/internal/models/request_models"
	"github.com/PhotoScout/API/internal/repositories"
	"github.com/PhotoScout/API/pkg/utils"
	"github.com/google/uuid"
)

type LensServiceInterface interface {
	CreateLens(ctx context.Context, request request_models.CreateLensRequest, ownerID string) (*db_models.Lens, error)
	GetListOfLensesByOwnerId(ctx context.Context, ownerID string) ([]db_models.Lens, error)
	UpdateLens(ctx context.Context, lensID string, request request_models.CreateLensRequest) (*db_models.Lens, error)
	DeleteLens(ctx context.Context, lensID string) error
}

type LensService struct {
	lensRepo repositories.LensRepository
}

func NewLensService(lensRepo repositories.LensRepository) LensServiceInterface {
	return &LensService{
		lensRepo: lensRepo,
	}
}

func (s *LensService) CreateLens(ctx context.Context, request request_models.CreateLensRequest, ownerID string) (*db_models.Lens, error) {

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	lens := &db_models.Lens{
		DisplayName: request.DisplayName,
		FocalRange:  request.FocalRange,
		OwnerID:     ownerUUID,
	}

	if err := s.lensRepo.InsertTx(lens, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return lens, nil
}

func (s *LensService) GetListOfLensesByOwnerId(ctx context.Context, ownerID string) ([]db_models.Lens, error) {

	lenses, err := s.lensRepo.GetListOfLensesByOwnerId(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return lenses, nil
}

func (s *LensService) UpdateLens(ctx context.Context, lensID string, request request_models.CreateLensRequest) (*db_models.Lens, error) {

	lens, err := s.lensRepo.FindById(ctx, lensID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if lens == nil {
		return nil, utils.ErrLensNotFound
	}

	if request.DisplayName != "" {
		lens.DisplayName = request.DisplayName
	}
	if request.FocalRange != "" {
		lens.FocalRange = request.FocalRange
	}

	if err := s.lensRepo.Update(lens, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return lens, nil
}

func (s *LensService) DeleteLens(ctx context.Context, lensID string) error {

	lens, err := s.lensRepo.FindById(ctx, lensID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if lens == nil {
		return utils.ErrLensNotFound
	}

	if err := s.lensRepo.Delete(ctx, lensID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
