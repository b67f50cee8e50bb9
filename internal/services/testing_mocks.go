//go:build unit
// +build unit

package services

import (
	"context"

	"github.com/PhotoScout/API/internal/models/db_models"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) InsertTx(user *db_models.User, ctx context.Context) error {
	args := m.Called(user, ctx)
	return args.Error(0)
}

func (m *MockUserRepository) FindById(ctx context.Context, id string) (*db_models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

// MockBetaCodeRepository is a mock implementation of repositories.BetaCodeRepository
type MockBetaCodeRepository struct {
	mock.Mock
}

func (m *MockBetaCodeRepository) Insert(code *db_models.BetaCode, ctx context.Context) error {
	args := m.Called(code, ctx)
	return args.Error(0)
}

func (m *MockBetaCodeRepository) FindByCode(ctx context.Context, code string) (*db_models.BetaCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.BetaCode), args.Error(1)
}

func (m *MockBetaCodeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBetaCodeRepository) GetAll(ctx context.Context) ([]db_models.BetaCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.BetaCode), args.Error(1)
}

// MockGuideRepository is a mock implementation of repositories.GuideRepository
type MockGuideRepository struct {
	mock.Mock
}

func (m *MockGuideRepository) InsertTx(guide *db_models.Guide, ctx context.Context) error {
	args := m.Called(guide, ctx)
	return args.Error(0)
}

func (m *MockGuideRepository) FindById(ctx context.Context, id string) (*db_models.Guide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Guide), args.Error(1)
}

func (m *MockGuideRepository) FindByIdWithPhotos(ctx context.Context, id string) (*db_models.Guide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Guide), args.Error(1)
}

func (m *MockGuideRepository) GetListOfGuidesByOwnerId(ctx context.Context, page int, pageSize int, ownerID string) ([]db_models.Guide, error) {
	args := m.Called(ctx, page, pageSize, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Guide), args.Error(1)
}

func (m *MockGuideRepository) GetListOfPublicGuides(ctx context.Context, page int, pageSize int) ([]db_models.Guide, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Guide), args.Error(1)
}

func (m *MockGuideRepository) Update(guide *db_models.Guide, ctx context.Context) error {
	args := m.Called(guide, ctx)
	return args.Error(0)
}

func (m *MockGuideRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGuideRepository) AttachPhoto(ctx context.Context, guide *db_models.Guide, photo *db_models.Photo) error {
	args := m.Called(ctx, guide, photo)
	return args.Error(0)
}

func (m *MockGuideRepository) DetachPhoto(ctx context.Context, guide *db_models.Guide, photo *db_models.Photo) error {
	args := m.Called(ctx, guide, photo)
	return args.Error(0)
}

func (m *MockGuideRepository) CountPhotos(ctx context.Context, guideID string) (int64, error) {
	args := m.Called(ctx, guideID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGuideRepository) FirstPhoto(ctx context.Context, guideID string) (*db_models.Photo, error) {
	args := m.Called(ctx, guideID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Photo), args.Error(1)
}

func (m *MockGuideRepository) GetPhotos(ctx context.Context, guideID string) ([]db_models.Photo, error) {
	args := m.Called(ctx, guideID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Photo), args.Error(1)
}

// MockPhotoRepository is a mock implementation of repositories.PhotoRepository
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) InsertTx(photo *db_models.Photo, ctx context.Context) error {
	args := m.Called(photo, ctx)
	return args.Error(0)
}

func (m *MockPhotoRepository) FindById(ctx context.Context, id string) (*db_models.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) FindByFlickrId(ctx context.Context, flickrID string) (*db_models.Photo, error) {
	args := m.Called(ctx, flickrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) GetListOfPhotosByTag(ctx context.Context, page int, pageSize int, tag string) ([]db_models.Photo, error) {
	args := m.Called(ctx, page, pageSize, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) IsOrphan(ctx context.Context, photoID string) (bool, error) {
	args := m.Called(ctx, photoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPhotoRepository) GetOrphans(ctx context.Context) ([]db_models.Photo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPhotoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLensRepository is a mock implementation of repositories.LensRepository
type MockLensRepository struct {
	mock.Mock
}

func (m *MockLensRepository) InsertTx(lens *db_models.Lens, ctx context.Context) error {
	args := m.Called(lens, ctx)
	return args.Error(0)
}

func (m *MockLensRepository) FindById(ctx context.Context, id string) (*db_models.Lens, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Lens), args.Error(1)
}

func (m *MockLensRepository) GetListOfLensesByOwnerId(ctx context.Context, ownerID string) ([]db_models.Lens, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Lens), args.Error(1)
}

func (m *MockLensRepository) Update(lens *db_models.Lens, ctx context.Context) error {
	args := m.Called(lens, ctx)
	return args.Error(0)
}

func (m *MockLensRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
