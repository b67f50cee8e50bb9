package repositories

import (
	"context"
	"errors"

	"github.com/PhotoScout/API/internal/models/db_models"
	"github.com/PhotoScout/API/pkg/logger"
	"gorm.io/gorm"
)

type BetaCodeRepository interface {
	Insert(code *db_models.BetaCode, ctx context.Context) error
	FindByCode(ctx context.Context, code string) (*db_models.BetaCode, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]db_models.BetaCode, error)
}

type betaCodeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewBetaCodeRepository(db *gorm.DB, logger logger.Logger) BetaCodeRepository {
	return &betaCodeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *betaCodeRepository) Insert(code *db_models.BetaCode, ctx context.Context) error {
	if err := r.db.WithContext(ctx).Create(code).Error; err != nil {
		return err
	}
	r.logger.Info("Minted beta code with id ", code.ID)
	return nil
}

func (r *betaCodeRepository) FindByCode(ctx context.Context, code string) (*db_models.BetaCode, error) {

	var betaCode db_models.BetaCode
	err := r.db.WithContext(ctx).First(&betaCode, "code = ?", code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &betaCode, nil
}

// Delete consumes a code. Codes are single-use, so there is no way back
// from here.
func (r *betaCodeRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&db_models.BetaCode{}, "id = ?", id).Error; err != nil {
		return err
	}
	r.logger.Info("Consumed beta code with id ", id)
	return nil
}

func (r *betaCodeRepository) GetAll(ctx context.Context) ([]db_models.BetaCode, error) {
	var codes []db_models.BetaCode
	if err := r.db.WithContext(ctx).Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}
