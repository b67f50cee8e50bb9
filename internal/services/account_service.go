package services

import (
	"context"
	"time"

	"github.com/PhotoScout/API/internal/models/db_models"
	"github.com/PhotoScout/API/internal/models/request_models"
	"github.com/PhotoScout/API/internal/repositories"
	"github.com/PhotoScout/API/pkg/logger"
	"github.com/PhotoScout/API/pkg/utils"
)

type AccountServiceInterface interface {
	Register(request request_models.SignUpRequest, ctx context.Context) (*db_models.User, error)
	Login(request request_models.LoginRequest, ctx context.Context) (string, error)
	VerifyToken(ctx context.Context, token string) (*db_models.User, error)
}

type AccountService struct {
	userRepo     repositories.UserRepository
	betaCodeRepo repositories.BetaCodeRepository
	tokenIssuer  *utils.TokenIssuer
	logger       logger.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	betaCodeRepo repositories.BetaCodeRepository,
	tokenIssuer *utils.TokenIssuer,
	logger logger.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo:     userRepo,
		betaCodeRepo: betaCodeRepo,
		tokenIssuer:  tokenIssuer,
		logger:       logger,
	}
}

// Register creates an account behind the beta gate. The invitation code
// is single-use and consumed only once the account exists.
func (a *AccountService) Register(request request_models.SignUpRequest, ctx context.Context) (*db_models.User, error) {

	code, err := a.betaCodeRepo.FindByCode(ctx, request.BetaCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if code == nil {
		return nil, utils.ErrInvalidBetaCode
	}

	existingUser, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingUser != nil {
		return nil, utils.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Username:     request.Username,
		Email:        request.Email,
		FullName:     request.FullName,
		PasswordHash: hashedPassword,
	}

	if err := a.userRepo.InsertTx(newUser, ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := a.betaCodeRepo.Delete(ctx, code.ID.String()); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return newUser, nil
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (string, error) {

	startTime := time.Now()

	user, err := a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	if user == nil {
		return "", utils.ErrUserNotFound
	}

	err = utils.ComparePasswords(user.PasswordHash, request.Password)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := a.tokenIssuer.CreateToken(user.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	a.logger.Info("Login process took ", time.Since(startTime))

	return token, nil
}

// VerifyToken resolves a token back to its account. The expired and
// invalid kinds pass through untouched so callers can tell them apart.
func (a *AccountService) VerifyToken(ctx context.Context, token string) (*db_models.User, error) {

	claims, err := a.tokenIssuer.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	user, err := a.userRepo.FindById(ctx, claims.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	return user, nil
}
