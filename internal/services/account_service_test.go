//go:build unit
// +build unit

package services

import (
	"context"
	"testing"
	"time"

	"github.com/PhotoScout/API/internal/models/db_models"
	"github.com/PhotoScout/API/internal/models/request_models"
	"github.com/PhotoScout/API/pkg/config"
	"github.com/PhotoScout/API/pkg/logger"
	"github.com/PhotoScout/API/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	testLogger, err := logger.New(config.LoggerConfig{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	})
	require.NoError(t, err)
	return testLogger
}

func TestAccountService_Register_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCodes := new(MockBetaCodeRepository)
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)

	service := NewAccountService(mockUsers, mockCodes, issuer, newTestLogger(t))

	code := &db_models.BetaCode{Code: "friends2012"}
	code.ID = uuid.New()

	mockCodes.On("FindByCode", mock.Anything, "friends2012").Return(code, nil)
	mockUsers.On("FindByUsername", mock.Anything, "marcel").Return(nil, nil)
	mockUsers.On("InsertTx", mock.Anything, mock.Anything).Return(nil)
	mockCodes.On("Delete", mock.Anything, code.ID.String()).Return(nil)

	user, err := service.Register(request_models.SignUpRequest{
		Username: "marcel",
		Email:    "marcel@example.com",
		FullName: "Marcel Proust",
		Password: "opensesame",
		BetaCode: "friends2012",
	}, context.Background())

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "marcel", user.Username)
	assert.NotEqual(t, "opensesame", user.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(user.PasswordHash, "opensesame"))
	mockUsers.AssertExpectations(t)
	mockCodes.AssertExpectations(t)
}

func TestAccountService_Register_InvalidBetaCode_Error(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCodes := new(MockBetaCodeRepository)
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)

	service := NewAccountService(mockUsers, mockCodes, issuer, newTestLogger(t))

	mockCodes.On("FindByCode", mock.Anything, "nope").Return(nil, nil)

	user, err := service.Register(request_models.SignUpRequest{
		Username: "marcel",
		Password: "opensesame",
		BetaCode: "nope",
	}, context.Background())

	assert.Nil(t, user)
	assert.ErrorIs(t, err, utils.ErrInvalidBetaCode)
	mockCodes.AssertExpectations(t)
}

func TestAccountService_Register_UsernameTaken_Error(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCodes := new(MockBetaCodeRepository)
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)

	service := NewAccountService(mockUsers, mockCodes, issuer, newTestLogger(t))

	code := &db_models.BetaCode{Code: "friends2012"}
	code.ID = uuid.New()
	taken := &db_models.User{Username: "marcel"}
	taken.ID = uuid.New()

	mockCodes.On("FindByCode", mock.Anything, "friends2012").Return(code, nil)
	mockUsers.On("FindByUsername", mock.Anything, "marcel").Return(taken, nil)

	user, err := service.Register(request_models.SignUpRequest{
		Username: "marcel",
		Password: "opensesame",
		BetaCode: "friends2012",
	}, context.Background())

	assert.Nil(t, user)
	assert.ErrorIs(t, err, utils.ErrUsernameTaken)
	// the code survives a rejected signup
	mockCodes.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestAccountService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCodes := new(MockBetaCodeRepository)
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)

	service := NewAccountService(mockUsers, mockCodes, issuer, newTestLogger(t))

	hash, err := utils.HashPassword("opensesame")
	require.NoError(t, err)
	user := &db_models.User{Username: "marcel", PasswordHash: hash}
	user.ID = uuid.New()

	mockUsers.On("FindByUsername", mock.Anything, "marcel").Return(user, nil)

	token, err := service.Login(request_models.LoginRequest{
		Username: "marcel",
		Password: "opensesame",
	}, context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	mockUsers.AssertExpectations(t)
}

func TestAccountService_Login_UnknownUser_Error(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCodes := new(MockBetaCodeRepository)
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)

	service := NewAccountService(mockUsers, mockCodes, issuer, newTestLogger(t))

	mockUsers.On("FindByUsername", mock.Anything, "nobody").Return(nil, nil)

	token, err := service.Login(request_models.LoginRequest{
		Username: "nobody",
		Password: "opensesame",
	}, context.Background())

	assert.Empty(t, token)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
	mockUsers.AssertExpectations(t)
}

func TestAccountService_Login_WrongPassword_Error(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCodes := new(MockBetaCodeRepository)
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)

	service := NewAccountService(mockUsers, mockCodes, issuer, newTestLogger(t))

	hash, err := utils.HashPassword("opensesame")
	require.NoError(t, err)
	user := &db_models.User{Username: "marcel", PasswordHash: hash}
	user.ID = uuid.New()

	mockUsers.On("FindByUsername", mock.Anything, "marcel").Return(user, nil)

	token, err := service.Login(request_models.LoginRequest{
		Username: "marcel",
		Password: "letmein",
	}, context.Background())

	assert.Empty(t, token)
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	mockUsers.AssertExpectations(t)
}

func TestAccountService_VerifyToken_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCodes := new(MockBetaCodeRepository)
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)

	service := NewAccountService(mockUsers, mockCodes, issuer, newTestLogger(t))

	user := &db_models.User{Username: "marcel"}
	user.ID = uuid.New()
	token, err := issuer.CreateToken(user.ID)
	require.NoError(t, err)

	mockUsers.On("FindById", mock.Anything, user.ID.String()).Return(user, nil)

	got, err := service.VerifyToken(context.Background(), token)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "marcel", got.Username)
	mockUsers.AssertExpectations(t)
}

func TestAccountService_VerifyToken_Expired_Error(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCodes := new(MockBetaCodeRepository)
	issuer := utils.NewTokenIssuer("test-secret", -time.Minute)

	service := NewAccountService(mockUsers, mockCodes, issuer, newTestLogger(t))

	token, err := issuer.CreateToken(uuid.New())
	require.NoError(t, err)

	got, err := service.VerifyToken(context.Background(), token)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, utils.ErrTokenExpired)
}

func TestAccountService_VerifyToken_Invalid_Error(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCodes := new(MockBetaCodeRepository)
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)

	service := NewAccountService(mockUsers, mockCodes, issuer, newTestLogger(t))

	got, err := service.VerifyToken(context.Background(), "definitely.not.ajwt")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, utils.ErrTokenInvalid)
}

func TestAccountService_VerifyToken_UnknownUser_Error(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockCodes := new(MockBetaCodeRepository)
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)

	service := NewAccountService(mockUsers, mockCodes, issuer, newTestLogger(t))

	ghostID := uuid.New()
	token, err := issuer.CreateToken(ghostID)
	require.NoError(t, err)

	mockUsers.On("FindById", mock.Anything, ghostID.String()).Return(nil, nil)

	got, err := service.VerifyToken(context.Background(), token)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
	mockUsers.AssertExpectations(t)
}
