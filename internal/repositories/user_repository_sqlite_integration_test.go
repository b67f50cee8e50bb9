//go:build integration
// +build integration

package repositories

import (
	"context"
	"testing"

	"github.com/PhotoScout/API/internal/models/db_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_InsertTx(t *testing.T) {
	ctx := SetupTestDB(t)

	user := CreateTestUser(t, "ansel")
	err := ctx.Users.InsertTx(user, context.Background())
	require.NoError(t, err)

	var stored db_models.User
	err = ctx.DB.First(&stored, "id = ?", user.ID).Error
	require.NoError(t, err)
	assert.Equal(t, "ansel", stored.Username)
	assert.NotZero(t, stored.CreatedAt)
}

func TestUserSqliteRepository_FindByUsername(t *testing.T) {
	ctx := SetupTestDB(t)

	user := CreateTestUser(t, "dorothea")
	require.NoError(t, ctx.Users.InsertTx(user, context.Background()))

	found, err := ctx.Users.FindByUsername(context.Background(), "dorothea")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
}

func TestUserSqliteRepository_FindByUsername_NotFound(t *testing.T) {
	ctx := SetupTestDB(t)

	found, err := ctx.Users.FindByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserSqliteRepository_FindById(t *testing.T) {
	ctx := SetupTestDB(t)

	user := CreateTestUser(t, "edward")
	require.NoError(t, ctx.Users.InsertTx(user, context.Background()))

	found, err := ctx.Users.FindById(context.Background(), user.ID.String())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "edward", found.Username)

	missing, err := ctx.Users.FindById(context.Background(), "11111111-2222-3333-4444-555555555555")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
