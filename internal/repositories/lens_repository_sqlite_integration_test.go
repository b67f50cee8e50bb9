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

func TestLensSqliteRepository_InsertTxAndFindById(t *testing.T) {
	ctx := SetupTestDB(t)

	owner := CreateTestUser(t, "galen")
	require.NoError(t, ctx.Users.InsertTx(owner, context.Background()))

	lens := &db_models.Lens{
		DisplayName: "Canon EF 24-70mm f/2.8L",
		FocalRange:  "24-70",
		OwnerID:     owner.ID,
	}
	require.NoError(t, ctx.Lenses.InsertTx(lens, context.Background()))

	found, err := ctx.Lenses.FindById(context.Background(), lens.ID.String())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "24-70", found.FocalRange)
}

func TestLensSqliteRepository_GetListOfLensesByOwnerId(t *testing.T) {
	ctx := SetupTestDB(t)

	owner := CreateTestUser(t, "galen")
	other := CreateTestUser(t, "ansel")
	require.NoError(t, ctx.Users.InsertTx(owner, context.Background()))
	require.NoError(t, ctx.Users.InsertTx(other, context.Background()))

	mine := &db_models.Lens{DisplayName: "50mm prime", FocalRange: "50", OwnerID: owner.ID}
	theirs := &db_models.Lens{DisplayName: "85mm prime", FocalRange: "85", OwnerID: other.ID}
	require.NoError(t, ctx.Lenses.InsertTx(mine, context.Background()))
	require.NoError(t, ctx.Lenses.InsertTx(theirs, context.Background()))

	lenses, err := ctx.Lenses.GetListOfLensesByOwnerId(context.Background(), owner.ID.String())
	require.NoError(t, err)
	require.Len(t, lenses, 1)
	assert.Equal(t, "50mm prime", lenses[0].DisplayName)
}

func TestLensSqliteRepository_Update(t *testing.T) {
	ctx := SetupTestDB(t)

	owner := CreateTestUser(t, "galen")
	require.NoError(t, ctx.Users.InsertTx(owner, context.Background()))

	lens := &db_models.Lens{DisplayName: "zoom", FocalRange: "70-200", OwnerID: owner.ID}
	require.NoError(t, ctx.Lenses.InsertTx(lens, context.Background()))

	lens.DisplayName = "Nikkor 70-200mm f/4"
	require.NoError(t, ctx.Lenses.Update(lens, context.Background()))

	var stored db_models.Lens
	require.NoError(t, ctx.DB.First(&stored, "id = ?", lens.ID).Error)
	assert.Equal(t, "Nikkor 70-200mm f/4", stored.DisplayName)
}

func TestLensSqliteRepository_Delete(t *testing.T) {
	ctx := SetupTestDB(t)

	owner := CreateTestUser(t, "galen")
	require.NoError(t, ctx.Users.InsertTx(owner, context.Background()))

	lens := &db_models.Lens{DisplayName: "old glass", FocalRange: "35", OwnerID: owner.ID}
	require.NoError(t, ctx.Lenses.InsertTx(lens, context.Background()))
	require.NoError(t, ctx.Lenses.Delete(context.Background(), lens.ID.String()))

	gone, err := ctx.Lenses.FindById(context.Background(), lens.ID.String())
	require.NoError(t, err)
	assert.Nil(t, gone)
}
