package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/o8-protocol/arch/database"
	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/integrationtestutil"
	"github.com/o8-protocol/arch/shared"
	"github.com/o8-protocol/arch/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarationRepositoryPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	repo := NewDeclarationRepository(db)
	requests := NewLicenseRequestRepository(db)

	seedDeclaration(t, repo, models.Declaration{ID: "a", ArtistName: "Mira Vale", Badge: "DECLARED", TransparencyScore: 30, CreatedAt: epoch})
	seedDeclaration(t, repo, models.Declaration{ID: "b", ArtistName: "Jun", Badge: "DECLARED,MULTIPLAYER", TransparencyScore: 60, ParentDeclarationID: utils.Ptr("a"), CreatedAt: epoch.Add(time.Hour),
		Contributors: []models.Contributor{{Name: "Ola", Role: "mixing", Split: 33.5}},
	})

	t.Run("should have applied the embedded migrations", func(t *testing.T) {
		version, dirty, err := database.GetMigrationVersionWithDB(db)
		require.NoError(t, err)
		assert.False(t, dirty)
		assert.NotZero(t, version)
	})

	t.Run("should store contributors as jsonb", func(t *testing.T) {
		found, err := repo.FindByID(context.Background(), "b")
		require.NoError(t, err)
		require.Len(t, found.Contributors, 1)
		assert.Equal(t, 33.5, found.Contributors[0].Split)
	})

	t.Run("should filter by badge and score", func(t *testing.T) {
		result, err := repo.ListPaged(nil, shared.DeclarationFilter{Badge: "MULTIPLAYER", MinScore: utils.Ptr(50)}, shared.PageInfo{Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, result.Data, 1)
		assert.Equal(t, "b", result.Data[0].ID)
	})

	t.Run("should update the cache without touching other columns", func(t *testing.T) {
		require.NoError(t, repo.UpdateCache(nil, "a", 35, "DECLARED,PROCESS_DOC"))
		found, err := repo.FindByID(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, 35, found.TransparencyScore)
		assert.Equal(t, "Mira Vale", found.ArtistName)
	})

	t.Run("should cascade license requests on delete", func(t *testing.T) {
		require.NoError(t, requests.Create(nil, &models.LicenseRequest{
			DeclarationID:   "b",
			RequesterWallet: "0x1",
			PermissionType:  models.PermissionRemix,
			Status:          models.LicenseRequestApproved,
		}))

		require.NoError(t, repo.Delete(nil, "b"))
		found, err := requests.ListByDeclarationID(nil, "b")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
