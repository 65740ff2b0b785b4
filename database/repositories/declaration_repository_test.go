package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/integrationtestutil"
	"github.com/o8-protocol/arch/provenance"
	"github.com/o8-protocol/arch/shared"
	"github.com/o8-protocol/arch/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func seedDeclaration(t *testing.T, repo *declarationRepository, d models.Declaration) models.Declaration {
	t.Helper()
	require.NoError(t, repo.Create(nil, &d))
	return d
}

func TestDeclarationRepository(t *testing.T) {
	db, terminate := integrationtestutil.InitSQLiteDatabase()
	defer terminate()

	repo := NewDeclarationRepository(db)

	original := seedDeclaration(t, repo, models.Declaration{ID: "a", ArtistName: "Mira Vale", Badge: "DECLARED,DEEP_STACK", TransparencyScore: 70, CreatedAt: epoch})
	seedDeclaration(t, repo, models.Declaration{ID: "c", ArtistName: "Jun", Badge: "DECLARED", TransparencyScore: 40, ParentDeclarationID: utils.Ptr("a"), CreatedAt: epoch.Add(2 * time.Hour)})
	seedDeclaration(t, repo, models.Declaration{ID: "b", ArtistName: "mira vale", ArtistWallet: utils.Ptr("0xabc"), Badge: "DECLARED,MULTIPLAYER", TransparencyScore: 55, ParentDeclarationID: utils.Ptr("a"), CreatedAt: epoch.Add(time.Hour),
		Contributors: []models.Contributor{{Name: "Ola", Role: "mixing", Split: 25}},
	})

	t.Run("should find a declaration by id", func(t *testing.T) {
		found, err := repo.FindByID(context.Background(), original.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mira Vale", found.ArtistName)
	})

	t.Run("should map a missing declaration to the not found error", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), "missing")
		assert.ErrorIs(t, err, provenance.ErrDeclarationNotFound)
	})

	t.Run("should keep contributors as json", func(t *testing.T) {
		found, err := repo.FindByID(context.Background(), "b")
		require.NoError(t, err)
		require.Len(t, found.Contributors, 1)
		assert.Equal(t, 25.0, found.Contributors[0].Split)
	})

	t.Run("should return direct children oldest first", func(t *testing.T) {
		children, err := repo.FindChildren(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "c"}, utils.Map(children, func(d models.Declaration) string { return d.ID }))
	})

	t.Run("should list newest first and apply the filters", func(t *testing.T) {
		all, err := repo.ListPaged(nil, shared.DeclarationFilter{}, shared.PageInfo{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 3, all.Total)
		assert.Equal(t, "c", all.Data[0].ID)

		byArtist, err := repo.ListPaged(nil, shared.DeclarationFilter{ArtistName: "MIRA"}, shared.PageInfo{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 2, byArtist.Total)

		byBadge, err := repo.ListPaged(nil, shared.DeclarationFilter{Badge: "MULTIPLAYER"}, shared.PageInfo{Page: 1, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, byBadge.Data, 1)
		assert.Equal(t, "b", byBadge.Data[0].ID)

		byScore, err := repo.ListPaged(nil, shared.DeclarationFilter{MinScore: utils.Ptr(50)}, shared.PageInfo{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 2, byScore.Total)

		byWallet, err := repo.ListPaged(nil, shared.DeclarationFilter{ArtistWallet: "0xabc"}, shared.PageInfo{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, byWallet.Total)
	})

	t.Run("should treat like wildcards in filters literally", func(t *testing.T) {
		page, err := repo.ListPaged(nil, shared.DeclarationFilter{ArtistName: "%"}, shared.PageInfo{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 0, page.Total)
	})

	t.Run("should page the result", func(t *testing.T) {
		page, err := repo.ListPaged(nil, shared.DeclarationFilter{}, shared.PageInfo{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, page.Total)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "a", page.Data[0].ID)
	})

	t.Run("should iterate over all declarations in batches", func(t *testing.T) {
		var batches [][]string
		err := repo.FindInBatches(nil, 2, func(batch []models.Declaration) error {
			batches = append(batches, utils.Map(batch, func(d models.Declaration) string { return d.ID }))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, batches)
	})

	t.Run("should update the cached score and badges", func(t *testing.T) {
		require.NoError(t, repo.UpdateCache(nil, "c", 41, "DECLARED,FULL_LINEAGE"))

		found, err := repo.FindByID(context.Background(), "c")
		require.NoError(t, err)
		assert.Equal(t, 41, found.TransparencyScore)
		assert.Equal(t, "DECLARED,FULL_LINEAGE", found.Badge)

		assert.ErrorIs(t, repo.UpdateCache(nil, "missing", 1, ""), provenance.ErrDeclarationNotFound)
	})
}

func TestLicenseRequestRepository(t *testing.T) {
	db, terminate := integrationtestutil.InitSQLiteDatabase()
	defer terminate()

	declarations := NewDeclarationRepository(db)
	requests := NewLicenseRequestRepository(db)

	seedDeclaration(t, declarations, models.Declaration{ID: "a", ArtistName: "Mira Vale"})
	for i, permissionType := range []models.PermissionType{models.PermissionTraining, models.PermissionRemix} {
		require.NoError(t, requests.Create(nil, &models.LicenseRequest{
			DeclarationID:   "a",
			RequesterWallet: fmt.Sprintf("0x%d", i),
			PermissionType:  permissionType,
			Status:          models.LicenseRequestDenied,
		}))
	}

	found, err := requests.ListByDeclarationID(nil, "a")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	t.Run("should delete license requests together with their declaration", func(t *testing.T) {
		require.NoError(t, declarations.Delete(nil, "a"))

		found, err := requests.ListByDeclarationID(nil, "a")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
