package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/dtos"
	"github.com/o8-protocol/arch/mocks"
	"github.com/o8-protocol/arch/provenance"
	"github.com/o8-protocol/arch/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// eligibleDeclaration scores 90 and is therefore eligible for minting.
func eligibleDeclaration() models.Declaration {
	return models.Declaration{
		ID:            "decl-1",
		Title:         "Night Drive",
		ArtistName:    "Mira Vale",
		DAWs:          "Ableton Live",
		Plugins:       "Serum, Valhalla VintageVerb, FabFilter Pro-Q 3",
		AIModels:      "Suno v4",
		AIComposition: utils.Ptr(0),
		AIArrangement: utils.Ptr(20),
		AIProduction:  utils.Ptr(40),
		AIMixing:      utils.Ptr(60),
		AIMastering:   utils.Ptr(80),
		Methodology:   utils.Ptr(strings.Repeat("m", 250)),
		IPFSCID:       "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		SHA256:        "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		Contributors:  []models.Contributor{},
		UpdatedAt:     fixedNow,
	}
}

func newTestDeclarationService(repo *mocks.DeclarationRepository) *DeclarationService {
	s := NewDeclarationService(repo, provenance.NewLineageResolver(repo, provenance.DefaultMaxLineageDepth))
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestDeclarationServiceCreate(t *testing.T) {
	t.Run("should cache score and badges of an anonymous declaration", func(t *testing.T) {
		repo := mocks.NewDeclarationRepository(t)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Declaration")).Return(nil)

		d := models.Declaration{ArtistName: "Mira Vale", Title: "Night Drive", IPFSCID: "bafy", SHA256: "abc"}
		err := newTestDeclarationService(repo).Create(context.Background(), &d)
		require.NoError(t, err)

		assert.Equal(t, models.AuthMethodAnonymous, d.AuthMethod)
		assert.Equal(t, 40, d.TransparencyScore)
		assert.Equal(t, "DECLARED,FULL_LINEAGE", d.Badge)
		assert.NotNil(t, d.Contributors)
		assert.Empty(t, d.Contributors)
		assert.Nil(t, d.MintedAt)
	})

	t.Run("should use wallet authentication and set the minting date when created with a token", func(t *testing.T) {
		repo := mocks.NewDeclarationRepository(t)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Declaration")).Return(nil)

		d := models.Declaration{ArtistName: "Mira Vale", ArtistWallet: utils.Ptr("0xabc"), TokenID: utils.Ptr(int64(7))}
		err := newTestDeclarationService(repo).Create(context.Background(), &d)
		require.NoError(t, err)

		assert.Equal(t, models.AuthMethodWallet, d.AuthMethod)
		require.NotNil(t, d.MintedAt)
		assert.Equal(t, fixedNow, *d.MintedAt)
	})

	t.Run("should treat an empty wallet as anonymous", func(t *testing.T) {
		repo := mocks.NewDeclarationRepository(t)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Declaration")).Return(nil)

		d := models.Declaration{ArtistName: "Mira Vale", ArtistWallet: utils.Ptr("")}
		require.NoError(t, newTestDeclarationService(repo).Create(context.Background(), &d))
		assert.Equal(t, models.AuthMethodAnonymous, d.AuthMethod)
	})

	t.Run("should return storage errors", func(t *testing.T) {
		repo := mocks.NewDeclarationRepository(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		d := models.Declaration{ArtistName: "Mira Vale"}
		err := newTestDeclarationService(repo).Create(context.Background(), &d)
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestDeclarationServiceUpdateMinting(t *testing.T) {
	t.Run("should set the minting date when the token is assigned first and never rescore", func(t *testing.T) {
		d := eligibleDeclaration()
		d.TransparencyScore = 12
		d.Badge = "DECLARED"

		repo := mocks.NewDeclarationRepository(t)
		repo.On("FindByID", mock.Anything, d.ID).Return(d, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*models.Declaration")).Return(nil)

		updated, err := newTestDeclarationService(repo).UpdateMinting(context.Background(), d.ID, dtos.DeclarationPatchRequest{
			TokenID:       utils.Ptr(int64(5)),
			ContractID:    utils.Ptr("0xcontract"),
			ConsentLocked: utils.Ptr(true),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(5), *updated.TokenID)
		assert.Equal(t, "0xcontract", *updated.ContractID)
		assert.True(t, updated.ConsentLocked)
		assert.False(t, updated.SplitsLocked)
		assert.Equal(t, fixedNow, *updated.MintedAt)
		assert.Equal(t, 12, updated.TransparencyScore)
		assert.Equal(t, "DECLARED", updated.Badge)
	})

	t.Run("should keep the first minting date", func(t *testing.T) {
		mintedAt := fixedNow.Add(-24 * time.Hour)
		d := eligibleDeclaration()
		d.TokenID = utils.Ptr(int64(1))
		d.MintedAt = &mintedAt

		repo := mocks.NewDeclarationRepository(t)
		repo.On("FindByID", mock.Anything, d.ID).Return(d, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*models.Declaration")).Return(nil)

		updated, err := newTestDeclarationService(repo).UpdateMinting(context.Background(), d.ID, dtos.DeclarationPatchRequest{TokenID: utils.Ptr(int64(2))})
		require.NoError(t, err)

		assert.Equal(t, int64(2), *updated.TokenID)
		assert.Equal(t, mintedAt, *updated.MintedAt)
	})

	t.Run("should report missing declarations", func(t *testing.T) {
		repo := mocks.NewDeclarationRepository(t)
		repo.On("FindByID", mock.Anything, "missing").Return(models.Declaration{}, provenance.ErrDeclarationNotFound)

		_, err := newTestDeclarationService(repo).UpdateMinting(context.Background(), "missing", dtos.DeclarationPatchRequest{})
		assert.ErrorIs(t, err, provenance.ErrDeclarationNotFound)
	})
}

func TestDeclarationServiceDelete(t *testing.T) {
	t.Run("should delete anonymous declarations", func(t *testing.T) {
		d := eligibleDeclaration()

		repo := mocks.NewDeclarationRepository(t)
		repo.On("FindByID", mock.Anything, d.ID).Return(d, nil)
		repo.On("Delete", mock.Anything, d.ID).Return(nil)

		assert.NoError(t, newTestDeclarationService(repo).Delete(context.Background(), d.ID))
	})

	t.Run("should refuse to delete declarations with a wallet", func(t *testing.T) {
		d := eligibleDeclaration()
		d.ArtistWallet = utils.Ptr("0xabc")

		repo := mocks.NewDeclarationRepository(t)
		repo.On("FindByID", mock.Anything, d.ID).Return(d, nil)

		err := newTestDeclarationService(repo).Delete(context.Background(), d.ID)
		assert.ErrorIs(t, err, ErrDeletionForbidden)
	})

	t.Run("should refuse to delete minted declarations", func(t *testing.T) {
		d := eligibleDeclaration()
		d.TokenID = utils.Ptr(int64(3))

		repo := mocks.NewDeclarationRepository(t)
		repo.On("FindByID", mock.Anything, d.ID).Return(d, nil)

		err := newTestDeclarationService(repo).Delete(context.Background(), d.ID)
		assert.ErrorIs(t, err, ErrDeletionForbidden)
	})
}

func TestDeclarationServiceIssuanceExport(t *testing.T) {
	t.Run("should serve a repeated request from the cache", func(t *testing.T) {
		d := eligibleDeclaration()

		repo := mocks.NewDeclarationRepository(t)
		repo.On("FindByID", mock.Anything, d.ID).Return(d, nil).Times(2)
		repo.On("FindChildren", mock.Anything, d.ID).Return([]models.Declaration{}, nil).Once()

		s := newTestDeclarationService(repo)
		first, err := s.IssuanceExport(context.Background(), d.ID)
		require.NoError(t, err)
		second, err := s.IssuanceExport(context.Background(), d.ID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, d.ID, first.DeclarationID)
		assert.Equal(t, 90, first.Metrics.TransparencyScore)
	})

	t.Run("should not serve a cached export after the declaration changed", func(t *testing.T) {
		d := eligibleDeclaration()
		changed := d
		changed.TokenID = utils.Ptr(int64(9))
		changed.UpdatedAt = d.UpdatedAt.Add(time.Minute)

		repo := mocks.NewDeclarationRepository(t)
		repo.On("FindByID", mock.Anything, d.ID).Return(d, nil).Once()
		repo.On("FindByID", mock.Anything, d.ID).Return(changed, nil).Once()
		repo.On("FindChildren", mock.Anything, d.ID).Return([]models.Declaration{}, nil).Times(2)

		s := newTestDeclarationService(repo)
		first, err := s.IssuanceExport(context.Background(), d.ID)
		require.NoError(t, err)
		second, err := s.IssuanceExport(context.Background(), d.ID)
		require.NoError(t, err)

		assert.False(t, first.Minting.AlreadyMinted)
		assert.True(t, second.Minting.AlreadyMinted)
	})

	t.Run("should reject declarations below the minting threshold", func(t *testing.T) {
		d := models.Declaration{ID: "decl-low", ArtistName: "Mira Vale", IPFSCID: "bafy", SHA256: "abc", TransparencyScore: 99}

		repo := mocks.NewDeclarationRepository(t)
		repo.On("FindByID", mock.Anything, d.ID).Return(d, nil)
		repo.On("FindChildren", mock.Anything, d.ID).Return([]models.Declaration{}, nil)

		_, err := newTestDeclarationService(repo).IssuanceExport(context.Background(), d.ID)

		var notEligible *provenance.NotEligibleError
		require.ErrorAs(t, err, &notEligible)
		assert.Equal(t, provenance.MintingScoreThreshold, notEligible.Required)
		assert.Equal(t, 40, notEligible.Current)
	})
}

func TestDeclarationServiceFindStale(t *testing.T) {
	fresh := eligibleDeclaration()
	fresh.TransparencyScore = provenance.Score(fresh)
	fresh.Badge = provenance.JoinBadges(provenance.DeriveBadges(fresh))

	stale := eligibleDeclaration()
	stale.ID = "decl-2"
	stale.TransparencyScore = 71
	stale.Badge = "DECLARED,REMIX_READY"

	repo := mocks.NewDeclarationRepository(t)
	repo.On("FindInBatches", mock.Anything, staleScanBatchSize, mock.Anything).Run(func(args mock.Arguments) {
		fn := args.Get(2).(func([]models.Declaration) error)
		assert.NoError(t, fn([]models.Declaration{fresh, stale}))
	}).Return(nil)

	result, err := newTestDeclarationService(repo).FindStale(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "decl-2", result[0].ID)
	assert.Equal(t, 71, result[0].CachedScore)
	assert.Equal(t, 90, result[0].TransparencyScore)
	assert.Equal(t, fresh.Badge, result[0].Badge)
}

func TestDeclarationServiceRescore(t *testing.T) {
	d := eligibleDeclaration()
	d.TransparencyScore = 30

	repo := mocks.NewDeclarationRepository(t)
	repo.On("FindByID", mock.Anything, d.ID).Return(d, nil)
	repo.On("UpdateCache", mock.Anything, d.ID, 90, provenance.JoinBadges(provenance.DeriveBadges(d))).Return(nil)

	assert.NoError(t, newTestDeclarationService(repo).Rescore(context.Background(), d.ID))
}
