package services

import (
	"context"
	"testing"
	"time"

	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/dtos"
	"github.com/o8-protocol/arch/mocks"
	"github.com/o8-protocol/arch/provenance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLicenseService(declarations *mocks.DeclarationRepository, requests *mocks.LicenseRequestRepository) *LicenseService {
	s := NewLicenseService(declarations, requests)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestLicenseServiceRequest(t *testing.T) {
	d := eligibleDeclaration()
	d.TrainingRights = true
	d.RemixRights = false

	t.Run("should grant a permission the artist enabled", func(t *testing.T) {
		declarations := mocks.NewDeclarationRepository(t)
		requests := mocks.NewLicenseRequestRepository(t)
		declarations.On("FindByID", mock.Anything, d.ID).Return(d, nil)
		requests.On("Create", mock.Anything, mock.MatchedBy(func(r *models.LicenseRequest) bool {
			return r.Status == models.LicenseRequestApproved && r.PermissionType == models.PermissionTraining && r.RespondedAt != nil && r.RespondedAt.Equal(fixedNow)
		})).Return(nil)

		decision, err := newTestLicenseService(declarations, requests).Request(context.Background(), dtos.LicenseRequestCreate{
			DeclarationID:   d.ID,
			RequesterWallet: "0xlabel",
			PermissionType:  "training",
		})
		require.NoError(t, err)

		assert.True(t, decision.Granted)
		assert.Equal(t, `Permission granted for training on "Night Drive"`, decision.Message)
		assert.Equal(t, "approved", decision.Request.Status)
		assert.True(t, decision.Consent.TrainingRights)
	})

	t.Run("should deny and still record a permission the artist did not enable", func(t *testing.T) {
		declarations := mocks.NewDeclarationRepository(t)
		requests := mocks.NewLicenseRequestRepository(t)
		declarations.On("FindByID", mock.Anything, d.ID).Return(d, nil)
		requests.On("Create", mock.Anything, mock.MatchedBy(func(r *models.LicenseRequest) bool {
			return r.Status == models.LicenseRequestDenied
		})).Return(nil)

		decision, err := newTestLicenseService(declarations, requests).Request(context.Background(), dtos.LicenseRequestCreate{
			DeclarationID:   d.ID,
			RequesterWallet: "0xlabel",
			PermissionType:  "remix",
		})
		require.NoError(t, err)

		assert.False(t, decision.Granted)
		assert.Equal(t, `Permission denied for remix on "Night Drive". The artist has not enabled this right.`, decision.Message)
	})

	t.Run("should reject unknown permission types before touching the database", func(t *testing.T) {
		declarations := mocks.NewDeclarationRepository(t)
		requests := mocks.NewLicenseRequestRepository(t)

		_, err := newTestLicenseService(declarations, requests).Request(context.Background(), dtos.LicenseRequestCreate{
			DeclarationID:   d.ID,
			RequesterWallet: "0xlabel",
			PermissionType:  "sampling",
		})
		assert.ErrorIs(t, err, ErrInvalidPermissionType)
	})

	t.Run("should report missing declarations", func(t *testing.T) {
		declarations := mocks.NewDeclarationRepository(t)
		requests := mocks.NewLicenseRequestRepository(t)
		declarations.On("FindByID", mock.Anything, "missing").Return(models.Declaration{}, provenance.ErrDeclarationNotFound)

		_, err := newTestLicenseService(declarations, requests).Request(context.Background(), dtos.LicenseRequestCreate{
			DeclarationID:   "missing",
			RequesterWallet: "0xlabel",
			PermissionType:  "derivative",
		})
		assert.ErrorIs(t, err, provenance.ErrDeclarationNotFound)
	})
}

func TestLicenseServicePermissions(t *testing.T) {
	d := eligibleDeclaration()
	d.DerivativeRights = true
	d.ConsentLocked = true

	declarations := mocks.NewDeclarationRepository(t)
	declarations.On("FindByID", mock.Anything, d.ID).Return(d, nil)

	permissions, err := newTestLicenseService(declarations, mocks.NewLicenseRequestRepository(t)).Permissions(context.Background(), d.ID)
	require.NoError(t, err)

	assert.Equal(t, dtos.Permissions{
		DeclarationID: d.ID,
		Title:         "Night Drive",
		Artist:        "Mira Vale",
		Permissions:   dtos.PermissionFlags{Derivative: true},
		ConsentLocked: true,
	}, permissions)
}
