package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/dtos"
	"github.com/o8-protocol/arch/mocks"
	"github.com/o8-protocol/arch/provenance"
	"github.com/o8-protocol/arch/services"
	"github.com/o8-protocol/arch/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJSONContext(method, target, body string) (shared.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withID(ctx shared.Context, id string) shared.Context {
	ctx.SetParamNames("id")
	ctx.SetParamValues(id)
	return ctx
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, code, httpErr.Code)
}

func TestDeclarationControllerCreate(t *testing.T) {
	t.Run("should create a declaration and return the cached score", func(t *testing.T) {
		service := mocks.NewDeclarationService(t)
		service.On("Create", mock.Anything, mock.MatchedBy(func(d *models.Declaration) bool {
			return d.ArtistName == "Mira Vale" && *d.AIMixing == 40
		})).Run(func(args mock.Arguments) {
			d := args.Get(1).(*models.Declaration)
			d.ID = "decl-1"
			d.TransparencyScore = 34
		}).Return(nil)

		ctx, rec := newJSONContext(http.MethodPost, "/declarations/", `{"title":"Night Drive","artistName":" Mira Vale ","aiMixing":40}`)
		err := NewDeclarationController(service).Create(ctx)
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var body dtos.DeclarationDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "decl-1", body.ID)
		assert.Equal(t, 34, body.TransparencyScore)
	})

	t.Run("should require an artist name", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/declarations/", `{"title":"Night Drive"}`)
		err := NewDeclarationController(mocks.NewDeclarationService(t)).Create(ctx)
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("should reject a blank artist name", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/declarations/", `{"artistName":"   "}`)
		err := NewDeclarationController(mocks.NewDeclarationService(t)).Create(ctx)
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("should reject phase percentages above 100", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/declarations/", `{"artistName":"Mira Vale","aiComposition":120}`)
		err := NewDeclarationController(mocks.NewDeclarationService(t)).Create(ctx)
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("should reject contributor splits outside of 0 to 100", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/declarations/", `{"artistName":"Mira Vale","contributorSplits":[{"name":"Jun","split":140}]}`)
		err := NewDeclarationController(mocks.NewDeclarationService(t)).Create(ctx)
		assertHTTPError(t, err, http.StatusBadRequest)
	})
}

func TestDeclarationControllerErrors(t *testing.T) {
	t.Run("should answer 404 for a missing declaration", func(t *testing.T) {
		service := mocks.NewDeclarationService(t)
		service.On("ReadWithChildren", mock.Anything, "missing").Return(models.Declaration{}, nil, provenance.ErrDeclarationNotFound)

		ctx, _ := newJSONContext(http.MethodGet, "/declarations/missing/", "")
		err := NewDeclarationController(service).Read(withID(ctx, "missing"))
		assertHTTPError(t, err, http.StatusNotFound)
	})

	t.Run("should answer 403 when deleting a wallet owned declaration", func(t *testing.T) {
		service := mocks.NewDeclarationService(t)
		service.On("Delete", mock.Anything, "decl-1").Return(services.ErrDeletionForbidden)

		ctx, _ := newJSONContext(http.MethodDelete, "/declarations/decl-1/", "")
		err := NewDeclarationController(service).Delete(withID(ctx, "decl-1"))
		assertHTTPError(t, err, http.StatusForbidden)
	})

	t.Run("should answer 500 for storage failures", func(t *testing.T) {
		service := mocks.NewDeclarationService(t)
		service.On("Preview", mock.Anything, "decl-1").Return(dtos.PreviewCard{}, errors.New("connection refused"))

		ctx, _ := newJSONContext(http.MethodGet, "/declarations/decl-1/preview/", "")
		err := NewDeclarationController(service).Preview(withID(ctx, "decl-1"))
		assertHTTPError(t, err, http.StatusInternalServerError)
	})
}

func TestDeclarationControllerExport(t *testing.T) {
	export := dtos.PublicExport{
		DeclarationID: "decl-1",
		Track:         dtos.ExportTrack{Title: "Night Drive (Remix)", Artist: "Mira Vale"},
	}

	t.Run("should serve the export inline by default", func(t *testing.T) {
		service := mocks.NewDeclarationService(t)
		service.On("PublicExport", mock.Anything, "decl-1").Return(export, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/declarations/decl-1/export/", "")
		require.NoError(t, NewDeclarationController(service).Export(withID(ctx, "decl-1")))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Disposition"))
	})

	t.Run("should offer an indented file for download", func(t *testing.T) {
		service := mocks.NewDeclarationService(t)
		service.On("PublicExport", mock.Anything, "decl-1").Return(export, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/declarations/decl-1/export/?format=download", "")
		require.NoError(t, NewDeclarationController(service).Export(withID(ctx, "decl-1")))

		assert.Equal(t, `attachment; filename="o8-night-drive-remix-decl-1.json"`, rec.Header().Get("Content-Disposition"))
		assert.Contains(t, rec.Body.String(), "\n  \"declaration_id\": \"decl-1\"")
	})
}

func TestIssuanceController(t *testing.T) {
	t.Run("should reject ineligible declarations with the required score", func(t *testing.T) {
		service := mocks.NewDeclarationService(t)
		service.On("IssuanceExport", mock.Anything, "decl-1").Return(dtos.IssuanceExport{}, &provenance.NotEligibleError{Required: 85, Current: 62})

		ctx, rec := newJSONContext(http.MethodGet, "/issuance/declarations/decl-1/", "")
		require.NoError(t, NewIssuanceController(service).Export(withID(ctx, "decl-1")))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

		var rejection dtos.IssuanceRejection
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rejection))
		assert.Equal(t, 85, rejection.Required)
		assert.Equal(t, 62, rejection.Current)
	})

	t.Run("should serve the export to any origin", func(t *testing.T) {
		service := mocks.NewDeclarationService(t)
		service.On("IssuanceExport", mock.Anything, "decl-1").Return(dtos.IssuanceExport{DeclarationID: "decl-1"}, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/issuance/declarations/decl-1/", "")
		require.NoError(t, NewIssuanceController(service).Export(withID(ctx, "decl-1")))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	t.Run("should answer preflight requests", func(t *testing.T) {
		ctx, rec := newJSONContext(http.MethodOptions, "/issuance/declarations/decl-1/", "")
		require.NoError(t, NewIssuanceController(mocks.NewDeclarationService(t)).Options(withID(ctx, "decl-1")))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "GET, OPTIONS", rec.Header().Get(echo.HeaderAccessControlAllowMethods))
	})
}

func TestLicenseController(t *testing.T) {
	t.Run("should require all fields of a license request", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/license/", `{"declarationId":"decl-1"}`)
		err := NewLicenseController(mocks.NewLicenseService(t)).Request(ctx)
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("should answer 400 for an invalid permission type", func(t *testing.T) {
		service := mocks.NewLicenseService(t)
		service.On("Request", mock.Anything, mock.Anything).Return(dtos.LicenseDecision{}, services.ErrInvalidPermissionType)

		ctx, _ := newJSONContext(http.MethodPost, "/license/", `{"declarationId":"decl-1","requesterWallet":"0xlabel","permissionType":"sampling"}`)
		err := NewLicenseController(service).Request(ctx)
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("should require the declaration id when reading permissions", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodGet, "/license/", "")
		err := NewLicenseController(mocks.NewLicenseService(t)).Permissions(ctx)
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("should return the permissions of a declaration", func(t *testing.T) {
		service := mocks.NewLicenseService(t)
		service.On("Permissions", mock.Anything, "decl-1").Return(dtos.Permissions{DeclarationID: "decl-1", Permissions: dtos.PermissionFlags{Remix: true}}, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/license/?declarationId=decl-1", "")
		require.NoError(t, NewLicenseController(service).Permissions(ctx))
		assert.Contains(t, rec.Body.String(), `"remix":true`)
	})
}

func TestBadgeController(t *testing.T) {
	ctx, rec := newJSONContext(http.MethodGet, "/badges/", "")
	require.NoError(t, NewBadgeController().List(ctx))

	var registry dtos.BadgeRegistryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registry))
	assert.Len(t, registry.Badges, 5)

	ctx, rec = newJSONContext(http.MethodGet, "/schema/export/", "")
	require.NoError(t, NewBadgeController().ExportSchema(ctx))
	assert.Equal(t, "application/schema+json", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), provenance.PublicExportSchema)
}
