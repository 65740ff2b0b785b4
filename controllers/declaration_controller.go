// Copyright (C) 2026 o8 protocol contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"fmt"
	"net/http"

	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"
	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/dtos"
	"github.com/o8-protocol/arch/shared"
	"github.com/o8-protocol/arch/transformer"
)

const exportIndent = "  "

type DeclarationController struct {
	declarationService shared.DeclarationService
}

func NewDeclarationController(declarationService shared.DeclarationService) *DeclarationController {
	return &DeclarationController{
		declarationService: declarationService,
	}
}

// @Summary List declarations
// @Tags Declarations
// @Param badge query string false "Badge key, all for no filter"
// @Param minScore query int false "Minimal cached transparency score"
// @Param wallet query string false "Artist wallet"
// @Param artist query string false "Part of the artist name"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} shared.Paged[dtos.DeclarationDTO]
// @Router /declarations/ [get]
func (c *DeclarationController) List(ctx shared.Context) error {
	paged, err := c.declarationService.List(ctx.Request().Context(), shared.GetDeclarationFilter(ctx), shared.GetPageInfo(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch declarations").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, paged.Map(func(d models.Declaration) any {
		return transformer.DeclarationModelToDTO(d)
	}))
}

// @Summary Create a declaration
// @Tags Declarations
// @Param body body dtos.DeclarationCreateRequest true "Declaration"
// @Success 201 {object} dtos.DeclarationDTO
// @Router /declarations/ [post]
func (c *DeclarationController) Create(ctx shared.Context) error {
	var req dtos.DeclarationCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	declaration := transformer.DeclarationCreateRequestToModel(req)
	if declaration.ArtistName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "artist name is required")
	}

	if err := c.declarationService.Create(ctx.Request().Context(), &declaration); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create declaration").WithInternal(err)
	}

	return ctx.JSON(http.StatusCreated, transformer.DeclarationModelToDTO(declaration))
}

// @Summary Read a declaration
// @Tags Declarations
// @Param id path string true "Declaration ID"
// @Success 200 {object} dtos.DeclarationDetailsDTO
// @Router /declarations/{id}/ [get]
func (c *DeclarationController) Read(ctx shared.Context) error {
	declaration, children, err := c.declarationService.ReadWithChildren(ctx.Request().Context(), shared.GetParam(ctx, "id"))
	if err != nil {
		return toHTTPError(err, "failed to fetch declaration")
	}

	return ctx.JSON(http.StatusOK, transformer.DeclarationModelToDetailsDTO(declaration, children))
}

// @Summary Attach minting information to a declaration
// @Tags Declarations
// @Param id path string true "Declaration ID"
// @Param body body dtos.DeclarationPatchRequest true "Minting information"
// @Success 200 {object} dtos.DeclarationDTO
// @Router /declarations/{id}/ [patch]
func (c *DeclarationController) Update(ctx shared.Context) error {
	var req dtos.DeclarationPatchRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	declaration, err := c.declarationService.UpdateMinting(ctx.Request().Context(), shared.GetParam(ctx, "id"), req)
	if err != nil {
		return toHTTPError(err, "failed to update declaration")
	}

	return ctx.JSON(http.StatusOK, transformer.DeclarationModelToDTO(declaration))
}

// @Summary Delete an anonymous declaration
// @Tags Declarations
// @Param id path string true "Declaration ID"
// @Success 200
// @Router /declarations/{id}/ [delete]
func (c *DeclarationController) Delete(ctx shared.Context) error {
	if err := c.declarationService.Delete(ctx.Request().Context(), shared.GetParam(ctx, "id")); err != nil {
		return toHTTPError(err, "failed to delete declaration")
	}
	return ctx.NoContent(http.StatusOK)
}

// @Summary Lineage timeline of a declaration
// @Tags Declarations
// @Param id path string true "Declaration ID"
// @Success 200 {object} dtos.LineageDTO
// @Router /declarations/{id}/lineage/ [get]
func (c *DeclarationController) Lineage(ctx shared.Context) error {
	declaration, timeline, err := c.declarationService.Lineage(ctx.Request().Context(), shared.GetParam(ctx, "id"))
	if err != nil {
		return toHTTPError(err, "failed to resolve lineage")
	}

	return ctx.JSON(http.StatusOK, transformer.TimelineToDTO(declaration, timeline))
}

// @Summary Public export of a declaration
// @Tags Declarations
// @Param id path string true "Declaration ID"
// @Param format query string false "download for a file attachment"
// @Success 200 {object} dtos.PublicExport
// @Router /declarations/{id}/export/ [get]
func (c *DeclarationController) Export(ctx shared.Context) error {
	export, err := c.declarationService.PublicExport(ctx.Request().Context(), shared.GetParam(ctx, "id"))
	if err != nil {
		return toHTTPError(err, "failed to export declaration")
	}

	if ctx.QueryParam("format") == "download" {
		ctx.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadFilename(export)))
		return ctx.JSONPretty(http.StatusOK, export, exportIndent)
	}
	return ctx.JSON(http.StatusOK, export)
}

func downloadFilename(export dtos.PublicExport) string {
	s := slug.Make(export.Track.Title)
	if s == "" {
		s = "untitled"
	}
	return fmt.Sprintf("o8-%s-%s.json", s, export.DeclarationID)
}

// @Summary Social preview data of a declaration
// @Tags Declarations
// @Param id path string true "Declaration ID"
// @Success 200 {object} dtos.PreviewCard
// @Router /declarations/{id}/preview/ [get]
func (c *DeclarationController) Preview(ctx shared.Context) error {
	preview, err := c.declarationService.Preview(ctx.Request().Context(), shared.GetParam(ctx, "id"))
	if err != nil {
		return toHTTPError(err, "failed to fetch declaration")
	}
	return ctx.JSON(http.StatusOK, preview)
}
