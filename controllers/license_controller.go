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
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/o8-protocol/arch/dtos"
	"github.com/o8-protocol/arch/shared"
)

type LicenseController struct {
	licenseService shared.LicenseService
}

func NewLicenseController(licenseService shared.LicenseService) *LicenseController {
	return &LicenseController{
		licenseService: licenseService,
	}
}

// @Summary Request a license for a declaration
// @Tags License
// @Param body body dtos.LicenseRequestCreate true "License request"
// @Success 200 {object} dtos.LicenseDecision
// @Router /license/ [post]
func (c *LicenseController) Request(ctx shared.Context) error {
	var req dtos.LicenseRequestCreate
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing required fields: declarationId, requesterWallet, permissionType").WithInternal(err)
	}

	decision, err := c.licenseService.Request(ctx.Request().Context(), req)
	if err != nil {
		return toHTTPError(err, "failed to process license request")
	}

	return ctx.JSON(http.StatusOK, decision)
}

// @Summary Permissions granted by a declaration
// @Tags License
// @Param declarationId query string true "Declaration ID"
// @Success 200 {object} dtos.Permissions
// @Router /license/ [get]
func (c *LicenseController) Permissions(ctx shared.Context) error {
	declarationID := shared.SanitizeParam(ctx.QueryParam("declarationId"))
	if declarationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "declarationId query parameter required")
	}

	permissions, err := c.licenseService.Permissions(ctx.Request().Context(), declarationID)
	if err != nil {
		return toHTTPError(err, "failed to fetch permissions")
	}

	return ctx.JSON(http.StatusOK, permissions)
}
