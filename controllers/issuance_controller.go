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
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/o8-protocol/arch/dtos"
	"github.com/o8-protocol/arch/provenance"
	"github.com/o8-protocol/arch/shared"
)

// IssuanceController serves the privileged export polled by the minting integration.
// It is called cross-origin, therefore every response allows any origin.
type IssuanceController struct {
	declarationService shared.DeclarationService
}

func NewIssuanceController(declarationService shared.DeclarationService) *IssuanceController {
	return &IssuanceController{
		declarationService: declarationService,
	}
}

func setIssuanceCORSHeaders(ctx shared.Context) {
	h := ctx.Response().Header()
	h.Set(echo.HeaderAccessControlAllowOrigin, "*")
	h.Set(echo.HeaderAccessControlAllowMethods, "GET, OPTIONS")
	h.Set(echo.HeaderAccessControlAllowHeaders, echo.HeaderContentType)
}

// @Summary Issuance export of a declaration
// @Tags Issuance
// @Param id path string true "Declaration ID"
// @Success 200 {object} dtos.IssuanceExport
// @Failure 403 {object} dtos.IssuanceRejection
// @Router /issuance/declarations/{id}/ [get]
func (c *IssuanceController) Export(ctx shared.Context) error {
	setIssuanceCORSHeaders(ctx)

	export, err := c.declarationService.IssuanceExport(ctx.Request().Context(), shared.GetParam(ctx, "id"))
	if err != nil {
		var notEligible *provenance.NotEligibleError
		if errors.As(err, &notEligible) {
			return ctx.JSON(http.StatusForbidden, dtos.IssuanceRejection{
				Error:    "Declaration does not meet minimum transparency score for minting",
				Required: notEligible.Required,
				Current:  notEligible.Current,
			})
		}
		return toHTTPError(err, "failed to fetch declaration")
	}

	return ctx.JSON(http.StatusOK, export)
}

func (c *IssuanceController) Options(ctx shared.Context) error {
	setIssuanceCORSHeaders(ctx)
	return ctx.NoContent(http.StatusOK)
}
