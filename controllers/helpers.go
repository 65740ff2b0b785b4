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
	"github.com/o8-protocol/arch/provenance"
	"github.com/o8-protocol/arch/services"
)

// toHTTPError maps the domain errors of the service layer to status codes.
func toHTTPError(err error, msg string) error {
	switch {
	case errors.Is(err, provenance.ErrDeclarationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "declaration not found").WithInternal(err)
	case errors.Is(err, services.ErrDeletionForbidden):
		return echo.NewHTTPError(http.StatusForbidden, services.ErrDeletionForbidden.Error()).WithInternal(err)
	case errors.Is(err, services.ErrInvalidPermissionType):
		return echo.NewHTTPError(http.StatusBadRequest, services.ErrInvalidPermissionType.Error()).WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, msg).WithInternal(err)
}
