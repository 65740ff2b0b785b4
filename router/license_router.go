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

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/o8-protocol/arch/controllers"
)

type LicenseRouter struct {
	*echo.Group
}

func NewLicenseRouter(
	apiV1Router APIV1Router,
	licenseController *controllers.LicenseController,
) LicenseRouter {
	licenseGroup := apiV1Router.Group.Group("/license")
	licenseGroup.GET("/", licenseController.Permissions)
	licenseGroup.POST("/", licenseController.Request)

	return LicenseRouter{Group: licenseGroup}
}
