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

type DeclarationRouter struct {
	*echo.Group
}

func NewDeclarationRouter(
	apiV1Router APIV1Router,
	declarationController *controllers.DeclarationController,
) DeclarationRouter {
	declarationGroup := apiV1Router.Group.Group("/declarations")
	declarationGroup.GET("/", declarationController.List)
	declarationGroup.POST("/", declarationController.Create)

	declarationGroup.GET("/:id/", declarationController.Read)
	declarationGroup.PATCH("/:id/", declarationController.Update)
	declarationGroup.DELETE("/:id/", declarationController.Delete)

	declarationGroup.GET("/:id/lineage/", declarationController.Lineage)
	declarationGroup.GET("/:id/export/", declarationController.Export)
	declarationGroup.GET("/:id/preview/", declarationController.Preview)

	return DeclarationRouter{Group: declarationGroup}
}
