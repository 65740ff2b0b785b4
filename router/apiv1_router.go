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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/o8-protocol/arch/controllers"
	"github.com/o8-protocol/arch/shared"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv *echo.Echo,
	db shared.DB,
	pool *pgxpool.Pool,
	badgeController *controllers.BadgeController,
) APIV1Router {
	apiV1Router := srv.Group("/api/v1")

	apiV1Router.GET("/info/", infoHandler(db, pool))
	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", healthHandler(db))

	apiV1Router.GET("/badges/", badgeController.List)
	apiV1Router.GET("/schema/export/", badgeController.ExportSchema)

	return APIV1Router{Group: apiV1Router}
}
