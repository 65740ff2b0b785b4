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

	"github.com/o8-protocol/arch/provenance"
	"github.com/o8-protocol/arch/shared"
	"github.com/o8-protocol/arch/transformer"
)

type BadgeController struct{}

func NewBadgeController() *BadgeController {
	return &BadgeController{}
}

// @Summary Badge registry and gallery filters
// @Tags Badges
// @Success 200 {object} dtos.BadgeRegistryDTO
// @Router /badges/ [get]
func (c *BadgeController) List(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, transformer.BadgeRegistryToDTO())
}

// @Summary JSON schema of the public export
// @Tags Badges
// @Success 200
// @Router /schema/export/ [get]
func (c *BadgeController) ExportSchema(ctx shared.Context) error {
	return ctx.Blob(http.StatusOK, "application/schema+json", provenance.PublicExportSchemaJSON())
}
