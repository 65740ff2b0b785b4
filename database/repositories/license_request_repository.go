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

package repositories

import (
	"github.com/google/uuid"
	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/shared"
	"gorm.io/gorm"
)

type licenseRequestRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.LicenseRequest]
}

func NewLicenseRequestRepository(db shared.DB) *licenseRequestRepository {
	return &licenseRequestRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.LicenseRequest](db),
	}
}

func (r *licenseRequestRepository) ListByDeclarationID(tx shared.DB, declarationID string) ([]models.LicenseRequest, error) {
	var requests []models.LicenseRequest
	err := r.GetDB(tx).Where("declaration_id = ?", declarationID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}
