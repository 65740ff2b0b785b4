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

package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/dtos"
	"github.com/o8-protocol/arch/provenance"
	"github.com/o8-protocol/arch/utils"
)

type DeclarationRepository interface {
	utils.Repository[string, models.Declaration, DB]
	provenance.DeclarationSource

	ListPaged(tx DB, filter DeclarationFilter, pageInfo PageInfo) (Paged[models.Declaration], error)
	// FindInBatches iterates over all declarations in primary key order.
	FindInBatches(tx DB, batchSize int, fn func(batch []models.Declaration) error) error
	UpdateCache(tx DB, id string, transparencyScore int, badge string) error
}

type LicenseRequestRepository interface {
	utils.Repository[uuid.UUID, models.LicenseRequest, DB]
	ListByDeclarationID(tx DB, declarationID string) ([]models.LicenseRequest, error)
}

type DeclarationService interface {
	Create(ctx context.Context, declaration *models.Declaration) error
	Read(ctx context.Context, id string) (models.Declaration, error)
	ReadWithChildren(ctx context.Context, id string) (models.Declaration, []models.Declaration, error)
	List(ctx context.Context, filter DeclarationFilter, pageInfo PageInfo) (Paged[models.Declaration], error)
	UpdateMinting(ctx context.Context, id string, patch dtos.DeclarationPatchRequest) (models.Declaration, error)
	Delete(ctx context.Context, id string) error

	Lineage(ctx context.Context, id string) (models.Declaration, provenance.Timeline, error)
	PublicExport(ctx context.Context, id string) (dtos.PublicExport, error)
	IssuanceExport(ctx context.Context, id string) (dtos.IssuanceExport, error)
	Preview(ctx context.Context, id string) (dtos.PreviewCard, error)

	FindStale(ctx context.Context) ([]dtos.StaleDeclaration, error)
	Rescore(ctx context.Context, id string) error
}

type LicenseService interface {
	Request(ctx context.Context, req dtos.LicenseRequestCreate) (dtos.LicenseDecision, error)
	Permissions(ctx context.Context, declarationID string) (dtos.Permissions, error)
}
