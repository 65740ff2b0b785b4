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
	"context"
	"errors"
	"strings"

	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/provenance"
	"github.com/o8-protocol/arch/shared"
	"gorm.io/gorm"
)

type declarationRepository struct {
	db *gorm.DB
	*GormRepository[string, models.Declaration]
}

func NewDeclarationRepository(db shared.DB) *declarationRepository {
	return &declarationRepository{
		db:             db,
		GormRepository: newGormRepository[string, models.Declaration](db),
	}
}

// FindByID maps a missing record to provenance.ErrDeclarationNotFound.
func (r *declarationRepository) FindByID(ctx context.Context, id string) (models.Declaration, error) {
	var d models.Declaration
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return d, provenance.ErrDeclarationNotFound
	}
	return d, err
}

func (r *declarationRepository) FindChildren(ctx context.Context, parentID string) ([]models.Declaration, error) {
	var children []models.Declaration
	err := r.db.WithContext(ctx).
		Where("parent_declaration_id = ?", parentID).
		Order("created_at ASC").Order("id ASC").
		Find(&children).Error
	return children, err
}

func applyDeclarationFilter(db *gorm.DB, filter shared.DeclarationFilter) *gorm.DB {
	if filter.Badge != "" {
		db = db.Where("badge LIKE ? ESCAPE '\\'", "%"+escapeLike(filter.Badge)+"%")
	}
	if filter.MinScore != nil {
		db = db.Where("transparency_score >= ?", *filter.MinScore)
	}
	if filter.ArtistWallet != "" {
		db = db.Where("artist_wallet = ?", filter.ArtistWallet)
	}
	if filter.ArtistName != "" {
		db = db.Where("LOWER(artist_name) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(filter.ArtistName))+"%")
	}
	return db
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *declarationRepository) ListPaged(tx shared.DB, filter shared.DeclarationFilter, pageInfo shared.PageInfo) (shared.Paged[models.Declaration], error) {
	var declarations []models.Declaration
	var total int64

	q := applyDeclarationFilter(r.GetDB(tx).Model(&models.Declaration{}), filter)
	if err := q.Count(&total).Error; err != nil {
		return shared.Paged[models.Declaration]{}, err
	}

	err := pageInfo.ApplyOnDB(applyDeclarationFilter(r.GetDB(tx), filter)).
		Order("created_at DESC").Order("id DESC").
		Find(&declarations).Error
	if err != nil {
		return shared.Paged[models.Declaration]{}, err
	}

	return shared.NewPaged(pageInfo, total, declarations), nil
}

func (r *declarationRepository) FindInBatches(tx shared.DB, batchSize int, fn func(batch []models.Declaration) error) error {
	var batch []models.Declaration
	return r.GetDB(tx).FindInBatches(&batch, batchSize, func(_ *gorm.DB, _ int) error {
		return fn(batch)
	}).Error
}

// UpdateCache rewrites the cached score and badges without touching any other column.
func (r *declarationRepository) UpdateCache(tx shared.DB, id string, transparencyScore int, badge string) error {
	res := r.GetDB(tx).Model(&models.Declaration{}).Where("id = ?", id).Updates(map[string]any{
		"transparency_score": transparencyScore,
		"badge":              badge,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return provenance.ErrDeclarationNotFound
	}
	return nil
}
