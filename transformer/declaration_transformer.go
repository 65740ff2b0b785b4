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

package transformer

import (
	"strings"

	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/dtos"
	"github.com/o8-protocol/arch/provenance"
	"github.com/o8-protocol/arch/utils"
)

func contributorRequestToModel(c dtos.ContributorRequest) models.Contributor {
	return models.Contributor{
		Name:   strings.TrimSpace(c.Name),
		Role:   strings.TrimSpace(c.Role),
		Wallet: utils.EmptyThenNil(utils.SafeDereference(c.Wallet)),
		Split:  c.Split,
	}
}

func contributorModelToDTO(c models.Contributor) dtos.ContributorDTO {
	return dtos.ContributorDTO{Name: c.Name, Role: c.Role, Wallet: c.Wallet, Split: c.Split}
}

// DeclarationCreateRequestToModel maps the request. Empty optional strings are stored as null.
func DeclarationCreateRequestToModel(req dtos.DeclarationCreateRequest) models.Declaration {
	return models.Declaration{
		Title:               strings.TrimSpace(req.Title),
		ArtistName:          strings.TrimSpace(req.ArtistName),
		ArtistWallet:        utils.EmptyThenNil(utils.SafeDereference(req.ArtistWallet)),
		DAWs:                req.DAWs,
		Plugins:             req.Plugins,
		AIModels:            req.AIModels,
		AIComposition:       req.AIComposition,
		AIArrangement:       req.AIArrangement,
		AIProduction:        req.AIProduction,
		AIMixing:            req.AIMixing,
		AIMastering:         req.AIMastering,
		Methodology:         utils.EmptyThenNil(utils.SafeDereference(req.Methodology)),
		IPFSCID:             strings.TrimSpace(req.IPFSCID),
		SHA256:              strings.TrimSpace(req.SHA256),
		TrainingRights:      req.TrainingRights,
		DerivativeRights:    req.DerivativeRights,
		RemixRights:         req.RemixRights,
		Contributors:        utils.Map(req.ContributorSplits, contributorRequestToModel),
		ParentDeclarationID: utils.EmptyThenNil(utils.SafeDereference(req.ParentDeclarationID)),
		ParentRelation:      utils.EmptyThenNil(utils.SafeDereference(req.ParentRelation)),
		TokenID:             req.TokenID,
		ContractID:          req.ContractID,
		TxHash:              req.TxHash,
	}
}

func DeclarationModelToDTO(d models.Declaration) dtos.DeclarationDTO {
	return dtos.DeclarationDTO{
		ID:                  d.ID,
		Title:               d.Title,
		ArtistName:          d.ArtistName,
		ArtistWallet:        d.ArtistWallet,
		AuthMethod:          string(d.AuthMethod),
		DAWs:                d.DAWs,
		Plugins:             d.Plugins,
		AIModels:            d.AIModels,
		AIComposition:       d.AIComposition,
		AIArrangement:       d.AIArrangement,
		AIProduction:        d.AIProduction,
		AIMixing:            d.AIMixing,
		AIMastering:         d.AIMastering,
		Methodology:         d.Methodology,
		IPFSCID:             d.IPFSCID,
		SHA256:              d.SHA256,
		TrainingRights:      d.TrainingRights,
		DerivativeRights:    d.DerivativeRights,
		RemixRights:         d.RemixRights,
		ConsentLocked:       d.ConsentLocked,
		SplitsLocked:        d.SplitsLocked,
		ContributorSplits:   utils.Map(d.Contributors, contributorModelToDTO),
		ParentDeclarationID: d.ParentDeclarationID,
		ParentRelation:      d.ParentRelation,
		TransparencyScore:   d.TransparencyScore,
		Badge:               d.Badge,
		TokenID:             d.TokenID,
		ContractID:          d.ContractID,
		TxHash:              d.TxHash,
		MintedAt:            d.MintedAt,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func DeclarationModelsToDTOs(declarations []models.Declaration) []dtos.DeclarationDTO {
	return utils.Map(declarations, DeclarationModelToDTO)
}

func DeclarationModelToSummaryDTO(d models.Declaration) dtos.DeclarationSummaryDTO {
	return dtos.DeclarationSummaryDTO{
		ID:                d.ID,
		Title:             d.Title,
		ArtistName:        d.ArtistName,
		ParentRelation:    d.ParentRelation,
		TransparencyScore: d.TransparencyScore,
		CreatedAt:         d.CreatedAt,
	}
}

// DeclarationModelToDetailsDTO resolves the cached badge string. The cached values are
// returned as stored, use the export for freshly computed values.
func DeclarationModelToDetailsDTO(d models.Declaration, children []models.Declaration) dtos.DeclarationDetailsDTO {
	return dtos.DeclarationDetailsDTO{
		DeclarationDTO: DeclarationModelToDTO(d),
		Badges:         provenance.BadgeDTOs(provenance.ResolveBadges(d, false)),
		DerivedWorks:   utils.Map(children, DeclarationModelToSummaryDTO),
	}
}

func TimelineToDTO(d models.Declaration, timeline provenance.Timeline) dtos.LineageDTO {
	return dtos.LineageDTO{
		DeclarationID: d.ID,
		IsOriginal:    timeline.IsOriginal(),
		Nodes: utils.Map(timeline.Nodes, func(n provenance.LineageNode) dtos.LineageNodeDTO {
			summary := DeclarationModelToSummaryDTO(n.Declaration)
			// the timeline carries the freshly computed score
			summary.TransparencyScore = n.TransparencyScore
			summary.ParentRelation = n.Relation
			return dtos.LineageNodeDTO{
				DeclarationSummaryDTO: summary,
				Position:              string(n.Position),
				AverageAI:             utils.RoundTo(n.AverageAI, 2),
				ToolCount:             n.ToolCount,
			}
		}),
		Deltas: utils.Map(timeline.Deltas(), func(delta provenance.LineageDelta) dtos.LineageDeltaDTO {
			return dtos.LineageDeltaDTO{
				FromID:            delta.FromID,
				ToID:              delta.ToID,
				AverageAI:         utils.RoundTo(delta.AverageAI, 2),
				TransparencyScore: delta.TransparencyScore,
				ToolCount:         delta.ToolCount,
			}
		}),
		Truncated:        timeline.Truncated,
		TruncationReason: string(timeline.TruncationReason),
	}
}

func BadgeRegistryToDTO() dtos.BadgeRegistryDTO {
	keys := utils.Map(provenance.BadgeDefinitions(), func(b provenance.Badge) provenance.BadgeKey { return b.Key })
	return dtos.BadgeRegistryDTO{
		Badges: provenance.BadgeDTOs(keys),
		Filters: utils.Map(provenance.GalleryFilters(), func(f provenance.GalleryFilter) dtos.GalleryFilterDTO {
			return dtos.GalleryFilterDTO{Key: f.Key, Label: f.Label}
		}),
	}
}

func LicenseRequestModelToDTO(r models.LicenseRequest) dtos.LicenseRequestDTO {
	return dtos.LicenseRequestDTO{
		ID:              r.ID.String(),
		DeclarationID:   r.DeclarationID,
		RequesterWallet: r.RequesterWallet,
		RequesterName:   r.RequesterName,
		PermissionType:  string(r.PermissionType),
		Status:          string(r.Status),
	}
}

func ConsentOf(d models.Declaration) dtos.ConsentDTO {
	return dtos.ConsentDTO{
		TrainingRights:   d.TrainingRights,
		DerivativeRights: d.DerivativeRights,
		RemixRights:      d.RemixRights,
		Locked:           d.ConsentLocked,
	}
}
