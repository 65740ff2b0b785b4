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

package provenance

import (
	"fmt"
	"math"
	"strings"

	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/dtos"
	"github.com/o8-protocol/arch/utils"
)

const (
	PublicExportSchema   = "https://o8.protocol/schema/v2"
	PublicExportVersion  = "2.0.0"
	PublicExportProtocol = "O8"

	IssuanceExportVersion = "2.0"
	IssuancePlatform      = "∞8 ARCH"

	// MintingScoreThreshold is the minimal transparency score a declaration needs to be minted.
	MintingScoreThreshold = 85
)

type RarityTier string

const (
	RarityLegendary RarityTier = "legendary"
	RarityEpic      RarityTier = "epic"
	RarityRare      RarityTier = "rare"
	RarityCommon    RarityTier = "common"
)

func RarityTierOf(score int) RarityTier {
	switch {
	case score >= 95:
		return RarityLegendary
	case score >= 90:
		return RarityEpic
	case score >= 85:
		return RarityRare
	default:
		return RarityCommon
	}
}

// NotEligibleError is returned if a declaration does not reach the minting threshold.
type NotEligibleError struct {
	Required int
	Current  int
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("declaration does not meet minimum transparency score for minting (required %d, current %d)", e.Required, e.Current)
}

type SplitBreakdown struct {
	PrimaryArtist  float64
	Collaborators  []models.Contributor
	Oversubscribed bool
}

// ComputeSplits derives the revenue share of the primary artist. Contributor
// splits are not validated anywhere, so the remainder is clamped at 0.
func ComputeSplits(d models.Declaration) SplitBreakdown {
	if len(d.Contributors) == 0 {
		return SplitBreakdown{PrimaryArtist: 100, Collaborators: []models.Contributor{}}
	}

	sum := utils.Reduce(d.Contributors, func(acc float64, c models.Contributor) float64 {
		return acc + c.Split
	}, 0)

	return SplitBreakdown{
		PrimaryArtist:  math.Max(0, 100-sum),
		Collaborators:  d.Contributors,
		Oversubscribed: sum > 100,
	}
}

// BadgeDTOs resolves the keys against the registry, unknown keys are skipped.
func BadgeDTOs(keys []BadgeKey) []dtos.BadgeDTO {
	return utils.Map(BadgesOf(keys), func(b Badge) dtos.BadgeDTO {
		return dtos.BadgeDTO{
			Key:       string(b.Key),
			Label:     b.Label,
			Color:     b.Color,
			TextColor: b.TextColor,
		}
	})
}

func badgeStrings(keys []BadgeKey) []string {
	return utils.Map(keys, func(k BadgeKey) string { return string(k) })
}

func aiContributions(d models.Declaration) dtos.AIContributionsDTO {
	return dtos.AIContributionsDTO{
		Composition: d.AIComposition,
		Arrangement: d.AIArrangement,
		Production:  d.AIProduction,
		Mixing:      d.AIMixing,
		Mastering:   d.AIMastering,
		Average:     int(math.Round(AverageAI(d))),
	}
}

func lineageReference(d models.Declaration, relation *string) dtos.LineageReferenceDTO {
	return dtos.LineageReferenceDTO{
		ID:       d.ID,
		Title:    d.Title,
		Artist:   d.ArtistName,
		Relation: relation,
	}
}

// parentReference describes the relation of d to its parent. If the parent
// could not be resolved, the reference only carries the stored id.
func parentReference(d models.Declaration, timeline Timeline) *dtos.LineageReferenceDTO {
	if parent, ok := timeline.Parent(); ok {
		ref := lineageReference(parent.Declaration, d.ParentRelation)
		return &ref
	}
	if d.ParentDeclarationID != nil && *d.ParentDeclarationID != "" {
		return &dtos.LineageReferenceDTO{ID: *d.ParentDeclarationID, Relation: d.ParentRelation}
	}
	return nil
}

func derivedWorks(timeline Timeline) []dtos.LineageReferenceDTO {
	return utils.Map(timeline.Derivatives(), func(n LineageNode) dtos.LineageReferenceDTO {
		return lineageReference(n.Declaration, n.Relation)
	})
}

func contributorDTOs(contributors []models.Contributor) []dtos.ContributorDTO {
	return utils.Map(contributors, func(c models.Contributor) dtos.ContributorDTO {
		return dtos.ContributorDTO{Name: c.Name, Role: c.Role, Wallet: c.Wallet, Split: c.Split}
	})
}

func breakdownDTO(b ScoreBreakdown) dtos.ScoreBreakdownDTO {
	return dtos.ScoreBreakdownDTO{
		Base:          b.Base,
		Phases:        b.Phases,
		Methodology:   b.Methodology,
		Stack:         b.Stack,
		Provenance:    b.Provenance,
		Collaboration: b.Collaboration,
		Total:         b.Total,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// FormatPublic builds the public metadata document of a declaration. Score and
// badges are computed from the current fields; the cached values are reported
// separately together with a staleness flag.
func FormatPublic(d models.Declaration, timeline Timeline) dtos.PublicExport {
	breakdown := CalculateScoreBreakdown(d)
	badges := DeriveBadges(d)

	return dtos.PublicExport{
		Schema:        PublicExportSchema,
		Version:       PublicExportVersion,
		Protocol:      PublicExportProtocol,
		DeclarationID: d.ID,
		Track: dtos.ExportTrack{
			Title:           d.Title,
			Artist:          d.ArtistName,
			ArtistWallet:    d.ArtistWallet,
			TokenID:         d.TokenID,
			ContractAddress: d.ContractID,
		},
		AIContributions: aiContributions(d),
		CreativeStack: dtos.ExportCreativeStack{
			DAWs:      nonNil(utils.SplitCommaList(d.DAWs)),
			Plugins:   nonNil(utils.SplitCommaList(d.Plugins)),
			AIModels:  nonNil(utils.SplitCommaList(d.AIModels)),
			ToolCount: ToolCount(d),
		},
		Methodology: d.Methodology,
		Scores: dtos.ExportScores{
			Transparency: breakdown.Total,
			Breakdown:    breakdownDTO(breakdown),
		},
		Badges: BadgeDTOs(badges),
		Cache: dtos.ExportCache{
			TransparencyScore: d.TransparencyScore,
			Badges:            badgeStrings(ParseBadges(d.Badge)),
			Stale:             IsStale(d),
		},
		Consent: dtos.ExportConsent{
			TrainingRights:   d.TrainingRights,
			DerivativeRights: d.DerivativeRights,
			RemixRights:      d.RemixRights,
			Locked:           d.ConsentLocked,
		},
		ContributorSplits: contributorDTOs(d.Contributors),
		Verification: dtos.ExportVerification{
			IPFSCID:    d.IPFSCID,
			SHA256Hash: d.SHA256,
			TxHash:     d.TxHash,
		},
		Lineage: dtos.ExportLineage{
			Parent:       parentReference(d, timeline),
			DerivedWorks: derivedWorks(timeline),
			Depth:        len(timeline.Ancestors()),
			Truncated:    timeline.Truncated,
		},
		Timestamps: dtos.ExportTimestamps{
			CreatedAt: d.CreatedAt,
			MintedAt:  d.MintedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// FormatIssuance builds the document for the minting integration.
// Declarations below MintingScoreThreshold are rejected with a *NotEligibleError.
func FormatIssuance(d models.Declaration, timeline Timeline) (dtos.IssuanceExport, error) {
	score := Score(d)
	if score < MintingScoreThreshold {
		return dtos.IssuanceExport{}, &NotEligibleError{Required: MintingScoreThreshold, Current: score}
	}

	splits := ComputeSplits(d)

	return dtos.IssuanceExport{
		DeclarationID: d.ID,
		Version:       IssuanceExportVersion,
		Platform:      IssuancePlatform,
		Identity: dtos.IssuanceIdentity{
			Title:  d.Title,
			Artist: d.ArtistName,
			Wallet: d.ArtistWallet,
			Collaborators: utils.Map(d.Contributors, func(c models.Contributor) dtos.IssuanceCollaborator {
				return dtos.IssuanceCollaborator{Name: c.Name, Role: c.Role, Wallet: c.Wallet, RevenueSplit: c.Split}
			}),
		},
		Provenance: dtos.IssuanceProvenance{
			IPFSCID:           d.IPFSCID,
			SHA256Hash:        d.SHA256,
			CreatedAt:         d.CreatedAt,
			ParentDeclaration: parentReference(d, timeline),
			DerivedWorks:      derivedWorks(timeline),
		},
		Production: dtos.IssuanceProduction{
			AIContribution: aiContributions(d),
			Methodology:    d.Methodology,
			ProcessBadges:  BadgeDTOs(DeriveBadges(d)),
		},
		Metrics: dtos.IssuanceMetrics{
			TransparencyScore: score,
			RarityTier:        string(RarityTierOf(score)),
		},
		Rights: dtos.IssuanceRights{
			AITraining:  d.TrainingRights,
			Derivatives: d.DerivativeRights,
			Remixes:     d.RemixRights,
		},
		Minting: dtos.IssuanceMinting{
			AlreadyMinted: d.IsMinted(),
			TokenID:       d.TokenID,
			ContractID:    d.ContractID,
			TxHash:        d.TxHash,
			MintedAt:      d.MintedAt,
		},
		Splits: dtos.IssuanceSplits{
			PrimaryArtist: dtos.PrimaryArtistSplit{
				Wallet:     d.ArtistWallet,
				Percentage: splits.PrimaryArtist,
			},
			Collaborators: utils.Map(splits.Collaborators, func(c models.Contributor) dtos.CollaboratorSplit {
				return dtos.CollaboratorSplit{Wallet: c.Wallet, Percentage: c.Split, Name: c.Name, Role: c.Role}
			}),
			Oversubscribed: splits.Oversubscribed,
		},
	}, nil
}

func FormatPreview(d models.Declaration) dtos.PreviewCard {
	return dtos.PreviewCard{
		ID:                d.ID,
		Title:             d.Title,
		Artist:            d.ArtistName,
		TransparencyScore: Score(d),
		AverageAI:         int(math.Round(AverageAI(d))),
		ToolCount:         ToolCount(d),
		Badges:            BadgeDTOs(DeriveBadges(d)),
		Minted:            d.IsMinted(),
	}
}

// FromPublicExport rebuilds the scoring relevant fields of a declaration from an
// exported document. Re-scoring the result reproduces the exported score and badges.
func FromPublicExport(e dtos.PublicExport) models.Declaration {
	contributors := utils.Map(e.ContributorSplits, func(c dtos.ContributorDTO) models.Contributor {
		return models.Contributor{Name: c.Name, Role: c.Role, Wallet: c.Wallet, Split: c.Split}
	})

	return models.Declaration{
		ID:                e.DeclarationID,
		Title:             e.Track.Title,
		ArtistName:        e.Track.Artist,
		ArtistWallet:      e.Track.ArtistWallet,
		DAWs:              strings.Join(e.CreativeStack.DAWs, ","),
		Plugins:           strings.Join(e.CreativeStack.Plugins, ","),
		AIModels:          strings.Join(e.CreativeStack.AIModels, ","),
		AIComposition:     e.AIContributions.Composition,
		AIArrangement:     e.AIContributions.Arrangement,
		AIProduction:      e.AIContributions.Production,
		AIMixing:          e.AIContributions.Mixing,
		AIMastering:       e.AIContributions.Mastering,
		Methodology:       e.Methodology,
		IPFSCID:           e.Verification.IPFSCID,
		SHA256:            e.Verification.SHA256Hash,
		TrainingRights:    e.Consent.TrainingRights,
		DerivativeRights:  e.Consent.DerivativeRights,
		RemixRights:       e.Consent.RemixRights,
		ConsentLocked:     e.Consent.Locked,
		Contributors:      contributors,
		TransparencyScore: e.Cache.TransparencyScore,
		Badge:             strings.Join(e.Cache.Badges, ","),
		TokenID:           e.Track.TokenID,
		ContractID:        e.Track.ContractAddress,
		TxHash:            e.Verification.TxHash,
		MintedAt:          e.Timestamps.MintedAt,
		CreatedAt:         e.Timestamps.CreatedAt,
		UpdatedAt:         e.Timestamps.UpdatedAt,
	}
}
