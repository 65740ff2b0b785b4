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

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/dtos"
	"github.com/o8-protocol/arch/monitoring"
	"github.com/o8-protocol/arch/provenance"
	"github.com/o8-protocol/arch/shared"
)

var ErrDeletionForbidden = errors.New("only anonymous declarations which are not minted can be deleted")

const (
	issuanceCacheSize = 512
	issuanceCacheTTL  = 30 * time.Second

	staleScanBatchSize = 200
)

type DeclarationService struct {
	declarationRepository shared.DeclarationRepository
	lineageResolver       *provenance.LineageResolver
	// the minting integration polls the issuance export
	issuanceCache *expirable.LRU[string, dtos.IssuanceExport]
	now           func() time.Time
}

func NewDeclarationService(declarationRepository shared.DeclarationRepository, lineageResolver *provenance.LineageResolver) *DeclarationService {
	return &DeclarationService{
		declarationRepository: declarationRepository,
		lineageResolver:       lineageResolver,
		issuanceCache:         expirable.NewLRU[string, dtos.IssuanceExport](issuanceCacheSize, nil, issuanceCacheTTL),
		now:                   time.Now,
	}
}

// NewLineageResolverFromEnv reads the maximal ancestor depth from LINEAGE_MAX_DEPTH.
func NewLineageResolverFromEnv(declarationRepository shared.DeclarationRepository) *provenance.LineageResolver {
	return provenance.NewLineageResolver(declarationRepository, shared.GetEnvInt("LINEAGE_MAX_DEPTH", provenance.DefaultMaxLineageDepth))
}

// Create computes and caches score and badges. The cache is never refreshed
// implicitly afterwards.
func (s *DeclarationService) Create(ctx context.Context, declaration *models.Declaration) error {
	if declaration.ArtistWallet != nil && *declaration.ArtistWallet != "" {
		declaration.AuthMethod = models.AuthMethodWallet
	} else {
		declaration.AuthMethod = models.AuthMethodAnonymous
	}
	if declaration.Contributors == nil {
		declaration.Contributors = []models.Contributor{}
	}

	badges := provenance.DeriveBadges(*declaration)
	declaration.TransparencyScore = provenance.Score(*declaration)
	declaration.Badge = provenance.JoinBadges(badges)

	if declaration.TokenID != nil {
		declaration.AssignToken(*declaration.TokenID, s.now())
	}

	if err := s.declarationRepository.Create(nil, declaration); err != nil {
		return fmt.Errorf("could not create declaration: %w", err)
	}

	monitoring.DeclarationsCreated.WithLabelValues(string(declaration.AuthMethod)).Inc()
	monitoring.DeclarationTransparencyScore.Observe(float64(declaration.TransparencyScore))
	for _, b := range badges {
		monitoring.DeclarationBadgesAwarded.WithLabelValues(string(b)).Inc()
	}

	slog.Info("declaration created", "declarationID", declaration.ID, "transparencyScore", declaration.TransparencyScore, "badge", declaration.Badge)
	return nil
}

func (s *DeclarationService) Read(ctx context.Context, id string) (models.Declaration, error) {
	declaration, err := s.declarationRepository.FindByID(ctx, id)
	if err != nil {
		return models.Declaration{}, fmt.Errorf("could not read declaration %s: %w", id, err)
	}
	return declaration, nil
}

func (s *DeclarationService) ReadWithChildren(ctx context.Context, id string) (models.Declaration, []models.Declaration, error) {
	declaration, err := s.Read(ctx, id)
	if err != nil {
		return models.Declaration{}, nil, err
	}

	children, err := s.declarationRepository.FindChildren(ctx, id)
	if err != nil {
		return models.Declaration{}, nil, fmt.Errorf("could not fetch derivatives of declaration %s: %w", id, err)
	}
	return declaration, children, nil
}

func (s *DeclarationService) List(ctx context.Context, filter shared.DeclarationFilter, pageInfo shared.PageInfo) (shared.Paged[models.Declaration], error) {
	return s.declarationRepository.ListPaged(nil, filter, pageInfo)
}

// UpdateMinting attaches the minting information and the lock flags.
// Score and badges are left untouched.
func (s *DeclarationService) UpdateMinting(ctx context.Context, id string, patch dtos.DeclarationPatchRequest) (models.Declaration, error) {
	declaration, err := s.Read(ctx, id)
	if err != nil {
		return models.Declaration{}, err
	}

	if patch.TokenID != nil {
		declaration.AssignToken(*patch.TokenID, s.now())
	}
	if patch.ContractID != nil {
		declaration.ContractID = patch.ContractID
	}
	if patch.TxHash != nil {
		declaration.TxHash = patch.TxHash
	}
	if patch.ConsentLocked != nil {
		declaration.ConsentLocked = *patch.ConsentLocked
	}
	if patch.SplitsLocked != nil {
		declaration.SplitsLocked = *patch.SplitsLocked
	}

	if err := s.declarationRepository.Save(nil, &declaration); err != nil {
		return models.Declaration{}, fmt.Errorf("could not update declaration %s: %w", id, err)
	}
	return declaration, nil
}

func (s *DeclarationService) Delete(ctx context.Context, id string) error {
	declaration, err := s.Read(ctx, id)
	if err != nil {
		return err
	}
	if !declaration.IsAnonymous() {
		return ErrDeletionForbidden
	}

	if err := s.declarationRepository.Delete(nil, id); err != nil {
		return fmt.Errorf("could not delete declaration %s: %w", id, err)
	}
	slog.Info("declaration deleted", "declarationID", id)
	return nil
}

func (s *DeclarationService) Lineage(ctx context.Context, id string) (models.Declaration, provenance.Timeline, error) {
	declaration, err := s.Read(ctx, id)
	if err != nil {
		return models.Declaration{}, provenance.Timeline{}, err
	}

	timeline, err := s.resolve(ctx, declaration)
	if err != nil {
		return models.Declaration{}, provenance.Timeline{}, err
	}
	return declaration, timeline, nil
}

func (s *DeclarationService) resolve(ctx context.Context, declaration models.Declaration) (provenance.Timeline, error) {
	start := time.Now()
	timeline, err := s.lineageResolver.Resolve(ctx, declaration)
	monitoring.LineageResolveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return provenance.Timeline{}, err
	}
	if timeline.Truncated {
		monitoring.LineageTruncated.WithLabelValues(string(timeline.TruncationReason)).Inc()
	}
	return timeline, nil
}

func (s *DeclarationService) PublicExport(ctx context.Context, id string) (dtos.PublicExport, error) {
	declaration, timeline, err := s.Lineage(ctx, id)
	if err != nil {
		return dtos.PublicExport{}, err
	}

	monitoring.ExportsServed.WithLabelValues("public").Inc()
	return provenance.FormatPublic(declaration, timeline), nil
}

func issuanceCacheKey(declaration models.Declaration) string {
	return declaration.ID + "@" + strconv.FormatInt(declaration.UpdatedAt.UnixNano(), 10)
}

// IssuanceExport returns a *provenance.NotEligibleError if the declaration does not reach the minting threshold.
func (s *DeclarationService) IssuanceExport(ctx context.Context, id string) (dtos.IssuanceExport, error) {
	declaration, err := s.Read(ctx, id)
	if err != nil {
		return dtos.IssuanceExport{}, err
	}

	key := issuanceCacheKey(declaration)
	if cached, ok := s.issuanceCache.Get(key); ok {
		monitoring.IssuanceCacheHits.Inc()
		return cached, nil
	}

	timeline, err := s.resolve(ctx, declaration)
	if err != nil {
		return dtos.IssuanceExport{}, err
	}

	export, err := provenance.FormatIssuance(declaration, timeline)
	if err != nil {
		var notEligible *provenance.NotEligibleError
		if errors.As(err, &notEligible) {
			monitoring.IssuanceRejected.Inc()
		}
		return dtos.IssuanceExport{}, err
	}

	s.issuanceCache.Add(key, export)
	monitoring.ExportsServed.WithLabelValues("issuance").Inc()
	return export, nil
}

func (s *DeclarationService) Preview(ctx context.Context, id string) (dtos.PreviewCard, error) {
	declaration, err := s.Read(ctx, id)
	if err != nil {
		return dtos.PreviewCard{}, err
	}
	monitoring.ExportsServed.WithLabelValues("preview").Inc()
	return provenance.FormatPreview(declaration), nil
}

// FindStale lists all declarations whose cached score or badges differ from the current formulas.
func (s *DeclarationService) FindStale(ctx context.Context) ([]dtos.StaleDeclaration, error) {
	stale := make([]dtos.StaleDeclaration, 0)
	err := s.declarationRepository.FindInBatches(nil, staleScanBatchSize, func(batch []models.Declaration) error {
		for _, d := range batch {
			if !provenance.IsStale(d) {
				continue
			}
			stale = append(stale, dtos.StaleDeclaration{
				ID:                d.ID,
				Title:             d.Title,
				CachedScore:       d.TransparencyScore,
				TransparencyScore: provenance.Score(d),
				CachedBadge:       d.Badge,
				Badge:             provenance.JoinBadges(provenance.DeriveBadges(d)),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not scan declarations: %w", err)
	}
	return stale, nil
}

// Rescore explicitly rewrites the cached score and badges of a declaration.
func (s *DeclarationService) Rescore(ctx context.Context, id string) error {
	declaration, err := s.Read(ctx, id)
	if err != nil {
		return err
	}

	score := provenance.Score(declaration)
	badge := provenance.JoinBadges(provenance.DeriveBadges(declaration))
	if err := s.declarationRepository.UpdateCache(nil, id, score, badge); err != nil {
		return fmt.Errorf("could not update cache of declaration %s: %w", id, err)
	}

	slog.Info("declaration rescored", "declarationID", id, "previousScore", declaration.TransparencyScore, "transparencyScore", score, "badge", badge)
	return nil
}
