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
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/o8-protocol/arch/database/models"
	"golang.org/x/sync/errgroup"
)

var ErrDeclarationNotFound = errors.New("declaration not found")

const DefaultMaxLineageDepth = 64

// DeclarationSource is the storage the lineage resolver reads from.
// FindByID must return ErrDeclarationNotFound if there is no declaration with the id.
type DeclarationSource interface {
	FindByID(ctx context.Context, id string) (models.Declaration, error)
	FindChildren(ctx context.Context, parentID string) ([]models.Declaration, error)
}

type NodePosition string

const (
	PositionAncestor   NodePosition = "ancestor"
	PositionCurrent    NodePosition = "current"
	PositionDerivative NodePosition = "derivative"
)

type TruncationReason string

const (
	TruncatedMissingParent TruncationReason = "missing_parent"
	TruncatedFetchFailed   TruncationReason = "fetch_failed"
	TruncatedCycle         TruncationReason = "cycle"
	TruncatedMaxDepth      TruncationReason = "max_depth"
)

type LineageNode struct {
	Declaration models.Declaration
	Position    NodePosition
	// Relation is the parentRelation tag of the node itself, e.g. "remix"
	Relation          *string
	AverageAI         float64
	ToolCount         int
	TransparencyScore int
}

func newLineageNode(d models.Declaration, position NodePosition) LineageNode {
	return LineageNode{
		Declaration:       d,
		Position:          position,
		Relation:          d.ParentRelation,
		AverageAI:         AverageAI(d),
		ToolCount:         ToolCount(d),
		TransparencyScore: Score(d),
	}
}

// Timeline is the ordered evolution of a declaration:
// ancestors (oldest first), the declaration itself, its direct derivatives.
type Timeline struct {
	Nodes            []LineageNode
	Truncated        bool
	TruncationReason TruncationReason
}

// IsOriginal is true if the declaration has neither a resolvable parent nor derivatives.
func (t Timeline) IsOriginal() bool {
	return len(t.Nodes) == 1
}

func (t Timeline) filter(position NodePosition) []LineageNode {
	res := make([]LineageNode, 0)
	for _, n := range t.Nodes {
		if n.Position == position {
			res = append(res, n)
		}
	}
	return res
}

func (t Timeline) Ancestors() []LineageNode {
	return t.filter(PositionAncestor)
}

func (t Timeline) Derivatives() []LineageNode {
	return t.filter(PositionDerivative)
}

func (t Timeline) Current() (LineageNode, bool) {
	for _, n := range t.Nodes {
		if n.Position == PositionCurrent {
			return n, true
		}
	}
	return LineageNode{}, false
}

// Parent returns the direct parent, which is the last ancestor.
func (t Timeline) Parent() (LineageNode, bool) {
	ancestors := t.Ancestors()
	if len(ancestors) == 0 {
		return LineageNode{}, false
	}
	return ancestors[len(ancestors)-1], true
}

type LineageDelta struct {
	FromID            string
	ToID              string
	AverageAI         float64
	TransparencyScore int
	ToolCount         int
}

// Deltas compares every node with its predecessor in the timeline.
func (t Timeline) Deltas() []LineageDelta {
	if len(t.Nodes) < 2 {
		return []LineageDelta{}
	}
	res := make([]LineageDelta, 0, len(t.Nodes)-1)
	for i := 1; i < len(t.Nodes); i++ {
		prev, cur := t.Nodes[i-1], t.Nodes[i]
		res = append(res, LineageDelta{
			FromID:            prev.Declaration.ID,
			ToID:              cur.Declaration.ID,
			AverageAI:         cur.AverageAI - prev.AverageAI,
			TransparencyScore: cur.TransparencyScore - prev.TransparencyScore,
			ToolCount:         cur.ToolCount - prev.ToolCount,
		})
	}
	return res
}

type LineageResolver struct {
	source   DeclarationSource
	maxDepth int
}

func NewLineageResolver(source DeclarationSource, maxDepth int) *LineageResolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxLineageDepth
	}
	return &LineageResolver{source: source, maxDepth: maxDepth}
}

func (r *LineageResolver) ResolveByID(ctx context.Context, id string) (Timeline, error) {
	current, err := r.source.FindByID(ctx, id)
	if err != nil {
		return Timeline{}, err
	}
	return r.Resolve(ctx, current)
}

// Resolve builds the timeline of the provided declaration.
// The ancestor walk never fails: a missing parent, a failing fetch, a cycle or
// reaching the max depth ends the walk and marks the timeline as truncated.
// Derivatives are only resolved one level deep. Failing to fetch them is an error.
func (r *LineageResolver) Resolve(ctx context.Context, current models.Declaration) (Timeline, error) {
	var (
		ancestors []models.Declaration
		reason    TruncationReason
		children  []models.Declaration
	)

	// the ancestor walk and the children lookup do not depend on each other
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		ancestors, reason = r.walkAncestors(groupCtx, current)
		return nil
	})
	group.Go(func() error {
		var err error
		children, err = r.source.FindChildren(groupCtx, current.ID)
		if err != nil {
			return fmt.Errorf("could not fetch derivatives of declaration %s: %w", current.ID, err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return Timeline{}, err
	}

	inTimeline := make(map[string]struct{}, len(ancestors)+1)
	inTimeline[current.ID] = struct{}{}

	nodes := make([]LineageNode, 0, len(ancestors)+1+len(children))
	for _, a := range ancestors {
		inTimeline[a.ID] = struct{}{}
		nodes = append(nodes, newLineageNode(a, PositionAncestor))
	}
	nodes = append(nodes, newLineageNode(current, PositionCurrent))

	slices.SortStableFunc(children, func(a, b models.Declaration) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	for _, c := range children {
		// corrupted data might list an ancestor as a child as well
		if _, ok := inTimeline[c.ID]; ok {
			continue
		}
		inTimeline[c.ID] = struct{}{}
		nodes = append(nodes, newLineageNode(c, PositionDerivative))
	}

	return Timeline{
		Nodes:            nodes,
		Truncated:        reason != "",
		TruncationReason: reason,
	}, nil
}

// walkAncestors follows the parent pointers upwards. The returned chain is ordered oldest first.
func (r *LineageResolver) walkAncestors(ctx context.Context, current models.Declaration) ([]models.Declaration, TruncationReason) {
	chain := make([]models.Declaration, 0)
	visited := map[string]struct{}{current.ID: {}}

	var reason TruncationReason
	parentID := current.ParentDeclarationID
	for parentID != nil && *parentID != "" {
		if len(chain) >= r.maxDepth {
			reason = TruncatedMaxDepth
			break
		}
		if _, ok := visited[*parentID]; ok {
			reason = TruncatedCycle
			break
		}
		visited[*parentID] = struct{}{}

		parent, err := r.source.FindByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, ErrDeclarationNotFound) {
				reason = TruncatedMissingParent
			} else {
				slog.Warn("could not fetch parent declaration, stopping lineage walk", "declarationID", current.ID, "parentID", *parentID, "err", err)
				reason = TruncatedFetchFailed
			}
			break
		}

		chain = append(chain, parent)
		parentID = parent.ParentDeclarationID
	}

	if reason != "" && reason != TruncatedMissingParent {
		slog.Debug("lineage walk truncated", "declarationID", current.ID, "reason", reason, "depth", len(chain))
	}

	slices.Reverse(chain)
	return chain, reason
}
