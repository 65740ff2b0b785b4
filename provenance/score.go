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
	"math"
	"strings"
	"unicode/utf8"

	"github.com/o8-protocol/arch/database/models"
)

const (
	MaxScore = 100

	baseScore = 30

	pointsPerPhase = 4

	methodologyMaxPoints  = 15
	methodologyFullLength = 200

	pointsPerTool  = 3
	stackMaxPoints = 15

	cidPoints  = 5
	hashPoints = 5

	collaborationPoints = 10
)

type ScoreBreakdown struct {
	Base          int
	Phases        int
	Methodology   int
	Stack         int
	Provenance    int
	Collaboration int
	Total         int
}

// Score computes the completeness based transparency score of a declaration.
// The score rewards disclosure, not the absence of AI: disclosing 0% AI for a
// phase earns the same points as disclosing 80%.
func Score(d models.Declaration) int {
	return CalculateScoreBreakdown(d).Total
}

func CalculateScoreBreakdown(d models.Declaration) ScoreBreakdown {
	b := ScoreBreakdown{
		Base:        baseScore,
		Methodology: methodologyPoints(d.Methodology),
		Stack:       min(ToolCount(d)*pointsPerTool, stackMaxPoints),
	}

	for _, phase := range d.Phases() {
		if phase != nil {
			b.Phases += pointsPerPhase
		}
	}

	if hasCID(d) {
		b.Provenance += cidPoints
	}
	if hasHash(d) {
		b.Provenance += hashPoints
	}

	if len(d.Contributors) > 0 {
		b.Collaboration = collaborationPoints
	}

	sum := b.Base + b.Phases + b.Methodology + b.Stack + b.Provenance + b.Collaboration
	b.Total = max(0, min(sum, MaxScore))
	return b
}

func methodologyLength(methodology *string) int {
	if methodology == nil {
		return 0
	}
	return utf8.RuneCountInString(*methodology)
}

func methodologyPoints(methodology *string) int {
	ratio := math.Min(float64(methodologyLength(methodology))/methodologyFullLength, 1)
	return int(math.Round(ratio * methodologyMaxPoints))
}

func hasCID(d models.Declaration) bool {
	return strings.TrimSpace(d.IPFSCID) != ""
}

func hasHash(d models.Declaration) bool {
	return strings.TrimSpace(d.SHA256) != ""
}
