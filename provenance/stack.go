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

// Package provenance derives everything that is computed from a declaration:
// the transparency score, the process badges, the lineage timeline and the
// exported metadata documents. All functions besides the lineage resolver are
// pure and operate on the stored declaration record only.
package provenance

import (
	"strings"

	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/utils"
)

// CreativeStack returns the distinct tools of a declaration. DAWs come first,
// then plugins, then AI models. Duplicates are detected case-insensitively,
// the first spelling wins.
func CreativeStack(d models.Declaration) []string {
	all := make([]string, 0)
	all = append(all, utils.SplitCommaList(d.DAWs)...)
	all = append(all, utils.SplitCommaList(d.Plugins)...)
	all = append(all, utils.SplitCommaList(d.AIModels)...)

	return utils.DeduplicateSlice(all, strings.ToLower)
}

func ToolCount(d models.Declaration) int {
	return len(CreativeStack(d))
}

// AverageAI is the unweighted mean of the five production phases.
// Phases which were not disclosed count as 0.
func AverageAI(d models.Declaration) float64 {
	sum := 0
	phases := d.Phases()
	for _, p := range phases {
		if p != nil {
			sum += *p
		}
	}
	return float64(sum) / float64(len(phases))
}
