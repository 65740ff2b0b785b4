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

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/dtos"
	"github.com/o8-protocol/arch/provenance"
	"github.com/o8-protocol/arch/shared"
	"github.com/o8-protocol/arch/transformer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewScoreCommand() *cobra.Command {
	scoreCmd := &cobra.Command{
		Use:   "score <file.json>",
		Short: "Print the transparency score breakdown of a declaration file",
		Long: `Reads either a declaration create request or a public export document and
prints the score breakdown, the earned badges and the minting eligibility.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			document, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "could not read declaration file")
			}

			declaration, err := parseDeclarationDocument(document)
			if err != nil {
				return err
			}

			printScore(cmd.OutOrStdout(), declaration)
			return nil
		},
	}

	return scoreCmd
}

// parseDeclarationDocument accepts a public export (detected by its $schema key)
// or a create request body.
func parseDeclarationDocument(document []byte) (models.Declaration, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(document, &probe); err != nil {
		return models.Declaration{}, errors.Wrap(err, "declaration file is not a json object")
	}

	if _, ok := probe["$schema"]; ok {
		if err := provenance.ValidatePublicExport(document); err != nil {
			return models.Declaration{}, errors.Wrap(err, "invalid export document")
		}
		var export dtos.PublicExport
		if err := json.Unmarshal(document, &export); err != nil {
			return models.Declaration{}, errors.Wrap(err, "could not decode export document")
		}
		return provenance.FromPublicExport(export), nil
	}

	var req dtos.DeclarationCreateRequest
	if err := json.Unmarshal(document, &req); err != nil {
		return models.Declaration{}, errors.Wrap(err, "could not decode declaration")
	}
	if err := shared.V.Struct(req); err != nil {
		return models.Declaration{}, errors.Wrap(err, "invalid declaration")
	}
	return transformer.DeclarationCreateRequestToModel(req), nil
}

func printScore(w io.Writer, d models.Declaration) {
	breakdown := provenance.CalculateScoreBreakdown(d)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(fmt.Sprintf("%s by %s", titleOrUntitled(d.Title), d.ArtistName))
	tw.AppendHeader(table.Row{"Component", "Points"})
	tw.AppendRows([]table.Row{
		{"Base", breakdown.Base},
		{"Phases disclosed", breakdown.Phases},
		{"Methodology", breakdown.Methodology},
		{"Creative stack", breakdown.Stack},
		{"Provenance", breakdown.Provenance},
		{"Collaboration", breakdown.Collaboration},
	})
	tw.AppendFooter(table.Row{"Total", breakdown.Total})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	tw.Render()

	badges := provenance.DeriveBadges(d)
	names := make([]string, 0, len(badges))
	for _, badge := range provenance.BadgesOf(badges) {
		names = append(names, badge.Label)
	}
	if len(names) == 0 {
		names = append(names, "none")
	}

	fmt.Fprintf(w, "Badges:  %s\n", strings.Join(names, ", "))                // nolint: errcheck
	fmt.Fprintf(w, "Rarity:  %s\n", provenance.RarityTierOf(breakdown.Total)) // nolint: errcheck
	if breakdown.Total >= provenance.MintingScoreThreshold {
		fmt.Fprintln(w, text.FgGreen.Sprint("Eligible for minting")) // nolint: errcheck
	} else {
		fmt.Fprintln(w, text.FgRed.Sprintf("Not eligible for minting (requires %d)", provenance.MintingScoreThreshold)) // nolint: errcheck
	}
}

func titleOrUntitled(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Untitled"
	}
	return title
}
