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
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/o8-protocol/arch/database"
	"github.com/o8-protocol/arch/database/repositories"
	"github.com/o8-protocol/arch/dtos"
	"github.com/o8-protocol/arch/services"
	"github.com/o8-protocol/arch/shared"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func NewRescoreCommand() *cobra.Command {
	rescoreCmd := &cobra.Command{
		Use:   "rescore",
		Short: "List declarations with an outdated cached score and optionally rewrite the cache",
		Long: `Scans all declarations and compares the cached transparency score and badges
with the current formulas. Without --apply nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apply, err := cmd.Flags().GetBool("apply")
			if err != nil {
				return err
			}

			db, pool, err := database.NewConnectionFromEnv()
			if err != nil {
				return errors.Wrap(err, "could not connect to database")
			}
			if pool != nil {
				defer pool.Close()
			}

			declarationService := newDeclarationService(db)
			return rescore(cmd.Context(), cmd, declarationService, apply)
		},
	}

	rescoreCmd.Flags().Bool("apply", false, "Rewrite the cached score and badges of every stale declaration")
	return rescoreCmd
}

func newDeclarationService(db shared.DB) shared.DeclarationService {
	declarationRepository := repositories.NewDeclarationRepository(db)
	return services.NewDeclarationService(declarationRepository, services.NewLineageResolverFromEnv(declarationRepository))
}

func rescore(ctx context.Context, cmd *cobra.Command, declarationService shared.DeclarationService, apply bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	stale, err := declarationService.FindStale(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(stale) == 0 {
		fmt.Fprintln(out, "All cached scores are up to date") // nolint: errcheck
		return nil
	}

	printStale(cmd, stale)
	if !apply {
		fmt.Fprintf(out, "%d stale declarations. Run with --apply to rewrite the cache\n", len(stale)) // nolint: errcheck
		return nil
	}

	bar := progressbar.Default(int64(len(stale)))
	failed := 0
	for _, s := range stale {
		if err := declarationService.Rescore(ctx, s.ID); err != nil {
			slog.Error("could not rescore declaration", "declarationID", s.ID, "err", err)
			failed++
		}
		bar.Add(1) // nolint
	}

	if failed > 0 {
		return fmt.Errorf("could not rescore %d of %d declarations", failed, len(stale))
	}
	slog.Info("rescored declarations", "count", len(stale))
	return nil
}

func printStale(cmd *cobra.Command, stale []dtos.StaleDeclaration) {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"ID", "Title", "Cached score", "Score", "Cached badges", "Badges"})
	for _, s := range stale {
		tw.AppendRow(table.Row{s.ID, titleOrUntitled(s.Title), s.CachedScore, s.TransparencyScore, s.CachedBadge, s.Badge})
	}
	tw.Render()
}
