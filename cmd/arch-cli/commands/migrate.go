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
	"fmt"
	"log/slog"

	"github.com/o8-protocol/arch/database"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Apply all pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, pool, err := database.NewConnectionFromEnv()
			if err != nil {
				return errors.Wrap(err, "could not connect to database")
			}
			if pool != nil {
				defer pool.Close()
			}

			if err := database.RunMigrationsWithDB(db); err != nil {
				return err
			}

			if db.Dialector.Name() == "sqlite" {
				slog.Info("sqlite schema migrated")
				return nil
			}

			version, dirty, err := database.GetMigrationVersionWithDB(db)
			if err != nil {
				return errors.Wrap(err, "could not read migration version")
			}
			slog.Info("database migrated", "driver", db.Dialector.Name(), "version", version, "dirty", dirty)
			fmt.Fprintf(cmd.OutOrStdout(), "database is at migration version %d\n", version) // nolint: errcheck
			return nil
		},
	}

	return &migrate
}
