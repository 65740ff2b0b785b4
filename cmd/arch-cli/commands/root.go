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
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/o8-protocol/arch/config"
	"github.com/o8-protocol/arch/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultConfigFilename = "arch"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "arch-cli",
	Short: "Management cli",
	Long: `The arch cli scores declaration files and maintains the declaration database.
Flags can also be set in an arch.yaml config file or with environment variables (prefix ARCH_).`,
	Example: `  # Print the score breakdown of a declaration file
  arch-cli score declaration.json

  # List declarations whose cached score is outdated and rewrite the cache
  arch-cli rescore --apply`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		shared.LoadConfig() // nolint: errcheck

		if err := initializeConfig(cmd); err != nil {
			return err
		}

		switch viper.GetString("logLevel") {
		case "debug":
			initLogger(slog.LevelDebug)
		case "warn":
			initLogger(slog.LevelWarn)
		case "error":
			initLogger(slog.LevelError)
		default:
			initLogger(slog.LevelInfo)
		}

		applyDatabaseConfig()
		return nil
	},
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is ./arch.yaml)")
	rootCmd.PersistentFlags().StringP("logLevel", "l", "info", "Set the log level. Options: debug, info, warn, error")
	rootCmd.PersistentFlags().String("dbDriver", "", "Database driver, postgres or sqlite. Overrides DB_DRIVER")
	rootCmd.PersistentFlags().String("sqlitePath", "", "Path of the sqlite database. Overrides SQLITE_PATH")
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ARCH CLI\n")
			fmt.Printf("Version:    %s\n", config.Version)
			fmt.Printf("Commit:     %s\n", config.Commit)
			fmt.Printf("Built:      %s\n", config.BuildDate)
		},
	}
}

// tint is a simple logging library that allows to add colors to the log output.
func initLogger(level slog.Leveler) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	))
}

// the database layer is configured through the environment
func applyDatabaseConfig() {
	if driver := viper.GetString("dbDriver"); driver != "" {
		os.Setenv("DB_DRIVER", driver) // nolint: errcheck
	}
	if path := viper.GetString("sqlitePath"); path != "" {
		os.Setenv("SQLITE_PATH", path) // nolint: errcheck
	}
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(defaultConfigFilename)
	}

	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/arch/")
	// a missing config file is fine, a broken one is not
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		slog.Debug("no config file found")
	}

	viper.SetEnvPrefix("ARCH")
	// Environment variables can't have dashes in them
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	bindFlags(cmd)
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		configName := f.Name

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)) // nolint: errcheck
		}

		if err := viper.BindPFlag(configName, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}
