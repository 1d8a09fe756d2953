// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Formkeeper using the Cobra
// library. The CLI is the thin consumer of the core: it collects field values
// and renders results, while validation, persistence and searching live in
// the internal packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amirdzh/formkeeper/internal/config"
	"github.com/amirdzh/formkeeper/internal/db"
	"github.com/amirdzh/formkeeper/internal/i18n"
	"github.com/amirdzh/formkeeper/internal/logging"
)

var version = "dev" // this will be set by the linker

// appConfig is the loaded configuration, populated by PersistentPreRunE
// before any subcommand runs.
var appConfig config.Config

// main is the entry point of the application.
func main() {
	if err := rootCmd.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

var rootCmd = newRootCmd()

// setupDefaultServices loads the configuration and initializes i18n, logging
// and the database. It runs once per invocation, for every subcommand.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Post-process config to ensure critical values are not empty, falling
	// back to defaults when the user's config file leaves them blank.
	defaults := config.Defaults()
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}

	// First run: persist a default config file so subsequent runs have a
	// file to inspect and edit.
	if optionalConfigPath == nil {
		if path, err := config.DefaultConfigPath(); err == nil {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
					// The app runs fine on defaults; don't fail startup.
					logging.Warnf("could not write default config file: %v", writeErr)
				}
			}
		}
	}

	i18n.Init(appConfig.Language)
	logging.SetDebug(appConfig.Debug)
	db.SetDebug(appConfig.Debug)

	if !db.IsInitialized() {
		if err := db.InitDB(appConfig.Database.Type, appConfig.Database.Dsn); err != nil {
			return fmt.Errorf("%s: %w", i18n.T("config.error_init_db"), err)
		}
	}
	return nil
}

// getConfigPathFromCli returns the --config value when the user explicitly
// set it, after checking the file actually exists.
func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// newRootCmd creates and configures a new root cobra command. Fresh
// instances are also used for isolated testing.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formkeeper",
		Short: "Formkeeper is a local record keeper for computer service contracts.",
		Long: `Formkeeper stores service contract forms in a local database:
who brought in which device, what is wrong with it, and who services it.
Records can be searched, filtered, favorited and exported. A single
database file is the source of truth.`,
		PersistentPreRunE: setupDefaultServices,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(registerCmd)
	cmd.AddCommand(loginCmd)
	cmd.AddCommand(addCmd)
	cmd.AddCommand(listCmd)
	cmd.AddCommand(searchCmd)
	cmd.AddCommand(favoriteCmd)
	cmd.AddCommand(deleteCmd)
	cmd.AddCommand(exportCmd)
	cmd.AddCommand(copyCmd)

	cmd.Version = version

	// Flag names match the config keys so LoadConfig's BindPFlags picks
	// them up without a mapping layer.
	cmd.PersistentFlags().String("config", "", "config file (default is the user config dir or ./formkeeper.yaml)")
	cmd.PersistentFlags().String("database.type", "sqlite", "Database type (sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("database.dsn", "./formkeeper.db", "Database connection string (DSN)")
	cmd.PersistentFlags().String("language", "en", `Message language ("en", "fa")`)
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	return cmd
}
