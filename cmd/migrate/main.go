// Command migrate applies the embedded schema to the configured database.
package main

import (
	"fmt"
	"os"

	"news-quiz/internal/config"
	"news-quiz/internal/database"
	"news-quiz/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var driverOverride string

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Manage the news-quiz database schema",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m database.Migrator, driver string) error {
			if err := m.Up(); err != nil {
				return err
			}
			return printVersion(cmd, m, driver)
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every applied migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m database.Migrator, driver string) error {
			if err := m.Down(); err != nil {
				return err
			}
			logger.Get().Info("Schema rolled back", zap.String("driver", driver))
			return nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m database.Migrator, driver string) error {
			return printVersion(cmd, m, driver)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driverOverride, "driver", "", "database driver (oracle or sqlite); defaults to db.driver")
	rootCmd.AddCommand(upCmd, downCmd, versionCmd)
}

func withMigrator(fn func(m database.Migrator, driver string) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if driverOverride != "" {
		cfg.DB.Driver = driverOverride
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	m, err := database.NewMigrator(db.DB, cfg.DB.Driver)
	if err != nil {
		return err
	}
	return fn(m, cfg.DB.Driver)
}

func printVersion(cmd *cobra.Command, m database.Migrator, driver string) error {
	v, err := m.Version()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s schema version: %d\n", driver, v)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
