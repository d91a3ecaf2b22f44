package main

import (
	"errors"
	"fmt"
	"os"

	"hospital-management-api/cmd/bootstrap"
	"hospital-management-api/config"
	"hospital-management-api/internal/infrastructure/database"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital-api",
		Short: "Hospital management API with automatic appointment scheduling",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			app, err := bootstrap.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			return app.Run()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	withMigrator := func(fn func(m *database.Migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			bootstrap.SetupLogger(cfg.App.Env)

			m, err := database.NewMigrator(cfg.DB)
			if err != nil {
				return err
			}
			defer m.Close()
			return fn(m)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: withMigrator(func(m *database.Migrator) error {
			return m.Up()
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: withMigrator(func(m *database.Migrator) error {
			if err := m.Down(); err != nil {
				return err
			}
			fmt.Println("Rolled back one migration.")
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		RunE: withMigrator(func(m *database.Migrator) error {
			version, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Println("No migrations applied.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("Version %d (dirty=%t)\n", version, dirty)
			return nil
		}),
	})

	return cmd
}
