/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"github.com/zengarden/apiserver/config"
	"github.com/zengarden/apiserver/internal/db"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		conn, err := db.Connect(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("open database failed: %w", err)
		}
		defer conn.Close()

		migrator, err := db.NewMigrator(conn)
		if err != nil {
			return fmt.Errorf("init migrator failed: %w", err)
		}

		if err := migrator.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				return nil
			}
			return fmt.Errorf("migrate up failed: %w", err)
		}
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		conn, err := db.Connect(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("open database failed: %w", err)
		}
		defer conn.Close()

		migrator, err := db.NewMigrator(conn)
		if err != nil {
			return fmt.Errorf("init migrator failed: %w", err)
		}

		if err := migrator.Steps(-1); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				return nil
			}
			return fmt.Errorf("migrate down failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}
