/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zengarden/apiserver/config"
	"github.com/zengarden/apiserver/internal/auth"
	"github.com/zengarden/apiserver/internal/db"
	"github.com/zengarden/apiserver/internal/store"
	"github.com/zengarden/apiserver/types"
)

const (
	defaultSeedUsername = "111"
	defaultSeedPassword = "111"
)

// seedCmd creates the database schema and a default user. Safe to run on
// every start.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Initialize the database and create the default user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		conn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("open database failed: %w", err)
		}
		defer conn.Close()

		authenticator, err := auth.New(cfg.Auth)
		if err != nil {
			return err
		}

		userRepo := store.NewUserRepository(conn)
		ctx := cmd.Context()

		if _, err := userRepo.GetByUsername(ctx, defaultSeedUsername); err == nil {
			fmt.Printf("default user %q already exists\n", defaultSeedUsername)
			return nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("check default user failed: %w", err)
		}

		hashed, err := authenticator.HashPassword(defaultSeedPassword)
		if err != nil {
			return err
		}

		if _, err := userRepo.Create(ctx, types.User{
			Username:     defaultSeedUsername,
			PasswordHash: hashed,
		}); err != nil {
			return fmt.Errorf("create default user failed: %w", err)
		}

		fmt.Printf("default user %q created successfully\n", defaultSeedUsername)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
