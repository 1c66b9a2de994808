package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdante/import-service/internal/database"
)

// migrateCmd creates the tables the importer writes to
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the product, blog post and settings tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := initDatabase(ctx); err != nil {
			return fmt.Errorf("database initialization failed: %w", err)
		}
		defer database.Close()

		if err := database.EnsureSchema(ctx, database.Pool()); err != nil {
			return err
		}
		logger.Info().Msg("Schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
