package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spiritatlas/entwine/internal/export"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run pending database migrations",
		Long:  `Bring the database schema up to the current version. Safe to run repeatedly; already-applied migrations are skipped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// initStorage runs migrations as part of opening the database.
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			defer store.Close()

			fmt.Println(export.FormatSuccess("Database schema is up to date"))
			return nil
		},
	}
}
