package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/biztrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/biztrack-backend/migrations"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			return postgres.Migrate(cmd.Context(), e.logger, e.pool, migrations.FS)
		},
	}
}
