package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/biztrack-backend/internal/app"
)

func newSeedCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo user with sample tasks, follow-ups and an org root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			seeder := app.NewSeeder(e.logger, app.NewServices(e.cfg, e.logger, e.pool))
			today := time.Now().In(e.cfg.Digest.Location())

			report, err := seeder.Seed(cmd.Context(), email, password, today)
			if errors.Is(err, app.ErrAlreadySeeded) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, nothing to do\n", email)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s (%s): %d tasks, %d follow-ups, org root %s\n",
				report.User.Email, report.User.ID, report.Tasks, report.FollowUps, report.OrgRoot.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "john.doe@biztrack.com", "demo user email")
	cmd.Flags().StringVar(&password, "password", "password123", "demo user password")
	return cmd
}
