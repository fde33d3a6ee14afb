package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/biztrack-backend/internal/app"
	"github.com/heartmarshall/biztrack-backend/internal/domain"
)

func newDigestCmd() *cobra.Command {
	var at, date string

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Run one digest tick for a reminder time",
		Long: "Sends the agenda to every active user whose reminder time equals --at,\n" +
			"exactly as the server's minute tick would. Delivery claims still apply.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !domain.IsValidClock(at) {
				return fmt.Errorf("--at must be HH:MM, got %q", at)
			}

			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			loc := e.cfg.Digest.Location()
			day, err := domain.ParseDate(date)
			if date == "" {
				day, err = domain.DateOf(time.Now().In(loc)), nil
			}
			if err != nil {
				return err
			}
			clock, _ := time.Parse(domain.ClockLayout, at)
			now := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)

			job, client, err := app.NewDigestJob(cmd.Context(), e.cfg, e.logger, app.NewServices(e.cfg, e.logger, e.pool))
			if err != nil {
				return err
			}
			if client != nil {
				defer client.Close()
			}

			report, err := job.RunOnce(cmd.Context(), now)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: matched %d, delivered %d, skipped %d, failed %d\n",
				domain.FormatDate(report.Date), report.Clock,
				report.Matched, report.Delivered, report.Skipped, report.Failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "reminder time HH:MM (required)")
	cmd.Flags().StringVar(&date, "date", "", "agenda date YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}
