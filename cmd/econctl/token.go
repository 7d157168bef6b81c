package main

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/authenticating"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an admin token for the cron endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			token, err := authenticating.NewService(cfg, clockwork.NewRealClock()).IssueToken(subject, domain.RoleAdmin, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "econctl", "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime, AUTH_TOKEN_TTL when zero")
	return cmd
}
