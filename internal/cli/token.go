package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dishlist/backend/pkg/jwt"
)

// NewTokenCommand creates the token command, which signs a bearer token for
// local development in place of the login service.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		userID uint
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:          "token",
		Short:        "Sign a bearer token for a user",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := rootOpts.load()
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET must be set")
			}
			if userID == 0 {
				return errors.New("--user is required")
			}
			if ttl == 0 {
				ttl = cfg.JWTTTL
			}

			token, err := jwt.GenerateToken(userID, cfg.JWTSecret, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().UintVar(&userID, "user", 0, "user id to put in the token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to JWT_TTL)")
	return cmd
}
