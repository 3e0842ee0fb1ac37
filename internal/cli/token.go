package cli

import (
	"errors"
	"fmt"
	"time"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/infrastructure/auth"

	"github.com/spf13/cobra"
)

// TokenCmd mints a bearer token signed with JWT_SECRET.
func TokenCmd() *cobra.Command {
	var (
		userID string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := entities.ParseRole(role)
			if !ok {
				return fmt.Errorf("unknown role %q (client, worker, admin)", role)
			}
			if userID == "" {
				return errors.New("--user is required")
			}

			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.Auth.TokenTTL
			}

			token, err := auth.GenerateToken(entities.Session{UserID: userID, Role: r}, []byte(cfg.Auth.JWTSecret), ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id carried in the token")
	cmd.Flags().StringVar(&role, "role", "client", "client | worker | admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to JWT_TTL)")

	return cmd
}
