// Package token issues access tokens for API clients and operators.
package token

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"art/internal/infrastructure/auth"
	"art/internal/interfaces/cli/bootstrap"
	"art/internal/shared/constants"
)

var (
	env        string
	configPath string
	userID     uint
	email      string
	role       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token",
		Long: `Issue a signed access token for the given user id, e-mail and role.
Identity is managed outside ART; this command signs tokens with the
configured secret for operators and service clients.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().UintVar(&userID, "user-id", 0, "User id claim (required)")
	cmd.Flags().StringVar(&email, "email", "", "E-mail claim")
	cmd.Flags().StringVar(&role, "role", constants.RoleUser, "Role claim (admin or user)")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	role = strings.ToLower(strings.TrimSpace(role))
	if role != constants.RoleAdmin && role != constants.RoleUser {
		return fmt.Errorf("invalid role %q (want %s or %s)", role, constants.RoleAdmin, constants.RoleUser)
	}
	if userID == 0 {
		return fmt.Errorf("user-id must be positive")
	}

	app, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}

	jwtSvc := auth.NewJWTService(app.Config.Auth.JWT.Secret, app.Config.Auth.JWT.AccessExpMinutes)
	token, expiresAt, err := jwtSvc.Generate(userID, email, role)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, token)
	fmt.Fprintf(out, "# expires %s\n", expiresAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	return nil
}
