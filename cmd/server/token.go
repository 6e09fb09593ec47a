package main

import (
	"fmt"
	"strings"

	"talent-match/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// tokenCmd issues access tokens for local development. Production tokens come
// from the identity service that shares jwt.access_secret.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a development access token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if strings.EqualFold(cfg.App.Environment, "production") {
			return fmt.Errorf("token issuing is disabled in production")
		}

		rawUser, _ := cmd.Flags().GetString("user")
		role, _ := cmd.Flags().GetString("role")
		rawCompany, _ := cmd.Flags().GetString("company")

		if !jwt.ValidRole(role) {
			return fmt.Errorf("unknown role %q", role)
		}
		userID, err := uuid.Parse(strings.TrimSpace(rawUser))
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
		var companyID *uuid.UUID
		if strings.TrimSpace(rawCompany) != "" {
			id, err := uuid.Parse(strings.TrimSpace(rawCompany))
			if err != nil {
				return fmt.Errorf("invalid --company: %w", err)
			}
			companyID = &id
		}

		svc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
		tok, err := svc.GenerateAccessToken(userID, role, companyID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("user", "", "user id (uuid)")
	tokenCmd.Flags().String("role", jwt.RoleJobSeeker, "job_seeker, company, omil or admin")
	tokenCmd.Flags().String("company", "", "company id, required for the company role")
	_ = tokenCmd.MarkFlagRequired("user")
}
