package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage reader profiles",
	}

	cmd.AddCommand(
		newProfileListCmd(app),
		newProfileSetCmd(app),
	)

	return cmd
}

func newProfileListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reader profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.profiles.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, profile := range profiles {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", profile.Name, profile.Role)
			}

			return nil
		},
	}
}

func newProfileSetCmd(app *app) *cobra.Command {
	var name, role, description string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or replace a reader profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile := domain.Profile{
				Name:        domain.ProfileName(strings.TrimSpace(name)),
				Role:        strings.TrimSpace(role),
				Description: strings.TrimSpace(description),
			}
			if err := app.profiles.Save(cmd.Context(), profile); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %s to %s\n", profile.Name, app.profiles.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Profile name")
	cmd.Flags().StringVar(&role, "role", "", "Reader role")
	cmd.Flags().StringVar(&description, "description", "", "Free text describing the reader's work and skills")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
