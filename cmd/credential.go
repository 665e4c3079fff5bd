package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/kb-summarizer/internal/config"
	"github.com/spf13/cobra"
)

func newCredentialCmd(app *app) *cobra.Command {
	credentialCmd := &cobra.Command{
		Use:   "credential",
		Short: "Store API tokens referenced as secret://<key> in the config",
	}

	credentialCmd.AddCommand(newCredentialSetCmd(app), newCredentialDeleteCmd(app))
	return credentialCmd
}

func newCredentialSetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:     "set <key>",
		Short:   "Store a credential, read from --value or stdin",
		Example: "  echo \"$NOTION_TOKEN\" | kbs credential set notion/token",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("value") {
				raw, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), 64<<10))
				if err != nil {
					return fmt.Errorf("read credential from stdin: %w", err)
				}
				value = string(raw)
			}
			value = strings.TrimSpace(value)
			if value == "" {
				return fmt.Errorf("credential %q: value is empty", args[0])
			}

			store, err := app.credentialStore()
			if err != nil {
				return err
			}
			if err := store.Put(cmd.Context(), args[0], value); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored credential %s; reference it as %s%s\n", args[0], config.CredentialPrefix, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Credential value (read from stdin when omitted)")
	return cmd
}

func newCredentialDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Remove a stored credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.credentialStore()
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted credential %s\n", args[0])
			return nil
		},
	}
}
