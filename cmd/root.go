package cmd

import (
	"github.com/bnema/kb-summarizer/internal/logging"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := newApp()
	opts := &summarizeOptions{}

	rootCmd := &cobra.Command{
		Use:   "kbs <profile> <subject>",
		Short: "Knowledge-base summarizer (kbs): summarize a page or topic into your knowledge base",
		Long: "kbs fetches a web page (or searches a topic), asks a language model for a structured summary " +
			"tailored to a reader profile, caches it by fingerprint and publishes it to a Notion workspace " +
			"or to a local markdown file.",
		Example: "  kbs work https://go.dev/blog/intro-generics\n" +
			"  kbs work \"rust async runtimes\" --kind topic --sink file --out ./notes",
		Args:          summarizeArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd, app, *opts, args[0], args[1])
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/kbs/config.toml)")
	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", logging.DefaultLevel, "Log level (trace, debug, info, warn, error)")
	bindSummarizeFlags(rootCmd, opts)

	rootCmd.AddCommand(
		newVersionCmd(),
		newProfileCmd(app),
		newCacheCmd(app),
		newPreviewCmd(app),
		newCredentialCmd(app),
	)

	return rootCmd
}
