package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/kb-summarizer/internal/application"
	"github.com/bnema/kb-summarizer/internal/config"
	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/spf13/cobra"
)

type summarizeOptions struct {
	kind     string
	sink     string
	outDir   string
	noCache  bool
	progress bool
}

func bindSummarizeFlags(cmd *cobra.Command, opts *summarizeOptions) {
	cmd.Flags().StringVar(&opts.kind, "kind", string(domain.SubjectKindAuto), "Subject kind: auto, url or topic")
	cmd.Flags().StringVar(&opts.sink, "sink", string(config.SinkNotion), "Output sink: notion or file")
	cmd.Flags().StringVar(&opts.outDir, "out", "", "Output directory for the file sink (default output.dir)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "Ignore cached summaries and generate a fresh one")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "Show a spinner while the summary is produced")
}

// summarizeArgs prints the usage to stderr on wrong arity; SilenceUsage hides it otherwise.
func summarizeArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return err
	}

	return nil
}

func runSummarize(cmd *cobra.Command, app *app, opts summarizeOptions, profileName, subject string) error {
	kind, err := domain.ParseSubjectKind(opts.kind)
	if err != nil {
		return err
	}
	sinkKind, err := config.ParseSinkKind(opts.sink)
	if err != nil {
		return err
	}

	cfg := app.cfg
	if opts.outDir != "" {
		cfg.OutputDir = opts.outDir
	}

	subject = strings.TrimSpace(subject)
	resolved := kind.Resolve(subject)
	if err := cfg.Validate(config.Requirements{Kind: resolved, Sink: sinkKind, Summarizer: true}); err != nil {
		return err
	}

	store, err := app.credentialStore()
	if err != nil {
		return err
	}
	if err := cfg.ResolveCredentials(cmd.Context(), store); err != nil {
		return err
	}
	app.cfg = cfg

	service, err := app.pipeline(cmd.Context(), resolved)
	if err != nil {
		return err
	}

	req := application.Request{
		ProfileName: domain.ProfileName(profileName),
		Subject:     subject,
		Kind:        resolved,
		Sink:        app.sink(sinkKind),
		SkipCache:   opts.noCache,
	}

	var outcome application.Outcome
	process := func(ctx context.Context) error {
		var err error
		outcome, err = service.Process(ctx, req)
		return err
	}

	if opts.progress {
		err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Summarizing "+subject+"...", process)
	} else {
		err = process(cmd.Context())
	}
	if err != nil {
		return err
	}

	cacheState := "miss"
	if outcome.CacheHit {
		cacheState = "hit"
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "title: %s\n", outcome.Summary.DisplayTitle())
	_, _ = fmt.Fprintf(out, "location: %s\n", outcome.Receipt.Location)
	_, _ = fmt.Fprintf(out, "cache: %s\n", cacheState)
	_, _ = fmt.Fprintf(out, "fingerprint: %s\n", outcome.Fingerprint)

	return nil
}
