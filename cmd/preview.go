package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/kb-summarizer/internal/adapters/render/preview"
	"github.com/bnema/kb-summarizer/internal/adapters/summarizer"
	"github.com/bnema/kb-summarizer/internal/blocktree"
	"github.com/spf13/cobra"
)

func newPreviewCmd(app *app) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "preview <file.json|fingerprint>",
		Short: "Render a cached summary as a block outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePreviewPath(app, args[0])
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read summary file: %w", err)
			}

			summary, err := summarizer.Decode(string(raw))
			if err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}

			blocks, err := blocktree.Render(summary)
			if err != nil {
				return err
			}

			output, err := app.previewRenderer(summary, blocks, preview.RenderOptions{MaxTextWidth: width})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Truncate long text to this many characters (negative disables)")

	return cmd
}

// resolvePreviewPath accepts a file path or a fingerprint of an entry in the cache.
func resolvePreviewPath(app *app, arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	cached := filepath.Join(app.cache().Root(), arg+".json")
	if _, err := os.Stat(cached); err == nil {
		return cached, nil
	}

	return "", fmt.Errorf("no summary file or cache entry named %q: %w", arg, os.ErrNotExist)
}
