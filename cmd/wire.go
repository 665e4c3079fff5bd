package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	filecache "github.com/bnema/kb-summarizer/internal/adapters/cache/file"
	"github.com/bnema/kb-summarizer/internal/adapters/content/web"
	"github.com/bnema/kb-summarizer/internal/adapters/credentials"
	"github.com/bnema/kb-summarizer/internal/adapters/notion"
	profilestoml "github.com/bnema/kb-summarizer/internal/adapters/profiles/toml"
	"github.com/bnema/kb-summarizer/internal/adapters/render/preview"
	"github.com/bnema/kb-summarizer/internal/adapters/search/tavily"
	"github.com/bnema/kb-summarizer/internal/adapters/sink/markdown"
	"github.com/bnema/kb-summarizer/internal/adapters/summarizer/gemini"
	"github.com/bnema/kb-summarizer/internal/adapters/summarizer/openai"
	"github.com/bnema/kb-summarizer/internal/application"
	"github.com/bnema/kb-summarizer/internal/config"
	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/bnema/kb-summarizer/internal/logging"
	"github.com/bnema/kb-summarizer/internal/ports"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	configFile string
	logLevel   string

	viper           *viper.Viper
	cfg             config.Config
	log             zerolog.Logger
	profiles        *profilestoml.Repository
	clock           ports.Clock
	previewRenderer func(domain.SummaryResult, []domain.Block, preview.RenderOptions) (string, error)
}

func newApp() *app {
	return &app{
		logLevel:        logging.DefaultLevel,
		log:             zerolog.Nop(),
		clock:           ports.SystemClock{},
		previewRenderer: preview.Render,
	}
}

// setup loads .env, the config file and the environment, then builds the logger and
// the profile repository. It runs before every command that needs configuration.
func (a *app) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	v, err := config.NewViper(a.configFile)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	log, err := logging.New(cmd.ErrOrStderr(), a.logLevel)
	if err != nil {
		return err
	}

	profiles, err := profilestoml.NewRepository(v)
	if err != nil {
		return fmt.Errorf("wire profile repository: %w", err)
	}

	a.viper = v
	a.cfg = config.Load(v)
	a.log = log
	a.profiles = profiles

	return nil
}

// credentialStore returns the store secret:// references resolve against.
func (a *app) credentialStore() (ports.CredentialStore, error) {
	switch a.cfg.Credentials.Backend {
	case config.CredentialsPass:
		return credentials.NewPassStore(), nil
	case config.CredentialsFile:
		return credentials.NewFileStore(a.cfg.Credentials.Dir), nil
	default:
		chain, err := credentials.NewPassFirst(a.cfg.Credentials.Dir)
		if err != nil {
			return nil, fmt.Errorf("wire credential store: %w", err)
		}
		return chain, nil
	}
}

func (a *app) cache() *filecache.Store {
	return filecache.NewStore(a.cfg.Cache.Dir, a.log, a.clock)
}

// pipeline builds a service holding only the adapters the subject kind needs.
func (a *app) pipeline(ctx context.Context, kind domain.SubjectKind) (*application.Service, error) {
	summarizer, err := a.summarizer(ctx)
	if err != nil {
		return nil, err
	}

	var fetcher ports.ContentFetcher
	var searcher ports.Searcher
	switch kind {
	case domain.SubjectKindURL:
		fetcher = web.NewFetcher(a.cfg.Content.MaxTokens, a.log)
	case domain.SubjectKindTopic:
		s := tavily.NewSearcher(a.cfg.Search.BaseURL, a.cfg.Search.APIKey)
		s.MaxResults = a.cfg.Search.MaxResults
		searcher = s
	}

	return application.NewService(a.profiles, a.cache(), fetcher, searcher, summarizer, a.log), nil
}

func (a *app) summarizer(ctx context.Context) (ports.Summarizer, error) {
	cfg := a.cfg.Summarizer
	switch cfg.Provider {
	case config.ProviderGemini:
		s, err := gemini.New(ctx, gemini.Config{APIKey: cfg.GeminiAPIKey, Model: cfg.Model}, a.log)
		if err != nil {
			return nil, fmt.Errorf("wire gemini summarizer: %w", err)
		}
		return s, nil
	default:
		s, err := openai.New(openai.Config{APIKey: cfg.OpenAIKey, BaseURL: cfg.OpenAIBase, Model: cfg.Model}, a.log)
		if err != nil {
			return nil, fmt.Errorf("wire openai summarizer: %w", err)
		}
		return s, nil
	}
}

func (a *app) sink(kind config.SinkKind) ports.Sink {
	switch kind {
	case config.SinkFile:
		return markdown.NewSink(a.cfg.OutputDir, a.clock, a.log)
	default:
		store := notion.NewClient(a.cfg.Notion.BaseURL, a.cfg.Notion.Token, a.cfg.Notion.Version)
		return application.NewPublisher(store, application.PublisherConfig{
			RootPageID:    a.cfg.Notion.NormalizedPageID(),
			SourcesTitle:  a.cfg.Notion.SourcesTitle,
			DatabaseTitle: a.cfg.Notion.DatabaseTitle,
		}, a.log)
	}
}
