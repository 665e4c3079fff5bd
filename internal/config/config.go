// Package config loads settings from the config file, the environment and .env, and
// validates them before any adapter is built.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type SinkKind string

const (
	SinkNotion SinkKind = "notion"
	SinkFile   SinkKind = "file"
)

func ParseSinkKind(raw string) (SinkKind, error) {
	switch sink := SinkKind(strings.ToLower(strings.TrimSpace(raw))); sink {
	case "":
		return SinkNotion, nil
	case SinkNotion, SinkFile:
		return sink, nil
	default:
		return "", fmt.Errorf("%w: unsupported sink %q", domain.ErrInvalidConfig, raw)
	}
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultOpenAIModel = "gpt-4o"
	DefaultGeminiModel = "gemini-2.5-flash"
)

const (
	keyNotionToken         = "notion.token"
	keyNotionPageID        = "notion.page_id"
	keyNotionBaseURL       = "notion.base_url"
	keyNotionVersion       = "notion.version"
	keyNotionDatabaseTitle = "notion.database_title"
	keyNotionSourcesTitle  = "notion.sources_title"
	keySearchAPIKey        = "search.api_key"
	keySearchBaseURL       = "search.base_url"
	keySummarizerProvider  = "summarizer.provider"
	keySummarizerModel     = "summarizer.model"
	keyOpenAIAPIKey        = "openai.api_key"
	keyOpenAIBaseURL       = "openai.base_url"
	keyGeminiAPIKey        = "gemini.api_key"
	keyCacheDir            = "cache.dir"
	keyContentMaxTokens    = "content.max_tokens"
	keyOutputDir           = "output.dir"
	keyCredentialsBackend  = "credentials.backend"
	keyCredentialsDir      = "credentials.dir"
)

var envBindings = map[string]string{
	keyNotionToken:        "NOTION_TOKEN",
	keyNotionPageID:       "NOTION_PAGE_ID",
	keyNotionBaseURL:      "NOTION_BASE_URL",
	keySearchAPIKey:       "TAVILY_API_KEY",
	keySearchBaseURL:      "TAVILY_BASE_URL",
	keySummarizerProvider: "KBS_SUMMARIZER",
	keySummarizerModel:    "KBS_MODEL",
	keyOpenAIAPIKey:       "OPENAI_API_KEY",
	keyOpenAIBaseURL:      "OPENAI_BASE_URL",
	keyGeminiAPIKey:       "GOOGLE_API_KEY",
	keyCacheDir:           "KBS_CACHE_DIR",
	keyOutputDir:          "KBS_OUTPUT_DIR",
	keyCredentialsBackend: "KBS_CREDENTIALS",
	keyCredentialsDir:     "KBS_CREDENTIALS_DIR",
}

type Config struct {
	Notion      NotionConfig
	Search      SearchConfig
	Summarizer  SummarizerConfig
	Cache       CacheConfig
	Content     ContentConfig
	Credentials CredentialsConfig
	OutputDir   string
}

type NotionConfig struct {
	Token         string
	PageID        string
	BaseURL       string
	Version       string
	DatabaseTitle string
	SourcesTitle  string
}

type SearchConfig struct {
	APIKey     string
	BaseURL    string
	MaxResults int
}

type SummarizerConfig struct {
	Provider     string
	Model        string
	OpenAIKey    string
	OpenAIBase   string
	GeminiAPIKey string
}

type CacheConfig struct {
	Dir string
}

type ContentConfig struct {
	MaxTokens int
}

const (
	CredentialsAuto = "auto"
	CredentialsPass = "pass"
	CredentialsFile = "file"
)

// CredentialsConfig selects where secret:// references are looked up. Auto tries pass
// and falls back to Dir.
type CredentialsConfig struct {
	Backend string
	Dir     string
}

// NewViper returns a viper instance with defaults and env bindings applied and the
// config file read. configFile overrides discovery; a missing discovered file is fine.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		return v, nil
	}

	v.SetConfigName("config")
	v.SetConfigType("toml")
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "kbs"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyNotionBaseURL, "https://api.notion.com")
	v.SetDefault(keyNotionVersion, "2022-06-28")
	v.SetDefault(keyNotionDatabaseTitle, "KB Entries Database")
	v.SetDefault(keyNotionSourcesTitle, "Sources")
	v.SetDefault(keySearchBaseURL, "https://api.tavily.com")
	v.SetDefault(keySummarizerProvider, ProviderOpenAI)
	v.SetDefault(keyCacheDir, ".cache")
	v.SetDefault(keyContentMaxTokens, 12000)
	v.SetDefault(keyOutputDir, "summaries")
	v.SetDefault(keyCredentialsBackend, CredentialsAuto)
}

func Load(v *viper.Viper) Config {
	provider := strings.ToLower(strings.TrimSpace(v.GetString(keySummarizerProvider)))
	model := strings.TrimSpace(v.GetString(keySummarizerModel))
	if model == "" {
		switch provider {
		case ProviderGemini:
			model = DefaultGeminiModel
		default:
			model = DefaultOpenAIModel
		}
	}

	return Config{
		Notion: NotionConfig{
			Token:         strings.TrimSpace(v.GetString(keyNotionToken)),
			PageID:        strings.TrimSpace(v.GetString(keyNotionPageID)),
			BaseURL:       strings.TrimSpace(v.GetString(keyNotionBaseURL)),
			Version:       strings.TrimSpace(v.GetString(keyNotionVersion)),
			DatabaseTitle: v.GetString(keyNotionDatabaseTitle),
			SourcesTitle:  v.GetString(keyNotionSourcesTitle),
		},
		Search: SearchConfig{
			APIKey:     strings.TrimSpace(v.GetString(keySearchAPIKey)),
			BaseURL:    strings.TrimSpace(v.GetString(keySearchBaseURL)),
			MaxResults: 10,
		},
		Summarizer: SummarizerConfig{
			Provider:     provider,
			Model:        model,
			OpenAIKey:    strings.TrimSpace(v.GetString(keyOpenAIAPIKey)),
			OpenAIBase:   strings.TrimSpace(v.GetString(keyOpenAIBaseURL)),
			GeminiAPIKey: strings.TrimSpace(v.GetString(keyGeminiAPIKey)),
		},
		Cache:   CacheConfig{Dir: v.GetString(keyCacheDir)},
		Content: ContentConfig{MaxTokens: v.GetInt(keyContentMaxTokens)},
		Credentials: CredentialsConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString(keyCredentialsBackend))),
			Dir:     credentialsDir(v.GetString(keyCredentialsDir)),
		},
		OutputDir: v.GetString(keyOutputDir),
	}
}

// Requirements describes what a run is about to use, so only the credentials it needs
// are demanded.
type Requirements struct {
	Kind       domain.SubjectKind
	Sink       SinkKind
	Summarizer bool
}

// Validate reports every missing or malformed key at once.
func (c Config) Validate(req Requirements) error {
	var errs []error

	if req.Sink == SinkNotion {
		if c.Notion.Token == "" {
			errs = append(errs, missing(keyNotionToken))
		}
		if c.Notion.PageID == "" {
			errs = append(errs, missing(keyNotionPageID))
		} else if _, err := uuid.Parse(c.Notion.PageID); err != nil {
			errs = append(errs, fmt.Errorf("%s (%s) is not a valid page id: %w", keyNotionPageID, envBindings[keyNotionPageID], err))
		}
		if err := validateBaseURL(keyNotionBaseURL, c.Notion.BaseURL); err != nil {
			errs = append(errs, err)
		}
		if strings.TrimSpace(c.Notion.DatabaseTitle) == "" {
			errs = append(errs, missing(keyNotionDatabaseTitle))
		}
		if strings.TrimSpace(c.Notion.SourcesTitle) == "" {
			errs = append(errs, missing(keyNotionSourcesTitle))
		}
	}

	if req.Kind == domain.SubjectKindTopic {
		if c.Search.APIKey == "" {
			errs = append(errs, missing(keySearchAPIKey))
		}
		if err := validateBaseURL(keySearchBaseURL, c.Search.BaseURL); err != nil {
			errs = append(errs, err)
		}
	}

	if req.Summarizer {
		switch c.Summarizer.Provider {
		case ProviderOpenAI:
			if c.Summarizer.OpenAIKey == "" {
				errs = append(errs, missing(keyOpenAIAPIKey))
			}
			if c.Summarizer.OpenAIBase != "" {
				if err := validateBaseURL(keyOpenAIBaseURL, c.Summarizer.OpenAIBase); err != nil {
					errs = append(errs, err)
				}
			}
		case ProviderGemini:
			if c.Summarizer.GeminiAPIKey == "" {
				errs = append(errs, missing(keyGeminiAPIKey))
			}
		default:
			errs = append(errs, fmt.Errorf("%s: unsupported provider %q", keySummarizerProvider, c.Summarizer.Provider))
		}
		if c.Content.MaxTokens <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", keyContentMaxTokens, c.Content.MaxTokens))
		}
	}

	if strings.TrimSpace(c.Cache.Dir) == "" {
		errs = append(errs, missing(keyCacheDir))
	}
	switch c.Credentials.Backend {
	case "", CredentialsAuto, CredentialsPass, CredentialsFile:
	default:
		errs = append(errs, fmt.Errorf("%s: unsupported backend %q", keyCredentialsBackend, c.Credentials.Backend))
	}
	if req.Sink == SinkFile && strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, missing(keyOutputDir))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, errors.Join(errs...))
}

// NormalizedPageID returns the root page id in canonical dashed form.
func (c NotionConfig) NormalizedPageID() string {
	id, err := uuid.Parse(c.PageID)
	if err != nil {
		return c.PageID
	}

	return id.String()
}

func credentialsDir(configured string) string {
	if dir := strings.TrimSpace(configured); dir != "" {
		return dir
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "kbs", "credentials")
	}

	return filepath.Join(".kbs", "credentials")
}

func missing(key string) error {
	if env, ok := envBindings[key]; ok {
		return fmt.Errorf("%s (%s) is required", key, env)
	}

	return fmt.Errorf("%s is required", key)
}

func validateBaseURL(key, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", key, raw)
	}

	return nil
}
