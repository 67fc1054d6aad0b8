// Package config loads settings shared by the commands.
package config

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	lol "github.com/mc10/riot-api"
	"github.com/mc10/riot-api/uritemplates"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// DefaultDocsURL is the api reference page checked by lolcheck.
const DefaultDocsURL = "https://developer.riotgames.com/api/methods"

// MinTimeout is the smallest timeout Validate accepts.
const MinTimeout = 100 * time.Millisecond

// Config holds the client and logging settings.
type Config struct {
	APIKey  string        `yaml:"api_key"`
	Region  string        `yaml:"region"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`

	LogLevel string `yaml:"log_level"`
	DocsURL  string `yaml:"docs_url"`
}

// Load reads path (may be empty), then .env, then the environment:
// RIOT_API_KEY, RIOT_REGION and LOG_LEVEL override the file.
func Load(path string) (*Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	cfg := &Config{
		Region:   string(lol.DefaultRegion),
		BaseURL:  lol.DefaultBaseURL,
		Timeout:  10 * time.Second,
		LogLevel: "info",
		DocsURL:  DefaultDocsURL,
	}

	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading config")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	}

	if v := os.Getenv("RIOT_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("RIOT_REGION"); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// Validate checks the settings needed to call the api.
func (cfg *Config) Validate() error {
	if cfg.APIKey == "" {
		return errors.New("api_key (or RIOT_API_KEY) is required")
	}
	if !lol.IsRegion(cfg.Region) {
		return errors.Errorf("invalid region %q", cfg.Region)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	// a bare yaml number is read as nanoseconds
	if cfg.Timeout < MinTimeout {
		return errors.Errorf("timeout must be at least %v, got %v (use a unit, e.g. 10s)", MinTimeout, cfg.Timeout)
	}
	if cfg.BaseURL != "" {
		raw, err := uritemplates.Expand(cfg.BaseURL, map[string]string{"region": "na"})
		if err != nil {
			return errors.Wrap(err, "base_url")
		}
		if u, err := url.Parse(raw); err != nil || u.Host == "" {
			return errors.Errorf("base_url %q is not an absolute url", cfg.BaseURL)
		}
	}
	return nil
}

// Logger returns a logger configured with LogLevel.
func (cfg *Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	return log
}

// Options returns the client options described by cfg.
func (cfg *Config) Options(log logrus.FieldLogger) []lol.Option {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	opts := []lol.Option{
		lol.WithLogger(log),
		lol.WithClientProvider(func(context.Context) *http.Client {
			return httpClient
		}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, lol.WithBaseURL(cfg.BaseURL))
	}
	return opts
}

// NewClient creates a client from cfg.
func (cfg *Config) NewClient(log logrus.FieldLogger) (*lol.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return lol.New(cfg.APIKey, cfg.Region, cfg.Options(log)...)
}
