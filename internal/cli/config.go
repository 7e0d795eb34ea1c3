package cli

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scorecard/pkg/errors"
	"github.com/matzehuels/scorecard/pkg/pipeline"
)

// Environment overrides.
const (
	envMongoURI = "SCORECARD_MONGO_URI"
	envRedisURL = "SCORECARD_REDIS_URL"
)

// Config is the optional config file.
type Config struct {
	// DataDir holds <game-id>.json documents when no Mongo URI is set.
	DataDir string `toml:"data_dir,omitempty"`

	Mongo struct {
		URI        string `toml:"uri,omitempty"`
		Database   string `toml:"database,omitempty"`
		Collection string `toml:"collection,omitempty"`
	} `toml:"mongo"`

	Redis struct {
		URL string `toml:"url,omitempty"`
	} `toml:"redis"`

	Cache struct {
		Dir      string `toml:"dir,omitempty"`
		Prefix   string `toml:"prefix,omitempty"`
		Disabled bool   `toml:"disabled,omitempty"`
	} `toml:"cache"`

	Render struct {
		Formats      []string          `toml:"formats,omitempty"`
		Scale        float64           `toml:"scale,omitempty"`
		InlineStats  bool              `toml:"inline_stats,omitempty"`
		InningTotals bool              `toml:"inning_totals,omitempty"`
		Logos        map[string]string `toml:"logos,omitempty"`
	} `toml:"render"`

	Server struct {
		Addr           string        `toml:"addr,omitempty"`
		AllowedOrigins []string      `toml:"allowed_origins,omitempty"`
		RequestTimeout time.Duration `toml:"request_timeout,omitempty"`
	} `toml:"server"`
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing default file yields the zero config; a missing
// explicit file is an error. Environment overrides are applied last.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err == nil {
			path = filepath.Join(dir, "config.toml")
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !stderrors.Is(err, fs.ErrNotExist) || explicit {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
			}
		}
	}

	if v := os.Getenv(envMongoURI); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv(envRedisURL); v != "" {
		cfg.Redis.URL = v
	}
	if err := pipeline.ValidateFormats(cfg.Render.Formats); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config render.formats")
	}
	return cfg, nil
}

// config loads the config named by --config.
func (c *CLI) config() (*Config, error) {
	return loadConfig(c.configPath)
}

// gamesDir returns the file repository directory, creating it if needed.
func (cfg *Config) gamesDir() (string, error) {
	dir := cfg.DataDir
	if dir == "" {
		d, err := dataDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(d, "games")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return dir, nil
}

// formats returns flag formats if given, else the configured ones.
func (cfg *Config) formats(flag string) ([]string, error) {
	if flag != "" {
		return pipeline.ParseFormats(flag)
	}
	if len(cfg.Render.Formats) > 0 {
		return cfg.Render.Formats, nil
	}
	return []string{pipeline.FormatSVG}, nil
}

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := configDir()
			if err != nil {
				return fmt.Errorf("get config dir: %w", err)
			}
			fmt.Println(filepath.Join(dir, "config.toml"))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	})

	return cmd
}
