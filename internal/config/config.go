// Package config loads routegen project configuration from routegen.json
// (or yaml), ROUTEGEN_* environment variables, and CLI flag overrides, in
// that order of increasing precedence.
package config

import (
	stderrors "errors"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/routegen-dev/routegen/internal/errors"
)

const (
	// ConfigName is the configuration file base name.
	ConfigName = "routegen"

	// DefaultPagesDir is the default pages directory.
	DefaultPagesDir = "./src/pages"

	// DefaultOutFile is the default routes module output path.
	DefaultOutFile = "./src/routes.gen.tsx"

	// DefaultTypesFile is the default type module output path.
	DefaultTypesFile = "./src/route-types.gen.d.ts"

	// DefaultPort is the default dev server port.
	DefaultPort = 5821

	// DefaultHost is the default dev server host.
	DefaultHost = "localhost"

	// DefaultDebounce is the default watcher debounce interval.
	DefaultDebounce = 100 * time.Millisecond
)

// DefaultExtensions are the page file extensions recognized by default.
var DefaultExtensions = []string{".tsx", ".ts", ".jsx", ".js"}

// Config is the resolved routegen configuration.
type Config struct {
	// PagesDir is the pages directory to scan.
	PagesDir string `mapstructure:"pagesDir"`

	// OutFile is where the routes module is written.
	OutFile string `mapstructure:"outFile"`

	// TypesFile is where the route-path type module is written.
	TypesFile string `mapstructure:"typesFile"`

	// Extensions are the recognized page file extensions.
	Extensions []string `mapstructure:"extensions"`

	// Dev contains development server settings.
	Dev DevConfig `mapstructure:"dev"`
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Port is the dev server port.
	Port int `mapstructure:"port"`

	// Host is the dev server bind host.
	Host string `mapstructure:"host"`

	// Debounce is the watcher debounce interval.
	Debounce time.Duration `mapstructure:"debounce"`
}

// Load reads configuration from the working directory. A missing config
// file is not an error; defaults apply.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads configuration rooted at dir.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.AddConfigPath(dir)

	v.SetDefault("pagesDir", DefaultPagesDir)
	v.SetDefault("outFile", DefaultOutFile)
	v.SetDefault("typesFile", DefaultTypesFile)
	v.SetDefault("extensions", DefaultExtensions)
	v.SetDefault("dev.port", DefaultPort)
	v.SetDefault("dev.host", DefaultHost)
	v.SetDefault("dev.debounce", DefaultDebounce)

	v.SetEnvPrefix("ROUTEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, errors.New("R001").Wrap(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("R001").Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if c.PagesDir == "" {
		return errors.New("R001").WithDetail("pagesDir must not be empty")
	}
	if c.OutFile == "" {
		return errors.New("R001").WithDetail("outFile must not be empty")
	}
	if c.TypesFile == "" {
		return errors.New("R001").WithDetail("typesFile must not be empty")
	}
	if len(c.Extensions) == 0 {
		return errors.New("R002").WithDetail("at least one page extension is required")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return errors.New("R002").WithDetailf("extension %q does not start with a dot", ext)
		}
	}
	if c.Dev.Port <= 0 || c.Dev.Port > 65535 {
		return errors.New("R001").WithDetailf("dev.port %d is out of range", c.Dev.Port)
	}
	if c.Dev.Debounce <= 0 {
		c.Dev.Debounce = DefaultDebounce
	}
	return nil
}
