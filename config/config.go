// ABOUTME: Runtime configuration for bridgeplay, layered defaults < config file < env < flags.
// ABOUTME: Backed by viper; keys use snake_case and env vars use the BRIDGEPLAY_ prefix.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/2389-research/bridgeplay/catalog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. BRIDGEPLAY_ADDR.
const EnvPrefix = "BRIDGEPLAY"

// Keys.
const (
	KeyAddr       = "addr"
	KeySamplesDir = "samples_dir"
	KeyStaticDir  = "static_dir"
	KeyCatalog    = "catalog"
	KeyTitle      = "title"
)

// Defaults.
const (
	DefaultAddr       = "127.0.0.1:2389"
	DefaultSamplesDir = "samples"
	DefaultTitle      = "WebMSX JS Bridge Examples"
)

// Config holds the resolved settings for the server and operator commands.
type Config struct {
	Addr       string `mapstructure:"addr"`
	SamplesDir string `mapstructure:"samples_dir"`
	StaticDir  string `mapstructure:"static_dir"` // empty: embedded assets
	Catalog    string `mapstructure:"catalog"`    // empty: built-in catalog
	Title      string `mapstructure:"title"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAddr, DefaultAddr)
	v.SetDefault(KeySamplesDir, DefaultSamplesDir)
	v.SetDefault(KeyStaticDir, "")
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyTitle, DefaultTitle)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file into v and decodes the result.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	if strings.TrimSpace(c.SamplesDir) == "" {
		errs = append(errs, errors.New("samples_dir must not be empty"))
	}
	return errors.Join(errs...)
}

// LoadCatalog returns the catalog named by c.Catalog, or the built-in one.
func (c Config) LoadCatalog() (*catalog.Catalog, error) {
	if c.Catalog == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(c.Catalog)
}
