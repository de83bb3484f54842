package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TERMINALIST_DEBUG=true.
const EnvPrefix = "TERMINALIST"

// ConfigEnv names an explicit config file, overriding the default location.
const ConfigEnv = EnvPrefix + "_CONFIG"

// DefaultSourceURL is where self-update downloads the latest release from.
const DefaultSourceURL = "https://github.com/dshahbaz/terminalist/releases/latest/download/terminalist"

// Config holds terminalist settings.
type Config struct {
	// SourceURL is the download location printed by --self-update.
	SourceURL string `mapstructure:"source_url"`
	// Catalogs are extra YAML catalog files registered after the built-in one.
	Catalogs []string `mapstructure:"catalogs"`
	// SkipOperands skips the arguments a matched flag consumes while scanning.
	SkipOperands bool `mapstructure:"skip_operands"`
	Debug        bool `mapstructure:"debug"`
}

var (
	getEnv        = os.Getenv
	userConfigDir = os.UserConfigDir
)

// DefaultPath resolves the config file location using XDG conventions.
func DefaultPath() (string, error) {
	if xdgHome := getEnv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "terminalist", "config.yaml"), nil
	}

	dir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "terminalist", "config.yaml"), nil
}

// Load reads configuration from configFile, or from DefaultPath when configFile is
// empty. A missing default file yields defaults; a missing explicit file is an error.
// TERMINALIST_* environment variables override file values.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	explicit := configFile != ""
	if !explicit {
		path, err := DefaultPath()
		if err != nil {
			// Without a config dir there is nothing to read; defaults and env still apply
			return unmarshal(v)
		}
		configFile = path
	}
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}

	return unmarshal(v)
}

// LoadFromEnv loads configuration from the file named by TERMINALIST_CONFIG, if any.
func LoadFromEnv() (*Config, error) {
	return Load(getEnv(ConfigEnv))
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// setDefaults sets all default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("source_url", DefaultSourceURL)
	v.SetDefault("catalogs", []string{})
	v.SetDefault("skip_operands", true)
	v.SetDefault("debug", false)
}
