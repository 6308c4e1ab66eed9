// Package vfsconfig loads vfstug settings from a config file, VFSTUG_*
// environment variables and defaults, in that order of precedence after flags.
package vfsconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/datatug/vfstug/pkg/logging"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const UserDir = "~/.vfstug"

const EnvPrefix = "VFSTUG"

var osUserHomeDir = os.UserHomeDir

// GetUserDir returns the settings directory under the user's home.
func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

type Config struct {
	SeedFile                 string         `mapstructure:"seed_file"`
	StateDir                 string         `mapstructure:"state_dir"`
	Log                      logging.Config `mapstructure:"log"`
	MetricsAddr              string         `mapstructure:"metrics_addr"`
	ClearSelectionOnNavigate bool           `mapstructure:"clear_selection_on_navigate"`
	TouchOnMutation          bool           `mapstructure:"touch_on_mutation"`
	SortByName               bool           `mapstructure:"sort_by_name"`
	Language                 string         `mapstructure:"language"`
}

// LanguageTag is the collation language for name sorting. Unknown tags fall back to English.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}

func setDefaults(v *viper.Viper, userDir string) {
	v.SetDefault("seed_file", "")
	v.SetDefault("state_dir", userDir)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("clear_selection_on_navigate", true)
	v.SetDefault("touch_on_mutation", false)
	v.SetDefault("sort_by_name", false)
	v.SetDefault("language", "en")
}

// New returns a viper instance with defaults and environment binding set up.
// configFile overrides the default ~/.vfstug/config.yaml lookup.
func New(configFile string) *viper.Viper {
	v := viper.New()
	userDir, _ := GetUserDir()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(userDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, userDir)
	return v
}

// Load reads the config. A missing default config file is fine;
// a missing file that was asked for explicitly is not.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
