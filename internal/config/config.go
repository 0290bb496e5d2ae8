// Package config loads the server settings from defaults, an optional
// config file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const EnvPrefix = "PORTFOLIO"

type Log struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

type UI struct {
	SidebarBreakpoint int           `mapstructure:"sidebar_breakpoint" validate:"gt=0"`
	HighlightColor    string        `mapstructure:"highlight_color" validate:"required,hexcolor"`
	HighlightDuration time.Duration `mapstructure:"highlight_duration" validate:"gt=0"`
}

type Config struct {
	Port      int    `mapstructure:"port" validate:"min=1,max=65535"`
	GinMode   string `mapstructure:"gin_mode" validate:"oneof=debug release test"`
	SiteTitle string `mapstructure:"site_title" validate:"required"`
	MediaDir  string `mapstructure:"media_dir" validate:"required"`
	// TemplatesDir and StaticDir override the embedded assets when set.
	TemplatesDir string `mapstructure:"templates_dir"`
	StaticDir    string `mapstructure:"static_dir"`
	// Watch reloads templates from TemplatesDir when they change.
	Watch bool `mapstructure:"watch"`
	Log   Log  `mapstructure:"log"`
	UI    UI   `mapstructure:"ui"`
}

// SetDefaults registers every key with its default value so that the
// environment can override any of them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("site_title", "Portfolio")
	v.SetDefault("media_dir", "media")
	v.SetDefault("templates_dir", "")
	v.SetDefault("static_dir", "")
	v.SetDefault("watch", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("ui.sidebar_breakpoint", 850)
	v.SetDefault("ui.highlight_color", "#d3cf00")
	v.SetDefault("ui.highlight_duration", "500ms")
}

// New returns a viper instance with defaults and environment binding.
// If file is empty, config.yaml in the working directory is used when it
// exists.
func New(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Plain PORT and GIN_MODE are what hosting platforms set.
	_ = v.BindEnv("port", EnvPrefix+"_PORT", "PORT")
	_ = v.BindEnv("gin_mode", EnvPrefix+"_GIN_MODE", "GIN_MODE")
	return v
}

// Load reads the config file (if any) and decodes the result.
// The second return value is the file used, empty when none was found.
func Load(v *viper.Viper) (Config, string, error) {
	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}
	return cfg, used, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Watch && c.TemplatesDir == "" {
		return errors.New("invalid configuration: watch requires templates_dir")
	}
	return nil
}
