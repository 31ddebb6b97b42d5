package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "QUIZCOURSE"

type AppConfig struct {
	API     *APIConfig     `mapstructure:"api"`
	Storage *StorageConfig `mapstructure:"storage"`
	Game    *GameConfig    `mapstructure:"game"`
	Stub    *StubConfig    `mapstructure:"stub"`
	Gin     *GinConfig     `mapstructure:"gin"`
}

// APIConfig describes the remote backend the client talks to.
type APIConfig struct {
	Environment string        `mapstructure:"environment"`
	LogLevel    string        `mapstructure:"log_level"`
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type GameConfig struct {
	MaxEnergy       int    `mapstructure:"max_energy"`
	DefaultLanguage string `mapstructure:"default_language"`
}

// StubConfig configures the in-memory development backend.
type StubConfig struct {
	Port               string        `mapstructure:"port"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	TokenTTL           time.Duration `mapstructure:"token_ttl"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

func Load(path string) (*AppConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	return decode(v)
}

// Watch calls onChange with the reloaded config every time the file changes.
func Watch(path string, onChange func(*AppConfig)) error {
	v, err := newViper(path)
	if err != nil {
		return err
	}

	v.OnConfigChange(reload(v, onChange))
	v.WatchConfig()

	return nil
}

// reload keeps the previous config when the edited file does not decode.
func reload(v *viper.Viper, onChange func(*AppConfig)) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		conf, err := decode(v)
		if err != nil {
			zap.L().Warn("config reload failed", zap.String("file", e.Name), zap.Error(err))
			return
		}
		onChange(conf)
	}
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
	}

	return v, nil
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}
	conf.API.BaseURL = strings.TrimRight(conf.API.BaseURL, "/")

	return conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.log_level", "")
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout", 30*time.Second)

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.dsn", "quizcourse.db")

	v.SetDefault("game.max_energy", 5)
	v.SetDefault("game.default_language", "en")

	v.SetDefault("stub.port", "8000")
	v.SetDefault("stub.jwt_signing_key", "change-me")
	v.SetDefault("stub.token_ttl", 24*time.Hour)
	v.SetDefault("stub.allowed_cors_domains", []string{"*"})

	v.SetDefault("gin.mode", "release")
}
