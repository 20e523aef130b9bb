package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type AppConfig struct {
	API         *APIConfig
	Gin         *GinConfig
	Postgres    *PostgresConfig
	DatabaseURL string
}

type APIConfig struct {
	Environment        string
	Port               string
	BaseURL            string
	JWTSigningKey      string
	TokenTTL           time.Duration
	LogLevel           string
	AllowedCORSDomains []string
}

type GinConfig struct {
	Mode string
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DB       string
	SSLMode  string
	TimeZone string
}

// DSN builds a libpq keyword/value connection string.
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode, c.TimeZone,
	)
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "4000")
	v.SetDefault("api.tokenTTL", 24*time.Hour)
	v.SetDefault("api.logLevel", "info")
	v.SetDefault("gin.mode", "release")
	v.SetDefault("postgres.sslMode", "disable")
	v.SetDefault("postgres.timeZone", "UTC")

	// DATABASE_URL has no nested key; bind it explicitly.
	if err := v.BindEnv("databaseURL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("v.BindEnv -> %w", err)
	}

	return v, nil
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if conf.API == nil || conf.API.JWTSigningKey == "" {
		return nil, fmt.Errorf("api.jwtSigningKey is required")
	}
	if conf.DatabaseURL == "" && conf.Postgres == nil {
		return nil, fmt.Errorf("either DATABASE_URL or the postgres section is required")
	}
	if conf.Gin == nil {
		conf.Gin = &GinConfig{Mode: v.GetString("gin.mode")}
	}

	return conf, nil
}

// Load reads the YAML file at path. Environment variables override file values, with
// nested keys joined by underscores (API_PORT overrides api.port).
func Load(path string) (*AppConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	if err = v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	return decode(v)
}

// Watch calls onChange with the reloaded config every time the file at path is written.
// Invalid edits are reported to onError and otherwise ignored.
func Watch(path string, onChange func(*AppConfig), onError func(error)) error {
	v, err := newViper(path)
	if err != nil {
		return err
	}
	if err = v.ReadInConfig(); err != nil {
		return fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		conf, err := decode(v)
		if err != nil {
			onError(fmt.Errorf("reload %s -> %w", e.Name, err))
			return
		}
		onChange(conf)
	})
	v.WatchConfig()

	return nil
}
