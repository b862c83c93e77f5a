package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultTokenTTL = time.Hour

// Config holds process-wide settings loaded once at startup. None of the
// fields are mutated afterwards; components receive what they need via
// constructors.
type Config struct {
	Port     string
	DBPath   string
	LogLevel string

	// JWTSecret signs every issued token. Rotating it invalidates all
	// outstanding tokens, which is the only invalidation mechanism; there
	// is no revocation list.
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configs/config.yml and environment overrides. A .env file is
// honored when present. The signing secret must come from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	viper.SetDefault("port", "8080")
	viper.SetDefault("db.path", "tasks.db")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("auth.token_ttl", defaultTokenTTL)

	_ = viper.BindEnv("port", "PORT")
	_ = viper.BindEnv("db.path", "DB_PATH")
	_ = viper.BindEnv("auth.secret", "JWT_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional as long as env covers everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:      viper.GetString("port"),
		DBPath:    viper.GetString("db.path"),
		LogLevel:  viper.GetString("log.level"),
		JWTSecret: viper.GetString("auth.secret"),
		TokenTTL:  viper.GetDuration("auth.token_ttl"),
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return cfg, nil
}
