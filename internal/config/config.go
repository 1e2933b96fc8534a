package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Port              string        `mapstructure:"PORT"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	DatabaseURL       string        `mapstructure:"DATABASE_URL"`
	RedisAddr         string        `mapstructure:"REDIS_ADDR"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int           `mapstructure:"REDIS_DB"`
	SearchCacheTTL    time.Duration `mapstructure:"SEARCH_CACHE_TTL"`
	GeminiAPIKey      string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel       string        `mapstructure:"GEMINI_MODEL"`
	GeminiBaseURL     string        `mapstructure:"GEMINI_BASE_URL"`
	SearchTimeout     time.Duration `mapstructure:"SEARCH_TIMEOUT"`
	SendGridAPIKey    string        `mapstructure:"SENDGRID_API_KEY"`
	SendGridFromEmail string        `mapstructure:"SENDGRID_FROM_EMAIL"`
	SendGridFromName  string        `mapstructure:"SENDGRID_FROM_NAME"`
	TwilioAccountSID  string        `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string        `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber  string        `mapstructure:"TWILIO_FROM_NUMBER"`
	CompletionCron    string        `mapstructure:"COMPLETION_CRON"`
	StrictTransitions bool          `mapstructure:"STRICT_TRANSITIONS"`
	SeedFile          string        `mapstructure:"SEED_FILE"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"PORT":                "8080",
	"JWT_SECRET":          "",
	"DATABASE_URL":        "",
	"REDIS_ADDR":          "",
	"REDIS_PASSWORD":      "",
	"REDIS_DB":            0,
	"SEARCH_CACHE_TTL":    "10m",
	"GEMINI_API_KEY":      "",
	"GEMINI_MODEL":        "gemini-2.5-flash",
	"GEMINI_BASE_URL":     "",
	"SEARCH_TIMEOUT":      "15s",
	"SENDGRID_API_KEY":    "",
	"SENDGRID_FROM_EMAIL": "",
	"SENDGRID_FROM_NAME":  "Valet",
	"TWILIO_ACCOUNT_SID":  "",
	"TWILIO_AUTH_TOKEN":   "",
	"TWILIO_FROM_NUMBER":  "",
	"COMPLETION_CRON":     "@every 5m",
	"STRICT_TRANSITIONS":  false,
	"SEED_FILE":           "",
	"LOG_LEVEL":           "info",
}

// LoadConfig reads .env (if present) into the environment and returns a viper
// instance layering the environment over an optional ./config/config.yaml and defaults.
func LoadConfig() (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment")
	}

	v := viper.New()
	v.AddConfigPath("./config")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if c.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return &c, nil
}
