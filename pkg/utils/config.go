package utils

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Session SessionConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	CookieName string
	CSRFKey    string
	Secure     bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "rentoverse-web")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8081")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 15)
	viper.SetDefault("SESSION_COOKIE", "rv_session")
	viper.SetDefault("SESSION_SECURE", false)
	// dev-only fallback, override in deployment
	viper.SetDefault("CSRF_KEY", "rentoverse-dev-csrf-key-32-bytes")

	if err := viper.ReadInConfig(); err != nil {
		// a missing .env falls back to defaults and real env vars
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Backend: BackendConfig{
			BaseURL: viper.GetString("BACKEND_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("BACKEND_TIMEOUT_SECONDS")) * time.Second,
		},
		Session: SessionConfig{
			CookieName: viper.GetString("SESSION_COOKIE"),
			CSRFKey:    viper.GetString("CSRF_KEY"),
			Secure:     viper.GetBool("SESSION_SECURE"),
		},
	}

	return config, nil
}
