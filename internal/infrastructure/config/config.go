package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server ServerConfig
	Box    BoxConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

type BoxConfig struct {
	ClientID       string        `envconfig:"BOX_CLIENT_ID" required:"true"`
	ClientSecret   string        `envconfig:"BOX_CLIENT_SECRET" required:"true"`
	RedirectURI    string        `envconfig:"BOX_REDIRECT_URI"`
	DeveloperToken string        `envconfig:"BOX_DEVELOPER_TOKEN" required:"true"`
	FolderID       string        `envconfig:"BOX_FOLDER_ID" default:"0"`
	WebhookSecret  string        `envconfig:"BOX_WEBHOOK_SECRET" required:"true"`
	APIBaseURL     string        `envconfig:"BOX_API_BASE_URL" default:"https://api.box.com/2.0"`
	UploadBaseURL  string        `envconfig:"BOX_UPLOAD_BASE_URL" default:"https://upload.box.com/api/2.0"`
	AuthURL        string        `envconfig:"BOX_AUTH_URL" default:"https://account.box.com/api/oauth2/authorize"`
	TokenURL       string        `envconfig:"BOX_TOKEN_URL" default:"https://api.box.com/oauth2/token"`
	RequestTimeout time.Duration `envconfig:"BOX_REQUEST_TIMEOUT" default:"30s"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
