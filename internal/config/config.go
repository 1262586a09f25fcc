package config

import (
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host" env:"SERVER_HOST"`
		Port int    `yaml:"port" env:"SERVER_PORT"`
		Env  string `yaml:"env" env:"SERVER_ENV"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url" env:"DATABASE_URL"`
	} `yaml:"database"`

	// Внешний сервис проверки ИИН
	Provider struct {
		BaseURL        string `yaml:"base_url" env:"PROVIDER_BASE_URL"`
		APIKey         string `yaml:"api_key" env:"PROVIDER_API_KEY"`
		TimeoutSeconds int    `yaml:"timeout_seconds" env:"PROVIDER_TIMEOUT_SECONDS"`
		MaxRetries     int    `yaml:"max_retries" env:"PROVIDER_MAX_RETRIES"`
	} `yaml:"provider"`

	Auth struct {
		BcryptCost     int `yaml:"bcrypt_cost" env:"AUTH_BCRYPT_COST"`
		PasswordLength int `yaml:"password_length" env:"AUTH_PASSWORD_LENGTH"`
		CookieTTLDays  int `yaml:"cookie_ttl_days" env:"AUTH_COOKIE_TTL_DAYS"`
	} `yaml:"auth"`

	Admin struct {
		Password        string `yaml:"password" env:"ADMIN_PASSWORD"`
		JWTSecret       string `yaml:"jwt_secret" env:"ADMIN_JWT_SECRET"`
		TokenTTLMinutes int    `yaml:"token_ttl_minutes" env:"ADMIN_TOKEN_TTL_MINUTES"`
	} `yaml:"admin"`
}

var AppConfig *Config

// LoadConfig читает config.yaml (если есть), затем накатывает переменные
// окружения поверх. Env всегда выигрывает - так тесты и docker
// переопределяют DSN без отдельного файла.
func LoadConfig() {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			f.Close()
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		f.Close()
	}

	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse environment config: %v", err)
	}

	applyDefaults(&cfg)

	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Provider.TimeoutSeconds == 0 {
		cfg.Provider.TimeoutSeconds = 5
	}
	if cfg.Provider.MaxRetries == 0 {
		cfg.Provider.MaxRetries = 2
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 10
	}
	if cfg.Auth.PasswordLength == 0 {
		cfg.Auth.PasswordLength = 16
	}
	if cfg.Auth.CookieTTLDays == 0 {
		cfg.Auth.CookieTTLDays = 7
	}
	if cfg.Admin.TokenTTLMinutes == 0 {
		cfg.Admin.TokenTTLMinutes = 60
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
