package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		AccessSecret  string `yaml:"access_secret"`
		RefreshSecret string `yaml:"refresh_secret"`
		// Срок жизни access-токена в минутах
		AccessTTLMinutes int `yaml:"access_ttl_minutes"`
		// Единая политика срока жизни refresh-токена (часы) для всех потоков:
		// логин, OAuth и ротация
		RefreshTTLHours int `yaml:"refresh_ttl_hours"`
	} `yaml:"jwt"`

	Redis struct {
		URL string `yaml:"url"`
		// TTL кэша поиска и одиночных ресурсов, секунды
		CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
	} `yaml:"redis"`

	OAuth struct {
		ClientID     string   `yaml:"client_id"`
		ClientSecret string   `yaml:"client_secret"`
		RedirectURL  string   `yaml:"redirect_url"`
		AuthURL      string   `yaml:"auth_url"`
		TokenURL     string   `yaml:"token_url"`
		UserInfoURL  string   `yaml:"userinfo_url"`
		Scopes       []string `yaml:"scopes"`
	} `yaml:"oauth"`
}

// Load загружает конфигурацию: сначала .env (если есть), затем yaml-файл,
// затем переопределения из переменных окружения.
// Конфиг создается один раз при старте и передается зависимостям явно.
func Load() (*Config, error) {
	// .env опционален: в проде переменные приходят из окружения
	_ = godotenv.Load()

	cfg := defaults()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		decodeErr := decoder.Decode(cfg)
		f.Close()
		if decodeErr != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, decodeErr)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database url is not configured (config file or DATABASE_URL)")
	}
	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		return nil, fmt.Errorf("jwt secrets are not configured")
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.Env = "development"
	cfg.JWT.AccessTTLMinutes = 15
	cfg.JWT.RefreshTTLHours = 7 * 24
	cfg.Redis.URL = "redis://localhost:6379/0"
	cfg.Redis.CacheTTLSeconds = 300
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := os.Getenv("JWT_ACCESS_SECRET"); v != "" {
		cfg.JWT.AccessSecret = v
	}
	if v := os.Getenv("JWT_REFRESH_SECRET"); v != "" {
		cfg.JWT.RefreshSecret = v
	}
	if v := os.Getenv("OAUTH_CLIENT_ID"); v != "" {
		cfg.OAuth.ClientID = v
	}
	if v := os.Getenv("OAUTH_CLIENT_SECRET"); v != "" {
		cfg.OAuth.ClientSecret = v
	}
	if v := os.Getenv("OAUTH_REDIRECT_URL"); v != "" {
		cfg.OAuth.RedirectURL = v
	}
}
