package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config - вся конфигурация процесса. Собирается один раз при старте
// и передается по ссылке в компоненты (никакого глобального состояния).
type Config struct {
	Server struct {
		Host         string `yaml:"host"`
		Port         int    `yaml:"port"`
		Env          string `yaml:"env"`
		ClientOrigin string `yaml:"client_origin"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Notifications struct {
		QueueSize int `yaml:"queue_size"`
	} `yaml:"notifications"`
}

// Load читает config.yaml (путь из CONFIG_PATH, по умолчанию config/config.yaml),
// затем накладывает переменные окружения. .env подхватывается через godotenv,
// чтобы локальный запуск не требовал экспорта переменных.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	applyEnv(cfg)

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database DSN is not configured (DATABASE_URL)")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT secret is not configured (JWT_SECRET)")
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 5000
	cfg.Server.Env = "development"
	cfg.JWT.TTLHours = 168 // 7 дней
	cfg.Email.SMTPPort = 587
	cfg.Email.FromName = "TeleMind"
	cfg.Notifications.QueueSize = 64
	return cfg
}

// applyEnv - переменные окружения имеют приоритет над файлом
func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("CLIENT_ORIGIN"); v != "" {
		cfg.Server.ClientOrigin = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Email.SMTPPort = port
		}
	}
	if v := os.Getenv("EMAIL_USER"); v != "" {
		cfg.Email.SMTPUser = v
		if cfg.Email.FromEmail == "" {
			cfg.Email.FromEmail = v
		}
	}
	if v := os.Getenv("EMAIL_PASS"); v != "" {
		cfg.Email.SMTPPassword = v
	}
}
