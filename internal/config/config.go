package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	TurfAPI   TurfAPIConfig   `toml:"turf_api"`
	Sessions  SessionsConfig  `toml:"sessions"`
	Admin     AdminConfig     `toml:"admin"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"gt=0,lte=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"gte=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"gte=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"gte=0"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// TurfAPIConfig настройки клиента API бронирования площадок
type TurfAPIConfig struct {
	URL       string  `toml:"url" validate:"required,url"`
	Timeout   int     `toml:"timeout" validate:"gt=0"`     // секунды
	RateLimit float64 `toml:"rate_limit" validate:"gte=0"` // запросов в секунду, 0 - без ограничения
	Burst     int     `toml:"burst" validate:"gte=0"`
}

// SessionsConfig настройки сессий визарда
type SessionsConfig struct {
	TTL           int `toml:"ttl" validate:"gt=0"`            // секунды простоя до удаления
	SweepInterval int `toml:"sweep_interval" validate:"gt=0"` // секунды
	MaxActive     int `toml:"max_active" validate:"gte=0"`    // 0 - без ограничения
}

// AdminConfig настройки панели администратора
type AdminConfig struct {
	SessionTTL int `toml:"session_ttl" validate:"gt=0"` // секунды, если API не вернул срок токена
}

// RateLimitConfig ограничение входящих запросов по IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second" validate:"required_if=Enabled true,gte=0"`
	Burst             int     `toml:"burst" validate:"required_if=Enabled true,gte=0"`
}

// Переменные окружения, перекрывающие значения из файла
const (
	envTurfAPIURL = "TURF_API_URL"
	envHTTPPort   = "HTTP_PORT"
	envLogLevel   = "LOG_LEVEL"
)

// Load читает конфигурацию из toml файла, перекрывает ее переменными окружения
// (включая .env в рабочей директории, если он есть) и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "turf_booking",
		},
		TurfAPI: TurfAPIConfig{
			Timeout: 10,
		},
		Sessions: SessionsConfig{
			TTL:           1800,
			SweepInterval: 60,
		},
		Admin: AdminConfig{
			SessionTTL: 3600,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(envTurfAPIURL); v != "" {
		c.TurfAPI.URL = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv(envHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", envHTTPPort, v, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}
