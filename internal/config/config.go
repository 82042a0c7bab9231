package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Драйверы хранилища бронирований
const (
	StoreDriverPostgres = "postgres"
	StoreDriverREST     = "rest"
)

// ErrInvalidConfig возвращается при невалидной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Store     StoreConfig     `toml:"store"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	Calendar  CalendarConfig  `toml:"calendar"`
	Catalog   CatalogConfig   `toml:"catalog"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password" env:"SALON_DB_PASSWORD"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// StoreConfig выбор хранилища бронирований
// postgres - прямое подключение, rest - внешний хостинг записей по HTTP
type StoreConfig struct {
	Driver  string `toml:"driver" env:"SALON_STORE_DRIVER"`
	URL     string `toml:"url" env:"SALON_STORE_URL"`
	APIKey  string `toml:"api_key" env:"SALON_STORE_API_KEY"`
	Table   string `toml:"table"`
	Timeout int    `toml:"timeout"` // секунды, 0 = без таймаута
}

type LogsConfig struct {
	Level string `toml:"level" env:"SALON_LOG_LEVEL"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret" env:"SALON_JWT_SECRET"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// CalendarConfig ось времени календаря администратора
type CalendarConfig struct {
	Open        string `toml:"open"`
	Close       string `toml:"close"`
	SlotMinutes int    `toml:"slot_minutes"`
	Timezone    string `toml:"timezone"`
}

type CatalogConfig struct {
	Services []ServiceConfig `toml:"services"`
}

type ServiceConfig struct {
	ID              string  `toml:"id"`
	Name            string  `toml:"name"`
	DisplayName     string  `toml:"display_name"`
	Description     string  `toml:"description"`
	DurationMinutes int     `toml:"duration_minutes"`
	Price           float64 `toml:"price"`
}

// ToDomainServices конвертирует описание каталога в доменные услуги
func (c CatalogConfig) ToDomainServices() []domain.Service {
	services := make([]domain.Service, len(c.Services))
	for i, s := range c.Services {
		services[i] = domain.Service{
			ID:              s.ID,
			Name:            s.Name,
			DisplayName:     s.DisplayName,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		}
	}
	return services
}

// Load читает конфигурацию из TOML-файла
// Секреты подтягиваются из .env / переменных окружения и перекрывают значения файла
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// .env опционален
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres store", ErrInvalidConfig)
		}
	case StoreDriverREST:
		if c.Store.URL == "" || c.Store.APIKey == "" {
			return fmt.Errorf("%w: store.url and store.api_key are required for rest store", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown store.driver %q", ErrInvalidConfig, c.Store.Driver)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}

	open, err := types.NewTimeStringFromString(c.Calendar.Open)
	if err != nil {
		return fmt.Errorf("%w: calendar.open: %v", ErrInvalidConfig, err)
	}
	closing, err := types.NewTimeStringFromString(c.Calendar.Close)
	if err != nil {
		return fmt.Errorf("%w: calendar.close: %v", ErrInvalidConfig, err)
	}
	if !open.IsBefore(closing) {
		return fmt.Errorf("%w: calendar.open must be before calendar.close", ErrInvalidConfig)
	}
	if c.Calendar.SlotMinutes <= 0 || domain.MinutesPerDay%c.Calendar.SlotMinutes != 0 {
		return fmt.Errorf("%w: calendar.slot_minutes must divide a day", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: ratelimit.rps and ratelimit.burst must be positive", ErrInvalidConfig)
	}

	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Store: StoreConfig{
			Driver: StoreDriverPostgres,
			Table:  "bookings",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon_booking",
		},
		Auth: AuthConfig{
			TokenTTLHours: 12,
		},
		RateLimit: RateLimitConfig{
			RPS:   1,
			Burst: 5,
		},
		Calendar: CalendarConfig{
			Open:        domain.DefaultOpenTime,
			Close:       domain.DefaultCloseTime,
			SlotMinutes: domain.DefaultSlotMinutes,
			Timezone:    "Europe/Paris",
		},
	}
}
