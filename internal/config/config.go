package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Источники данных для массовой выгрузки (fallback-поиск и отчёты)
const (
	DataSourceAPI      = "api"
	DataSourcePostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	HotelAPI     HotelAPIConfig     `toml:"hotel_api"`
	Availability AvailabilityConfig `toml:"availability"`
	DataSource   DataSourceConfig   `toml:"datasource"`
	Database     DatabaseConfig     `toml:"database"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HotelAPIConfig параметры внешнего API отелей
type HotelAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// AvailabilityConfig параметры поиска свободных номеров
type AvailabilityConfig struct {
	LookupTimeout int `toml:"lookup_timeout"` // секунды, на каждый запрос к источнику
}

// LookupTimeoutDuration возвращает таймаут одного запроса к источнику
func (c AvailabilityConfig) LookupTimeoutDuration() time.Duration {
	return time.Duration(c.LookupTimeout) * time.Second
}

// DataSourceConfig выбор источника массовых данных
type DataSourceConfig struct {
	Kind string `toml:"kind"` // "api" или "postgres"
}

// DatabaseConfig параметры подключения к PostgreSQL (read-only каталог)
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN формирует строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
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
			WriteTimeout:    40,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "hotel-ops",
		},
		HotelAPI: HotelAPIConfig{
			Timeout: 20,
		},
		Availability: AvailabilityConfig{
			LookupTimeout: 15,
		},
		DataSource: DataSourceConfig{
			Kind: DataSourceAPI,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}

	if c.HotelAPI.URL == "" {
		return errors.New("hotel_api.url is required")
	}

	if c.HotelAPI.Timeout <= 0 {
		return errors.New("hotel_api.timeout must be positive")
	}

	if c.Availability.LookupTimeout <= 0 {
		return errors.New("availability.lookup_timeout must be positive")
	}

	switch c.DataSource.Kind {
	case DataSourceAPI:
	case DataSourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return errors.New("database.host and database.dbname are required for postgres datasource")
		}
	default:
		return fmt.Errorf("datasource.kind must be %q or %q, got %q", DataSourceAPI, DataSourcePostgres, c.DataSource.Kind)
	}

	return nil
}
