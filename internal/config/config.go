package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// SchedulingConfig политика расписания по умолчанию: рабочее окно водителей.
// Время указывается строками HH:MM и обязано попадать на границу слота.
type SchedulingConfig struct {
	BusinessStart string `toml:"business_start"`
	BusinessEnd   string `toml:"business_end"`
}

// Policy конвертирует рабочее окно в доменную политику расписания
func (s *SchedulingConfig) Policy() (domain.DefaultPolicy, error) {
	if s.BusinessStart == "" && s.BusinessEnd == "" {
		return domain.NewDefaultPolicy(), nil
	}

	start, err := parseSlotBoundary(s.BusinessStart)
	if err != nil {
		return domain.DefaultPolicy{}, fmt.Errorf("config: business_start: %w", err)
	}
	end, err := parseSlotBoundary(s.BusinessEnd)
	if err != nil {
		return domain.DefaultPolicy{}, fmt.Errorf("config: business_end: %w", err)
	}
	if start >= end {
		return domain.DefaultPolicy{}, fmt.Errorf("config: business window [%s, %s) is empty", s.BusinessStart, s.BusinessEnd)
	}
	return domain.DefaultPolicy{BusinessStartIndex: start, BusinessEndIndex: end}, nil
}

func parseSlotBoundary(value string) (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(value, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	return domain.TimeToIndex(hour, minute)
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return &cfg, nil
}
