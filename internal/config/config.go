package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса, загружается из config.toml.
// Секреты (пароли БД и Redis) можно переопределить через .env / переменные
// окружения, чтобы не хранить их в файле конфигурации.
type Config struct {
	Server   ServerConfig   `toml:"server" validate:"required"`
	Database DatabaseConfig `toml:"database" validate:"required"`
	Redis    RedisConfig    `toml:"redis"`
	Notify   NotifyConfig   `toml:"notify"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,gt=0,lte=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"gte=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"gte=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"gte=0"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required,gt=0"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"gte=0"`
}

// DSN собирает строку подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

// RedisConfig настройки кеша доступности
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr" validate:"required_if=Enabled true"`
	Password   string `toml:"password"`
	DB         int    `toml:"db" validate:"gte=0"`
	TTLSeconds int    `toml:"ttl_seconds" validate:"gte=0"`
}

// NotifyConfig настройки шлюза уведомлений (WhatsApp/Telegram)
type NotifyConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url" validate:"required_if=Enabled true"`
	Timeout int    `toml:"timeout" validate:"gte=0"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// .env опционален: локально он есть, в контейнере переменные
	// приходят из окружения
	_ = godotenv.Load()

	if v := os.Getenv("AGENDA_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("AGENDA_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return &cfg, nil
}
