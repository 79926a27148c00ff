package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
// Секреты (токены) могут быть переопределены переменными окружения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Monobank MonobankConfig `toml:"monobank"`
	Booking  BookingConfig  `toml:"booking"`
	Admin    AdminConfig    `toml:"admin"`
}

// ServerConfig настройки HTTP сервера (значения в секундах)
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// MonobankConfig настройки интеграции с платёжным провайдером
// Если Token пустой, создание инвойсов отключено - бронирования
// создаются без запроса оплаты
type MonobankConfig struct {
	Token       string `toml:"token"`
	BaseURL     string `toml:"base_url"`
	JarID       string `toml:"jar_id"`       // Внешний ID банки для сбора донатов
	RedirectURL string `toml:"redirect_url"` // Базовый URL возврата клиента после оплаты
	WebhookURL  string `toml:"webhook_url"`  // URL вебхука статуса инвойса
	Timeout     int    `toml:"timeout"`      // секунды
}

// IsEnabled возвращает true, если платёжный провайдер сконфигурирован
func (m *MonobankConfig) IsEnabled() bool {
	return m.Token != ""
}

// BookingConfig настройки генерации слотов и приёма бронирований
type BookingConfig struct {
	SlotStepMinutes    int `toml:"slot_step_minutes"`    // Шаг сетки слотов
	MinNoticeMinutes   int `toml:"min_notice_minutes"`   // Минимальное время до начала визита
	DailyGuestCapacity int `toml:"daily_guest_capacity"` // Вместимость зала; 0 = без проверки
	CurrencyCode       int `toml:"currency_code"`        // ISO 4217
}

// AdminConfig настройки доступа к админским эндпоинтам
type AdminConfig struct {
	Token string `toml:"token"`
}

// Load загружает конфигурацию из TOML файла
// Перед чтением подхватывает .env (если есть); переменные окружения
// MONOBANK_TOKEN и ADMIN_TOKEN имеют приоритет над файлом
func Load(path string) (*Config, error) {
	// .env опционален - ошибка отсутствия файла игнорируется
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "catcafe-booking-service"
	}
	if c.Monobank.BaseURL == "" {
		c.Monobank.BaseURL = "https://api.monobank.ua"
	}
	if c.Monobank.Timeout == 0 {
		c.Monobank.Timeout = 10
	}
	if c.Booking.SlotStepMinutes == 0 {
		c.Booking.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if c.Booking.DailyGuestCapacity == 0 {
		c.Booking.DailyGuestCapacity = domain.DefaultDailyGuestCapacity
	}
	if c.Booking.CurrencyCode == 0 {
		c.Booking.CurrencyCode = domain.CurrencyUAH
	}
}

func (c *Config) applyEnvOverrides() {
	if token := os.Getenv("MONOBANK_TOKEN"); token != "" {
		c.Monobank.Token = token
	}
	if token := os.Getenv("ADMIN_TOKEN"); token != "" {
		c.Admin.Token = token
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		c.Database.Password = password
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Admin.Token == "" {
		return fmt.Errorf("config: admin.token is required (or set ADMIN_TOKEN)")
	}
	if c.Booking.SlotStepMinutes < 0 || c.Booking.MinNoticeMinutes < 0 || c.Booking.DailyGuestCapacity < 0 {
		return fmt.Errorf("config: booking values must not be negative")
	}
	return nil
}
