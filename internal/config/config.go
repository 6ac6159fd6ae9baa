package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Политики подтверждения услуг персоналом
const (
	AcceptPolicyPermissive = "permissive"
	AcceptPolicyStrict     = "strict"
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Predictor PredictorConfig `toml:"predictor"`
	Weather   WeatherConfig   `toml:"weather"`
	LLM       LLMConfig       `toml:"llm"`
	Redis     RedisConfig     `toml:"redis"`
	Images    ImagesConfig    `toml:"images"`
	Auth      AuthConfig      `toml:"auth"`
	Pricing   PricingConfig   `toml:"pricing"`
	Booking   BookingConfig   `toml:"booking"`
	Cart      CartConfig      `toml:"cart"`
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
	Password        string `toml:"password"`
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

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type PredictorConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
	// GroupTokenQuote символ, которым обрамляются токены состава группы ("" или "'")
	GroupTokenQuote string `toml:"group_token_quote"`
}

type WeatherConfig struct {
	URL         string `toml:"url"`
	APIKey      string `toml:"api_key"`
	Lang        string `toml:"lang"`
	DefaultCity string `toml:"default_city"`
	Timeout     int    `toml:"timeout"`   // секунды
	CacheTTL    int    `toml:"cache_ttl"` // секунды
}

type LLMConfig struct {
	APIKey            string  `toml:"api_key"`
	BaseURL           string  `toml:"base_url"`
	Model             string  `toml:"model"`
	Timeout           int     `toml:"timeout"` // секунды
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type ImagesConfig struct {
	Enabled       bool   `toml:"enabled"`
	Endpoint      string `toml:"endpoint"`
	Region        string `toml:"region"`
	Bucket        string `toml:"bucket"`
	AccessKey     string `toml:"access_key"`
	SecretKey     string `toml:"secret_key"`
	PublicBaseURL string `toml:"public_base_url"`
	MaxSizeMB     int    `toml:"max_size_mb"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type PricingConfig struct {
	TaxRate            float64 `toml:"tax_rate"`
	BundleDiscountRate float64 `toml:"bundle_discount_rate"`
}

type BookingConfig struct {
	AcceptPolicy string `toml:"accept_policy"`
}

type CartConfig struct {
	IdleTTL       int `toml:"idle_ttl"`       // секунды
	SweepInterval int `toml:"sweep_interval"` // секунды
}

// Load читает TOML-файл, подмешивает секреты из .env и переменных окружения,
// заполняет значения по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// .env необязателен: в production секреты приходят из окружения
	_ = godotenv.Load()
	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "cappadocia-tours",
		},
		Predictor: PredictorConfig{Timeout: 15},
		Weather: WeatherConfig{
			URL:         "https://api.collectapi.com/weather/getWeather",
			Lang:        "tr",
			DefaultCity: "nevsehir",
			Timeout:     5,
			CacheTTL:    1800,
		},
		LLM: LLMConfig{
			Model:             "gpt-4o-mini",
			Timeout:           30,
			RequestsPerSecond: 3,
			Burst:             5,
		},
		Images: ImagesConfig{
			Region:    "auto",
			MaxSizeMB: 5,
		},
		Pricing: PricingConfig{
			TaxRate:            0.18,
			BundleDiscountRate: 0.05,
		},
		Booking: BookingConfig{AcceptPolicy: AcceptPolicyPermissive},
		Cart: CartConfig{
			IdleTTL:       7200,
			SweepInterval: 300,
		},
	}
}

// applyEnv переопределяет секреты и адреса из окружения
func (c *Config) applyEnv() {
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Predictor.URL, "PREDICTOR_URL")
	setString(&c.Weather.APIKey, "WEATHER_API_KEY")
	setString(&c.LLM.APIKey, "OPENAI_API_KEY")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Images.AccessKey, "S3_ACCESS_KEY")
	setString(&c.Images.SecretKey, "S3_SECRET_KEY")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")

	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.HTTPPort = port
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Weather.DefaultCity == "" {
		c.Weather.DefaultCity = "nevsehir"
	}
	if c.Booking.AcceptPolicy == "" {
		c.Booking.AcceptPolicy = AcceptPolicyPermissive
	}
	c.Booking.AcceptPolicy = strings.ToLower(c.Booking.AcceptPolicy)
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Predictor.URL == "" {
		return fmt.Errorf("%w: predictor.url is required", ErrInvalidConfig)
	}
	if c.Predictor.Timeout <= 0 || c.Weather.Timeout <= 0 || c.LLM.Timeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidConfig)
	}
	if len(c.Predictor.GroupTokenQuote) > 1 {
		return fmt.Errorf("%w: predictor.group_token_quote must be at most one character", ErrInvalidConfig)
	}
	if c.Pricing.TaxRate < 0 || c.Pricing.TaxRate >= 1 {
		return fmt.Errorf("%w: pricing.tax_rate must be in [0, 1)", ErrInvalidConfig)
	}
	if c.Pricing.BundleDiscountRate < 0 || c.Pricing.BundleDiscountRate >= 1 {
		return fmt.Errorf("%w: pricing.bundle_discount_rate must be in [0, 1)", ErrInvalidConfig)
	}
	if c.Booking.AcceptPolicy != AcceptPolicyPermissive && c.Booking.AcceptPolicy != AcceptPolicyStrict {
		return fmt.Errorf("%w: booking.accept_policy must be %q or %q",
			ErrInvalidConfig, AcceptPolicyPermissive, AcceptPolicyStrict)
	}
	if c.Cart.IdleTTL <= 0 || c.Cart.SweepInterval <= 0 {
		return fmt.Errorf("%w: cart.idle_ttl and cart.sweep_interval must be positive", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret (or JWT_SECRET) is required", ErrInvalidConfig)
	}
	if c.Images.Enabled && (c.Images.Bucket == "" || c.Images.PublicBaseURL == "") {
		return fmt.Errorf("%w: images.bucket and images.public_base_url are required when images are enabled", ErrInvalidConfig)
	}
	return nil
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}
