package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config holds application configuration
type Config struct {
	App      AppConfig
	CORS     CORSConfig
	Queue    QueueConfig
	Email    EmailConfig
	Workers  WorkerConfig
	LeadRate RateConfig
}

type AppConfig struct {
	Port       string
	Timezone   string
	SeedFile   string
	ToastTTL   time.Duration
	TrustProxy bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// QueueConfig is empty when events should only be logged.
type QueueConfig struct {
	RabbitMQURL string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Office   string
}

type WorkerConfig struct {
	OverdueSweepInterval time.Duration
}

// RateConfig limits public lead intake per client IP.
type RateConfig struct {
	Limit  int
	Window time.Duration
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Port:       getEnv("PORT", "8080"),
			Timezone:   getEnv("SCHOOL_TIMEZONE", "Australia/Adelaide"),
			SeedFile:   getEnv("SEED_FILE", ""),
			ToastTTL:   getEnvAsDuration("TOAST_TTL", 3*time.Second),
			TrustProxy: getEnvAsBool("TRUST_PROXY", false),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		Queue: QueueConfig{
			RabbitMQURL: getEnv("RABBITMQ_URL", ""),
		},
		Email: EmailConfig{
			Host:     getEnv("MAIL_HOST", ""),
			Port:     getEnvAsInt("MAIL_PORT", 587),
			User:     getEnv("MAIL_USER", ""),
			Password: getEnv("MAIL_PASS", ""),
			From:     getEnv("MAIL_FROM", "console@cirkidz.local"),
			Office:   getEnv("OFFICE_EMAIL", ""),
		},
		Workers: WorkerConfig{
			OverdueSweepInterval: getEnvAsDuration("OVERDUE_SWEEP_INTERVAL", time.Minute),
		},
		LeadRate: RateConfig{
			Limit:  getEnvAsInt("LEAD_RATE_LIMIT", 10),
			Window: time.Minute,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// BindFlags registers command-line overrides for the most used settings.
// Call Validate again after parsing.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.App.Port, "port", "p", c.App.Port, "HTTP listen port")
	fs.StringVar(&c.App.Timezone, "timezone", c.App.Timezone, "IANA timezone used for dates and week boundaries")
	fs.StringVar(&c.App.SeedFile, "seed", c.App.SeedFile, "YAML seed file (embedded demo data when empty)")
	fs.BoolVar(&c.App.TrustProxy, "trust-proxy", c.App.TrustProxy, "take client addresses from X-Forwarded-For behind a reverse proxy")
	fs.DurationVar(&c.App.ToastTTL, "toast-ttl", c.App.ToastTTL, "how long notifications stay visible")
	fs.StringVar(&c.Queue.RabbitMQURL, "rabbitmq-url", c.Queue.RabbitMQURL, "AMQP URL; events are only logged when empty")
	fs.StringSliceVar(&c.CORS.AllowedOrigins, "cors-origin", c.CORS.AllowedOrigins, "allowed CORS origins")
	fs.DurationVar(&c.Workers.OverdueSweepInterval, "overdue-sweep", c.Workers.OverdueSweepInterval, "overdue follow-up sweep interval")
}

func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("SCHOOL_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	if c.App.ToastTTL <= 0 {
		return fmt.Errorf("TOAST_TTL must be greater than 0")
	}
	if c.Workers.OverdueSweepInterval <= 0 {
		return fmt.Errorf("OVERDUE_SWEEP_INTERVAL must be greater than 0")
	}
	if c.LeadRate.Limit <= 0 {
		return fmt.Errorf("LEAD_RATE_LIMIT must be greater than 0")
	}
	return nil
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

// MailEnabled reports whether enrolment notices can be sent.
func (c *EmailConfig) MailEnabled() bool {
	return c.Host != "" && c.Office != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
