package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"hotel-booking/cache"
	"hotel-booking/utils"
)

type Config struct {
	App      AppConfig         `yaml:"app"`
	Database DatabaseConfig    `yaml:"database"`
	Auth     AuthConfig        `yaml:"auth"`
	Redis    cache.RedisConfig `yaml:"redis"`
	Logging  LoggingConfig     `yaml:"logging"`
	SMTP     utils.SMTPConfig  `yaml:"smtp"`
}

type AppConfig struct {
	Port        string   `yaml:"port"`
	CorsOrigins []string `yaml:"cors_origins"`
	SeedData    bool     `yaml:"seed_data"`
}

type DatabaseConfig struct {
	Driver     string `yaml:"driver"` // mysql | postgres | sqlite
	URL        string `yaml:"url"`
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	SQLitePath string `yaml:"sqlite_path"`
	LogLevel   string `yaml:"log_level"` // gorm logger: silent | error | warn | info
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

func defaults() Config {
	return Config{
		App: AppConfig{Port: "8080"},
		Database: DatabaseConfig{
			Driver:     "mysql",
			Host:       "127.0.0.1",
			Port:       "3306",
			User:       "root",
			Name:       "hotel_db",
			SQLitePath: "hotel.db",
			LogLevel:   "warn",
		},
		Auth:    AuthConfig{TokenTTL: 24 * time.Hour},
		Redis:   cache.RedisConfig{PoolSize: 10},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		SMTP:    utils.SMTPConfig{Port: "587", FromName: "Hotel Booking"},
	}
}

// Load builds the configuration: defaults, then the optional YAML file at
// path (with ${VAR} expansion), then environment variables. A missing .env
// is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env not found; continuing with environment variables")
	}

	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		expanded := []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.App.Port, "PORT")
	if raw, ok := lookup("CORS_ORIGINS"); ok {
		c.App.CorsOrigins = splitList(raw)
	}

	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Database.URL, "MYSQL_URL")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASS")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.SQLitePath, "SQLITE_PATH")
	setString(&c.Database.LogLevel, "DB_LOG_LEVEL")

	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	if raw, ok := lookup("JWT_TTL"); ok {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("JWT_TTL: %w", err)
		}
		c.Auth.TokenTTL = d
	}

	setString(&c.Redis.Address, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	if err := setInt(&c.Redis.DB, "REDIS_DB"); err != nil {
		return err
	}

	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Logging.Format, "LOG_FORMAT")

	setString(&c.SMTP.Host, "SMTP_HOST")
	setString(&c.SMTP.Username, "SMTP_USER")
	setString(&c.SMTP.Password, "SMTP_PASS")
	setString(&c.SMTP.FromName, "SMTP_FROM_NAME")
	setString(&c.SMTP.Port, "SMTP_PORT")

	if raw, ok := lookup("SEED_DATA"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("SEED_DATA: %w", err)
		}
		c.App.SeedData = v
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want mysql, postgres or sqlite)", c.Database.Driver)
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.App.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	return nil
}

// SetupLogging configures the package-level logrus logger.
func SetupLogging(cfg LoggingConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("unknown log level %q, using info", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
