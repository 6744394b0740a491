package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hotel-booking/models"
)

// clearEnv blanks every key Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "CORS_ORIGINS", "DB_DRIVER", "DATABASE_URL", "MYSQL_URL", "DB_HOST", "DB_PORT",
		"DB_USER", "DB_PASS", "DB_NAME", "SQLITE_PATH", "DB_LOG_LEVEL", "JWT_SECRET", "JWT_TTL",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "LOG_LEVEL", "LOG_FORMAT",
		"SMTP_HOST", "SMTP_USER", "SMTP_PASS", "SMTP_FROM_NAME", "SMTP_PORT", "SEED_DATA",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "http://a.example, ,http://b.example")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SEED_DATA", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Auth.TokenTTL != 2*time.Hour || cfg.Redis.DB != 3 || !cfg.App.SeedData {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.App.CorsOrigins) != 2 || cfg.App.CorsOrigins[1] != "http://b.example" {
		t.Errorf("cors = %v", cfg.App.CorsOrigins)
	}
	if cfg.App.Port != "8080" || cfg.SMTP.Port != "587" {
		t.Errorf("defaults lost: port %q smtp %q", cfg.App.Port, cfg.SMTP.Port)
	}
}

func TestLoadYAMLExpandsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOTEL_TEST_SECRET", "from-env")
	t.Setenv("REDIS_ADDR", "redis:6379")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
app:
  port: "9090"
database:
  driver: postgres
  host: db
auth:
  jwt_secret: ${HOTEL_TEST_SECRET}
  token_ttl: 30m
redis:
  address: localhost:6379
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Auth.JWTSecret != "from-env" || cfg.Auth.TokenTTL != 30*time.Minute {
		t.Errorf("auth = %+v", cfg.Auth)
	}
	if cfg.App.Port != "9090" || cfg.Database.Driver != "postgres" || cfg.Database.Host != "db" {
		t.Errorf("yaml values not applied: %+v", cfg)
	}
	// environment wins over the file
	if cfg.Redis.Address != "redis:6379" {
		t.Errorf("redis address = %q", cfg.Redis.Address)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing secret", map[string]string{}, "JWT_SECRET"},
		{"bad driver", map[string]string{"JWT_SECRET": "x", "DB_DRIVER": "oracle"}, "DB_DRIVER"},
		{"bad ttl", map[string]string{"JWT_SECRET": "x", "JWT_TTL": "soon"}, "JWT_TTL"},
		{"bad redis db", map[string]string{"JWT_SECRET": "x", "REDIS_DB": "one"}, "REDIS_DB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	dsn, err := mysqlDSNFromURL("mysql://root:pw@db.internal/hotel_db")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"root:pw@tcp(db.internal:3306)/hotel_db?", "parseTime=True", "loc=UTC", "charset=utf8mb4"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("dsn %q missing %q", dsn, want)
		}
	}

	if _, err := mysqlDSNFromURL("mysql://root@db/"); err == nil {
		t.Error("expected error for missing database name")
	}

	dsn, _ = resolveMySQLDSN(DatabaseConfig{User: "u", Password: "p", Host: "h", Port: "3307", Name: "n"})
	if !strings.HasPrefix(dsn, "u:p@tcp(h:3307)/n?") {
		t.Errorf("dsn = %q", dsn)
	}
	if got := resolvePostgresDSN(DatabaseConfig{Host: "h", Port: "3306", User: "u", Name: "n"}); !strings.Contains(got, "port=5432") {
		t.Errorf("postgres dsn = %q", got)
	}
}

func TestConnectSQLiteAndSeed(t *testing.T) {
	db, err := ConnectDatabase(DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "hotel.db"),
		LogLevel:   "silent",
	})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { sqlDB.Close() })

	for i := 0; i < 2; i++ {
		if err := SeedDatabase(db); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	var hotels, rooms, users, admins int64
	db.Model(&models.Hotel{}).Count(&hotels)
	db.Model(&models.Room{}).Count(&rooms)
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.User{}).Where("is_admin = ?", true).Count(&admins)
	if hotels != 6 || rooms != 72 || users != 6 || admins != 1 {
		t.Errorf("seeded hotels=%d rooms=%d users=%d admins=%d", hotels, rooms, users, admins)
	}
}
