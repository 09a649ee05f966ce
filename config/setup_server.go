package config

import (
	"fmt"
	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
	"net/http"
	"os"
	"time"
)

type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	S3       S3Config       `yaml:"s3"`
	Platform PlatformConfig `yaml:"platform"`
	Session  SessionConfig  `yaml:"session"`
	OTP      OTPConfig      `yaml:"otp"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Logging  LoggingConfig  `yaml:"logging"`
	Limits   LimitsConfig   `yaml:"limits"`
	Cookie   CookieConfig   `yaml:"cookie"`
}

// LoadConfig : читает yaml-файл, подставляет переменные окружения ${VAR}, применяет значения по умолчанию и валидирует
func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(file)
}

// ParseConfig : разбирает содержимое конфигурации
func ParseConfig(data []byte) (*AppConfig, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("конфигурация невалидна: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults : заполняет незаданные поля
func ApplyDefaults(cfg *AppConfig) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.ShutdownTimeout == "" {
		cfg.Server.ShutdownTimeout = "5s"
	}
	if cfg.Server.SignInPath == "" {
		cfg.Server.SignInPath = "/sign-in"
	}
	if cfg.Platform.UsersCollectionID == "" {
		cfg.Platform.UsersCollectionID = "users"
	}
	if cfg.Platform.FilesCollectionID == "" {
		cfg.Platform.FilesCollectionID = "files"
	}
	if cfg.Platform.AccountsCollectionID == "" {
		cfg.Platform.AccountsCollectionID = "accounts"
	}
	if cfg.Session.TTL == "" {
		cfg.Session.TTL = "720h"
	}
	if cfg.Session.Issuer == "" {
		cfg.Session.Issuer = "file-storage-server"
	}
	if cfg.OTP.Length == 0 {
		cfg.OTP.Length = 6
	}
	if cfg.OTP.TTL == "" {
		cfg.OTP.TTL = "15m"
	}
	if cfg.OTP.PerMinute == 0 {
		cfg.OTP.PerMinute = 5
	}
	if cfg.OTP.MaxAttempts == 0 {
		cfg.OTP.MaxAttempts = 5
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Limits.MaxUploadBytes == 0 {
		cfg.Limits.MaxUploadBytes = 100 << 20
	}
	if cfg.Limits.StorageQuota == 0 {
		cfg.Limits.StorageQuota = 2 << 30
	}
	if cfg.Limits.CacheTTL == 0 {
		cfg.Limits.CacheTTL = 300
	}
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = "session"
	}
}

// Duration : парсит строковую длительность из конфигурации, значения уже провалидированы
func Duration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(cfg *DatabaseConfig) (*Database, error) {
	database, err := NewDatabaseConnection("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.Migrate {
		if err := RunMigrations(database); err != nil {
			database.Close()
			return nil, err
		}
	}

	return database, nil
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
