package config

type ServerConfig struct {
	Addr            string `yaml:"addr" validate:"required"`
	ShutdownTimeout string `yaml:"shutdown_timeout" validate:"omitempty,duration"`
	SignInPath      string `yaml:"sign_in_path" validate:"required,startswith=/"`
}

type DatabaseConfig struct {
	DSN     string `yaml:"dsn" validate:"required"`
	Migrate bool   `yaml:"migrate"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" validate:"required,hostname_port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"gte=0"`
}

type S3Config struct {
	Region    string `yaml:"region" validate:"required"`
	Endpoint  string `yaml:"endpoint" validate:"required_if=Local true"`
	Local     bool   `yaml:"local"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// PlatformConfig : параметры подключения к платформе (endpoint, проект, бакет, коллекции, секрет)
type PlatformConfig struct {
	Endpoint             string `yaml:"endpoint" validate:"required,url"`
	ProjectID            string `yaml:"project_id" validate:"required"`
	BucketID             string `yaml:"bucket_id" validate:"required"`
	UsersCollectionID    string `yaml:"users_collection_id" validate:"required,alphanum"`
	FilesCollectionID    string `yaml:"files_collection_id" validate:"required,alphanum"`
	AccountsCollectionID string `yaml:"accounts_collection_id" validate:"required,alphanum"`
	SecretKey            string `yaml:"secret_key"`
	AvatarPlaceholderURL string `yaml:"avatar_placeholder_url" validate:"omitempty,url"`
}

type SessionConfig struct {
	TTL    string `yaml:"ttl" validate:"required,duration"`
	Issuer string `yaml:"issuer"`
}

type OTPConfig struct {
	Length      int    `yaml:"length" validate:"gte=4,lte=10"`
	TTL         string `yaml:"ttl" validate:"required,duration"`
	PerMinute   int    `yaml:"per_minute" validate:"gte=1"`
	MaxAttempts int    `yaml:"max_attempts" validate:"gte=1"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" validate:"omitempty,gt=0,lte=65535"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from" validate:"omitempty,email"`
	FromName string `yaml:"from_name"`
	TLS      bool   `yaml:"tls"`
}

type LoggingConfig struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
	Compress   bool   `yaml:"compress"`
}

type LimitsConfig struct {
	MaxUploadBytes int64 `yaml:"max_upload_bytes" validate:"gt=0"`
	StorageQuota   int64 `yaml:"storage_quota" validate:"gt=0"`
	CacheTTL       int   `yaml:"cache_ttl" validate:"gte=0"`
}

type CookieConfig struct {
	Name   string `yaml:"name" validate:"required"`
	Secure bool   `yaml:"secure"`
}
