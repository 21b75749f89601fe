package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	CMR    CMRConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CMRConfig holds CMR extraction settings.
type CMRConfig struct {
	// Extractor selects the text extractor: "mock" or "http".
	Extractor         string        `mapstructure:"extractor"`
	OCREndpoint       string        `mapstructure:"ocr_endpoint"`
	OCRTimeout        time.Duration `mapstructure:"ocr_timeout"`
	MaxDocumentSizeMB int64         `mapstructure:"max_document_size_mb"`
	ArchivePrefix     string        `mapstructure:"archive_prefix"`
}

// MaxDocumentBytes returns the upload limit in bytes.
func (c *CMRConfig) MaxDocumentBytes() int64 {
	return c.MaxDocumentSizeMB << 20
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds object storage settings for archived CMR originals.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the FLOTA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FLOTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "flota")
	v.SetDefault("db.password", "flota_secret")
	v.SetDefault("db.name", "flota_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "eu-west-1")
	v.SetDefault("s3.bucket", "flota-cmr")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// CMR defaults
	v.SetDefault("cmr.extractor", "mock")
	v.SetDefault("cmr.ocr_endpoint", "http://localhost:8000")
	v.SetDefault("cmr.ocr_timeout", "60s")
	v.SetDefault("cmr.max_document_size_mb", 10)
	v.SetDefault("cmr.archive_prefix", "cmr")

	envBindings := map[string]string{
		"server.port":              "FLOTA_SERVER_PORT",
		"server.read_timeout":      "FLOTA_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "FLOTA_SERVER_WRITE_TIMEOUT",
		"server.environment":       "FLOTA_SERVER_ENVIRONMENT",
		"db.host":                  "FLOTA_DB_HOST",
		"db.port":                  "FLOTA_DB_PORT",
		"db.user":                  "FLOTA_DB_USER",
		"db.password":              "FLOTA_DB_PASSWORD",
		"db.name":                  "FLOTA_DB_NAME",
		"db.sslmode":               "FLOTA_DB_SSLMODE",
		"db.max_open":              "FLOTA_DB_MAX_OPEN",
		"db.max_idle":              "FLOTA_DB_MAX_IDLE",
		"s3.region":                "FLOTA_S3_REGION",
		"s3.bucket":                "FLOTA_S3_BUCKET",
		"s3.endpoint":              "FLOTA_S3_ENDPOINT",
		"s3.access_key":            "FLOTA_S3_ACCESS_KEY",
		"s3.secret_key":            "FLOTA_S3_SECRET_KEY",
		"s3.presign_expiry":        "FLOTA_S3_PRESIGN_EXPIRY",
		"log.level":                "FLOTA_LOG_LEVEL",
		"log.format":               "FLOTA_LOG_FORMAT",
		"cors.allowed_origins":     "FLOTA_CORS_ALLOWED_ORIGINS",
		"cmr.extractor":            "FLOTA_CMR_EXTRACTOR",
		"cmr.ocr_endpoint":         "FLOTA_CMR_OCR_ENDPOINT",
		"cmr.ocr_timeout":          "FLOTA_CMR_OCR_TIMEOUT",
		"cmr.max_document_size_mb": "FLOTA_CMR_MAX_DOCUMENT_SIZE_MB",
		"cmr.archive_prefix":       "FLOTA_CMR_ARCHIVE_PREFIX",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Container platforms set PORT. Use it unless FLOTA_SERVER_PORT is set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FLOTA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.CMR = CMRConfig{
		Extractor:         strings.ToLower(v.GetString("cmr.extractor")),
		OCREndpoint:       v.GetString("cmr.ocr_endpoint"),
		OCRTimeout:        v.GetDuration("cmr.ocr_timeout"),
		MaxDocumentSizeMB: v.GetInt64("cmr.max_document_size_mb"),
		ArchivePrefix:     v.GetString("cmr.archive_prefix"),
	}
	if cfg.CMR.Extractor != "mock" && cfg.CMR.Extractor != "http" {
		return nil, fmt.Errorf("unsupported cmr extractor %q", cfg.CMR.Extractor)
	}
	if cfg.CMR.MaxDocumentSizeMB <= 0 {
		return nil, fmt.Errorf("cmr.max_document_size_mb must be positive, got %d", cfg.CMR.MaxDocumentSizeMB)
	}

	return cfg, nil
}
