package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort       = "8080"
	defaultDatabase   = "workerconnect.db"
	defaultJWTSecret  = "change-me-jwt-secret"
	defaultJWTTTL     = "0" // 0 = tokens without embedded expiry
	defaultOTPPepper  = "change-me-otp-pepper"
	defaultOTPTTL     = "10m"
	defaultUploadDir  = "./uploads"
	defaultStaticBase = "/static/uploads"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	OTPPepper string
	OTPTTL    time.Duration

	// Media storage. StorageDriver is "local" or "s3".
	StorageDriver string
	UploadDir     string
	StaticBase    string
	S3Region      string
	S3Bucket      string
	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string
	S3PublicBase  string

	// Email. When SendGridAPIKey is empty the dev console mailer is used.
	SendGridAPIKey  string
	SendGridSandbox bool
	MailFromName    string
	MailFromAddress string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabase)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.OTPPepper = strings.TrimSpace(getEnv("OTP_PEPPER", defaultOTPPepper))

	var err error
	if cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL); err != nil {
		return nil, err
	}
	if cfg.OTPTTL, err = parseDurationEnv("OTP_TTL", defaultOTPTTL); err != nil {
		return nil, err
	}

	cfg.StorageDriver = strings.ToLower(getEnv("STORAGE_DRIVER", "local"))
	cfg.UploadDir = getEnv("UPLOAD_DIR", defaultUploadDir)
	cfg.StaticBase = getEnv("STATIC_BASE", defaultStaticBase)
	cfg.S3Region = getEnv("S3_REGION", "us-east-1")
	cfg.S3Bucket = os.Getenv("S3_BUCKET")
	cfg.S3Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.S3AccessKey = os.Getenv("S3_ACCESS_KEY")
	cfg.S3SecretKey = os.Getenv("S3_SECRET_KEY")
	cfg.S3PublicBase = os.Getenv("S3_PUBLIC_BASE")

	cfg.SendGridAPIKey = strings.TrimSpace(os.Getenv("SENDGRID_API_KEY"))
	cfg.SendGridSandbox = parseBoolEnv("SENDGRID_SANDBOX", "false")
	cfg.MailFromName = getEnv("MAIL_FROM_NAME", "WorkerConnect")
	cfg.MailFromAddress = getEnv("MAIL_FROM_ADDRESS", "no-reply@workerconnect.local")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.OTPTTL <= 0 {
		return fmt.Errorf("OTP_TTL must be > 0")
	}
	if cfg.JWTTTL < 0 {
		return fmt.Errorf("JWT_TTL must be >= 0")
	}
	if cfg.StorageDriver != "local" && cfg.StorageDriver != "s3" {
		return fmt.Errorf("STORAGE_DRIVER must be local or s3, got %q", cfg.StorageDriver)
	}
	if cfg.StorageDriver == "s3" {
		if cfg.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
		if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
			return fmt.Errorf("S3_ACCESS_KEY and S3_SECRET_KEY are required when STORAGE_DRIVER=s3")
		}
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod JWT_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.OTPPepper, defaultOTPPepper) {
			return fmt.Errorf("in prod OTP_PEPPER must be set and not default")
		}
		if cfg.SendGridAPIKey == "" {
			return fmt.Errorf("in prod SENDGRID_API_KEY must be set")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	if value == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
