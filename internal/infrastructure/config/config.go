package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port    string `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

// AWSConfig is shared by DynamoDB and S3. Endpoints are only set for local
// emulators (dynamodb-local, MinIO).
type AWSConfig struct {
	Region           string `yaml:"region"`
	AccessKeyID      string `yaml:"access_key_id"`
	SecretAccessKey  string `yaml:"secret_access_key"`
	DynamoDBEndpoint string `yaml:"dynamodb_endpoint"`
	S3Endpoint       string `yaml:"s3_endpoint"`
}

type StorageConfig struct {
	ProjectFilesBucket string `yaml:"project_files_bucket"`
	PortfolioBucket    string `yaml:"portfolio_bucket"`
	PublicBaseURL      string `yaml:"public_base_url"`
	MaxUploadBytes     int64  `yaml:"max_upload_bytes"`
}

type CheckoutConfig struct {
	AccessToken string `yaml:"access_token"`
	Mock        bool   `yaml:"mock"`
}

type TransferConfig struct {
	BaseURL               string        `yaml:"base_url"`
	SecretKey             string        `yaml:"secret_key"`
	PlatformRecipientCode string        `yaml:"platform_recipient_code"`
	Timeout               time.Duration `yaml:"timeout"`
}

type MQConfig struct {
	URL string `yaml:"url"`
}

type RedisConfig struct {
	Addr      string        `yaml:"addr"`
	Password  string        `yaml:"password"`
	DB        int           `yaml:"db"`
	DedupeTTL time.Duration `yaml:"dedupe_ttl"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	AWS      AWSConfig      `yaml:"aws"`
	Storage  StorageConfig  `yaml:"storage"`
	Checkout CheckoutConfig `yaml:"checkout"`
	Transfer TransferConfig `yaml:"transfer"`
	MQ       MQConfig       `yaml:"mq"`
	Redis    RedisConfig    `yaml:"redis"`
	LogLevel string         `yaml:"log_level"`
}

// Default is the local docker-compose setup.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: "8080", GinMode: "release"},
		Auth:   AuthConfig{TokenTTL: 24 * time.Hour},
		AWS: AWSConfig{
			Region:          "us-east-1",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
		},
		Storage: StorageConfig{
			ProjectFilesBucket: "project-files",
			PortfolioBucket:    "portfolio",
			MaxUploadBytes:     50 << 20,
		},
		Transfer: TransferConfig{
			BaseURL: "https://api.paystack.co",
			Timeout: 15 * time.Second,
		},
		Redis:    RedisConfig{DedupeTTL: 24 * time.Hour},
		LogLevel: "info",
	}
}

// Load reads the YAML file named by CONFIG_FILE, when set, over the defaults
// and then applies environment overrides. Environment always wins.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	OverrideFromEnv(&cfg)
	return cfg, nil
}

func OverrideFromEnv(cfg *Config) {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.GinMode, "GIN_MODE")

	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setDuration(&cfg.Auth.TokenTTL, "JWT_TTL")

	setString(&cfg.AWS.Region, "AWS_REGION")
	setString(&cfg.AWS.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&cfg.AWS.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	setString(&cfg.AWS.DynamoDBEndpoint, "DYNAMODB_ENDPOINT")
	setString(&cfg.AWS.S3Endpoint, "S3_ENDPOINT")

	setString(&cfg.Storage.ProjectFilesBucket, "PROJECT_FILES_BUCKET")
	setString(&cfg.Storage.PortfolioBucket, "PORTFOLIO_BUCKET")
	setString(&cfg.Storage.PublicBaseURL, "STORAGE_PUBLIC_BASE_URL")
	setInt64(&cfg.Storage.MaxUploadBytes, "MAX_UPLOAD_BYTES")

	setString(&cfg.Checkout.AccessToken, "MERCADOPAGO_ACCESS_TOKEN")
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			cfg.Checkout.Mock = isTruthy(v)
		}
	}

	setString(&cfg.Transfer.BaseURL, "PAYSTACK_BASE_URL")
	setString(&cfg.Transfer.SecretKey, "PAYSTACK_SECRET_KEY")
	setString(&cfg.Transfer.PlatformRecipientCode, "PAYSTACK_PLATFORM_RECIPIENT")
	setDuration(&cfg.Transfer.Timeout, "PAYSTACK_TIMEOUT")

	setString(&cfg.MQ.URL, "MQ_URL")

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = n
		}
	}
	setDuration(&cfg.Redis.DedupeTTL, "REDIS_DEDUPE_TTL")

	setString(&cfg.LogLevel, "LOG_LEVEL")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
