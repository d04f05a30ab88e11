package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port     int
	LogLevel slog.Level

	StoreType   string
	DataDir     string
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool

	StaticDir    string
	SecureCookie bool

	RateLimitRPS   float64
	RateLimitBurst int
}

// ParseFlags reads flags, then fills anything unset from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var logLevel string

	fs := flag.NewFlagSet("food-selector", flag.ContinueOnError)

	// Network config
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Storage
	fs.StringVar(&cfg.StoreType, "s", "", "Store type (memory, file, sqlite, postgres, redis, minio)")
	fs.StringVar(&cfg.DataDir, "data-dir", "", "Directory for the file store")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite or postgres)")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", "", "Redis address host:port")
	fs.IntVar(&cfg.RedisDB, "redis-db", -1, "Redis database number")
	fs.StringVar(&cfg.MinIOEndpoint, "minio-endpoint", "", "MinIO endpoint host:port")
	fs.StringVar(&cfg.MinIOBucket, "minio-bucket", "", "MinIO bucket")

	// Frontend
	fs.StringVar(&cfg.StaticDir, "static", "", "Directory of static frontend files")
	fs.BoolVar(&cfg.SecureCookie, "secure-cookie", false, "Mark the visitor cookie Secure")

	// Rate limiting
	fs.Float64Var(&cfg.RateLimitRPS, "rate-limit", -1, "Mutations per second per client IP (0 disables)")
	fs.IntVar(&cfg.RateLimitBurst, "rate-burst", 0, "Rate limit burst size")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = "file"
		}
	}
	cfg.StoreType = strings.ToLower(cfg.StoreType)

	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
		if cfg.DataDir == "" {
			cfg.DataDir = "data"
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}
	// Secrets only from env
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if cfg.RedisDB < 0 {
		cfg.RedisDB = 0
		if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
			db, err := strconv.Atoi(dbStr)
			if err != nil {
				return Config{}, errors.New("invalid REDIS_DB env variable")
			}
			cfg.RedisDB = db
		}
	}

	if cfg.MinIOEndpoint == "" {
		cfg.MinIOEndpoint = os.Getenv("MINIO_ENDPOINT")
	}
	if cfg.MinIOBucket == "" {
		cfg.MinIOBucket = os.Getenv("MINIO_BUCKET")
		if cfg.MinIOBucket == "" {
			cfg.MinIOBucket = "food-selector"
		}
	}
	cfg.MinIOAccessKey = os.Getenv("MINIO_ACCESS_KEY")
	cfg.MinIOSecretKey = os.Getenv("MINIO_SECRET_KEY")
	cfg.MinIOUseSSL = os.Getenv("MINIO_USE_SSL") == "true"

	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
	}
	if !cfg.SecureCookie {
		cfg.SecureCookie = os.Getenv("SECURE_COOKIE") == "true"
	}

	if cfg.RateLimitRPS < 0 {
		cfg.RateLimitRPS = 5 // default
		if rpsStr := os.Getenv("RATE_LIMIT_RPS"); rpsStr != "" {
			rps, err := strconv.ParseFloat(rpsStr, 64)
			if err != nil {
				return Config{}, errors.New("invalid RATE_LIMIT_RPS env variable")
			}
			cfg.RateLimitRPS = rps
		}
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 10 // default
		if burstStr := os.Getenv("RATE_LIMIT_BURST"); burstStr != "" {
			burst, err := strconv.Atoi(burstStr)
			if err != nil {
				return Config{}, errors.New("invalid RATE_LIMIT_BURST env variable")
			}
			cfg.RateLimitBurst = burst
		}
	}

	// Backend-specific requirements
	switch cfg.StoreType {
	case "memory", "file":
	case "sqlite", "postgres":
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	case "redis":
		if cfg.RedisAddr == "" {
			return Config{}, errors.New("redis address required (use -redis-addr or REDIS_ADDR env)")
		}
	case "minio":
		if cfg.MinIOEndpoint == "" {
			return Config{}, errors.New("minio endpoint required (use -minio-endpoint or MINIO_ENDPOINT env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}

	return cfg, nil
}
