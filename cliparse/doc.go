// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

main loads a .env file (godotenv) before calling it, so values there behave
like ordinary environment variables.

# CLI Flags and Environment Variables

CLI flags take precedence over environment variables:

	-p               PORT              Server port (default: 3000)
	-log-level       LOG_LEVEL         debug, info, warn, error (default: info)
	-s               STORE_TYPE        memory, file, sqlite, postgres, redis, minio (default: file)
	-data-dir        DATA_DIR          File store directory (default: data)
	-d               DATABASE_URL      SQLite path/DSN or PostgreSQL URL
	-redis-addr      REDIS_ADDR        Redis host:port
	-redis-db        REDIS_DB          Redis database number
	-minio-endpoint  MINIO_ENDPOINT    MinIO host:port
	-minio-bucket    MINIO_BUCKET      MinIO bucket (default: food-selector)
	-static          STATIC_DIR        Frontend directory served at /
	-secure-cookie   SECURE_COOKIE     Mark the visitor cookie Secure
	-rate-limit      RATE_LIMIT_RPS    Mutations/second per client IP (default: 5, 0 disables)
	-rate-burst      RATE_LIMIT_BURST  Burst size (default: 10)

Secrets are read from the environment only:

	REDIS_PASSWORD, MINIO_ACCESS_KEY, MINIO_SECRET_KEY, MINIO_USE_SSL

# Validation

ParseFlags returns an error when the chosen store is missing what it needs:

  - sqlite, postgres: DATABASE_URL
  - redis: REDIS_ADDR
  - minio: MINIO_ENDPOINT
*/
package cliparse
