package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variables read by parseEnv. Unset or unparsable values keep the
// current setting.
const (
	EnvHTTPAddr         = "APIKEEPER_HTTP_ADDR"
	EnvGRPCAddr         = "APIKEEPER_GRPC_ADDR"
	EnvDatabaseDriver   = "APIKEEPER_DATABASE_DRIVER"
	EnvDatabaseDSN      = "APIKEEPER_DATABASE_DSN"
	EnvDatabaseMaxConns = "APIKEEPER_DATABASE_MAX_OPEN_CONNS"
	EnvSecretKey        = "APIKEEPER_SECRET_KEY"
	EnvAdminSessionTTL  = "APIKEEPER_ADMIN_SESSION_TTL"
	EnvKeyPrefix        = "APIKEEPER_KEY_PREFIX"
	EnvKeyRandomBytes   = "APIKEEPER_KEY_RANDOM_BYTES"
	EnvKeyValidity      = "APIKEEPER_KEY_VALIDITY"
	EnvKeyCreateTries   = "APIKEEPER_KEY_CREATE_ATTEMPTS"
	EnvStaticDir        = "APIKEEPER_STATIC_DIR"
)

func parseEnv(config *Config) {
	config.EndpointAddrHTTP = getenv(EnvHTTPAddr, config.EndpointAddrHTTP)
	config.EndpointAddrGRPC = getenv(EnvGRPCAddr, config.EndpointAddrGRPC)
	config.DatabaseDriver = getenv(EnvDatabaseDriver, config.DatabaseDriver)
	config.DatabaseDSN = getenv(EnvDatabaseDSN, config.DatabaseDSN)
	config.DatabaseMaxOpenConns = getenvInt(EnvDatabaseMaxConns, config.DatabaseMaxOpenConns)
	config.SecretKey = getenv(EnvSecretKey, config.SecretKey)
	config.AdminSessionValidityDuration = getenvDuration(EnvAdminSessionTTL, config.AdminSessionValidityDuration)
	config.KeyPrefix = getenv(EnvKeyPrefix, config.KeyPrefix)
	config.KeyRandomBytes = getenvInt(EnvKeyRandomBytes, config.KeyRandomBytes)
	config.KeyValidityDuration = getenvDuration(EnvKeyValidity, config.KeyValidityDuration)
	config.KeyCreateAttempts = getenvInt(EnvKeyCreateTries, config.KeyCreateAttempts)
	config.StaticDir = getenv(EnvStaticDir, config.StaticDir)
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
