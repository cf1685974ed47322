package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	t.Setenv(EnvHTTPAddr, ":8081")
	t.Setenv(EnvGRPCAddr, ":9091")
	t.Setenv(EnvDatabaseDriver, "sqlite")
	t.Setenv(EnvDatabaseDSN, "file:apikeeper.db")
	t.Setenv(EnvDatabaseMaxConns, "4")
	t.Setenv(EnvSecretKey, "env-secret")
	t.Setenv(EnvAdminSessionTTL, "2h")
	t.Setenv(EnvKeyPrefix, "ENV_")
	t.Setenv(EnvKeyRandomBytes, "24")
	t.Setenv(EnvKeyValidity, "168h")
	t.Setenv(EnvKeyCreateTries, "2")
	t.Setenv(EnvStaticDir, "/srv/public")

	cfg := defaults()
	parseEnv(cfg)

	want := &Config{
		EndpointAddrHTTP:             ":8081",
		EndpointAddrGRPC:             ":9091",
		DatabaseDriver:               "sqlite",
		DatabaseDSN:                  "file:apikeeper.db",
		DatabaseMaxOpenConns:         4,
		SecretKey:                    "env-secret",
		AdminSessionValidityDuration: 2 * time.Hour,
		KeyPrefix:                    "ENV_",
		KeyRandomBytes:               24,
		KeyValidityDuration:          168 * time.Hour,
		KeyCreateAttempts:            2,
		StaticDir:                    "/srv/public",
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func Test_parseEnv_InvalidValuesIgnored(t *testing.T) {
	t.Setenv(EnvDatabaseMaxConns, "many")
	t.Setenv(EnvKeyValidity, "a while")

	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, defaults(), cfg)
}
