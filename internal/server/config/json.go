package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/apikeeper/internal/flagx"
	"github.com/dmitrijs2005/apikeeper/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept either a
// duration string such as "720h" or integer nanoseconds. Absent fields leave
// the current value untouched.
type JsonConfig struct {
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDriver               string         `json:"database_driver"`
	DatabaseDSN                  string         `json:"database_dsn"`
	DatabaseMaxOpenConns         int            `json:"database_max_open_conns"`
	SecretKey                    string         `json:"secret_key"`
	AdminSessionValidityDuration timex.Duration `json:"admin_session_validity_duration"`
	KeyPrefix                    string         `json:"key_prefix"`
	KeyRandomBytes               int            `json:"key_random_bytes"`
	KeyValidityDuration          timex.Duration `json:"key_validity_duration"`
	KeyCreateAttempts            int            `json:"key_create_attempts"`
	StaticDir                    string         `json:"static_dir"`
}

// parseJson overlays the file named by -c / -config onto config. Nothing is
// loaded when neither flag is given. An unreadable or invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setInt(&config.DatabaseMaxOpenConns, c.DatabaseMaxOpenConns)
	setString(&config.SecretKey, c.SecretKey)
	if c.AdminSessionValidityDuration.Duration != 0 {
		config.AdminSessionValidityDuration = c.AdminSessionValidityDuration.Duration
	}
	setString(&config.KeyPrefix, c.KeyPrefix)
	setInt(&config.KeyRandomBytes, c.KeyRandomBytes)
	if c.KeyValidityDuration.Duration != 0 {
		config.KeyValidityDuration = c.KeyValidityDuration.Duration
	}
	setInt(&config.KeyCreateAttempts, c.KeyCreateAttempts)
	setString(&config.StaticDir, c.StaticDir)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
