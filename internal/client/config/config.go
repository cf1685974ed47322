// Package config resolves CLI settings from flags, APIKEEPER_* environment
// variables and an optional YAML file, and persists the admin session token.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	KeyServer  = "server"
	KeyToken   = "token"
	KeyTimeout = "timeout"

	EnvPrefix       = "APIKEEPER"
	DefaultFileName = ".apikeeper.yaml"
)

// Config holds runtime settings for the APIKeeper CLI. File is where the
// session token is saved after an admin login.
type Config struct {
	ServerEndpointAddr string
	Token              string
	Timeout            time.Duration
	File               string
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyServer, "127.0.0.1:50051")
	v.SetDefault(KeyToken, "")
	v.SetDefault(KeyTimeout, 10*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultPath is $HOME/.apikeeper.yaml, or the file in the working directory
// when no home directory is known.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, DefaultFileName)
}

// Load reads cfgFile (DefaultPath when empty) into v and returns the merged
// settings. A missing file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile == "" {
		cfgFile = DefaultPath()
	}
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
	}

	c := &Config{
		ServerEndpointAddr: v.GetString(KeyServer),
		Token:              v.GetString(KeyToken),
		Timeout:            v.GetDuration(KeyTimeout),
		File:               cfgFile,
	}
	if c.ServerEndpointAddr == "" {
		return nil, errors.New("server address is empty")
	}
	if c.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return c, nil
}

// SaveToken stores token in the YAML file at path, keeping the other keys
// already there. An empty token clears the session.
func SaveToken(path, token string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	v.Set(KeyToken, token)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return os.Chmod(path, 0o600)
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
