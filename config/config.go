package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// DefaultRPCURL is where a local spaced listens by default.
	DefaultRPCURL  = "http://127.0.0.1:7225"
	DefaultNetwork = "mainnet"

	fileName = ".spaces-wallet-config.json"

	EnvRPCURL = "SPACED_RPC_URL"
	EnvPath   = "SPACES_WALLET_CONFIG"
)

// Config represents the application configuration
type Config struct {
	SpacedRPCURL string `json:"spaced_rpc_url,omitempty"`
	Network      string `json:"network"`
	Wallet       string `json:"wallet,omitempty"`
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		SpacedRPCURL: DefaultRPCURL,
		Network:      DefaultNetwork,
	}
}

// LoadEnv loads a .env file from the working directory when one exists.
func LoadEnv() {
	_ = godotenv.Load()
}

// Path resolves the config location: SPACES_WALLET_CONFIG, else the home directory.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(home, fileName)
}

// Load reads the config from the specified path
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Network == "" {
		cfg.Network = DefaultNetwork
	}
	return cfg, nil
}

// LoadOrDefault loads config from path, falling back to defaults when the file is
// missing. Environment overrides are applied either way.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return ApplyEnv(DefaultConfig()), err
		}
		cfg = DefaultConfig()
	}
	return ApplyEnv(cfg), nil
}

// ApplyEnv overrides the endpoint with SPACED_RPC_URL when set.
func ApplyEnv(cfg Config) Config {
	if u := os.Getenv(EnvRPCURL); u != "" {
		cfg.SpacedRPCURL = u
	}
	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create config dir %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrapf(err, "write config %s", path)
	}
	return nil
}

// Remove deletes the config file. A missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "remove config %s", path)
	}
	return nil
}
