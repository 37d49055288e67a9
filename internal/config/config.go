package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the nclint configuration.
type Config struct {
	Provider       string        `json:"provider"`
	Model          string        `json:"model"`
	RulesFile      string        `json:"rulesFile"`
	Format         string        `json:"format"`
	TimeoutSeconds int           `json:"timeoutSeconds"`
	Cache          CacheConfig   `json:"cache"`
	Privacy        PrivacyConfig `json:"privacy"`
}

// CacheConfig controls response caching.
type CacheConfig struct {
	Enabled    bool   `json:"enabled"`
	Dir        string `json:"dir,omitempty"`
	TTLSeconds int    `json:"ttlSeconds"`
}

// PrivacyConfig controls redaction of the commit text before it is sent to
// the backend.
type PrivacyConfig struct {
	RedactSecrets bool `json:"redactSecrets"`
}

// Default returns a Config with all defaults applied. TimeoutSeconds of zero
// means no deadline on the completion call.
func Default() Config {
	return Config{
		Provider:       "ollama",
		Model:          "llama3",
		RulesFile:      "rules.txt",
		Format:         "text",
		TimeoutSeconds: 0,
		Cache: CacheConfig{
			Enabled:    false,
			TTLSeconds: 86400,
		},
		Privacy: PrivacyConfig{
			RedactSecrets: true,
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for nclint.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nclint"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "nclint"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "nclint"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "nclint"), nil
	default:
		return filepath.Join(home, ".config", "nclint"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only non-zero values
// should be set). Resolved once per invocation and passed down.
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg Config
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
		mergeFile(&cfg, fileCfg)
		mergeFileBools(&cfg, data)
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.RulesFile != "" {
		dst.RulesFile = src.RulesFile
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.TimeoutSeconds > 0 {
		dst.TimeoutSeconds = src.TimeoutSeconds
	}
	// True-wins for bools here; an explicit false in the file is applied by
	// mergeFileBools, which can tell unset apart from false.
	dst.Cache.Enabled = src.Cache.Enabled || dst.Cache.Enabled
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.TTLSeconds > 0 {
		dst.Cache.TTLSeconds = src.Cache.TTLSeconds
	}
}

// mergeFileBools applies boolean fields the file explicitly sets. A plain
// Config unmarshal cannot distinguish an absent bool from false, so the raw
// JSON is re-read with pointer fields: nil means the key was absent and the
// default stands.
func mergeFileBools(dst *Config, data []byte) {
	var explicit struct {
		Cache struct {
			Enabled *bool `json:"enabled"`
		} `json:"cache"`
		Privacy struct {
			RedactSecrets *bool `json:"redactSecrets"`
		} `json:"privacy"`
	}
	if err := json.Unmarshal(data, &explicit); err != nil {
		return
	}
	if explicit.Cache.Enabled != nil {
		dst.Cache.Enabled = *explicit.Cache.Enabled
	}
	if explicit.Privacy.RedactSecrets != nil {
		dst.Privacy.RedactSecrets = *explicit.Privacy.RedactSecrets
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("NCLINT_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("NCLINT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("NCLINT_RULES_FILE"); v != "" {
		cfg.RulesFile = v
	}
	if v := os.Getenv("NCLINT_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("NCLINT_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["provider"]; ok && v != "" {
		cfg.Provider = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["rulesFile"]; ok && v != "" {
		cfg.RulesFile = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["timeoutSeconds"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
}

// SetField sets a single config field by key name. Returns an error if the
// key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "rulesFile":
		cfg.RulesFile = value
	case "format":
		cfg.Format = value
	case "timeoutSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeoutSeconds must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	case "cache.enabled":
		cfg.Cache.Enabled = value == "true"
	case "cache.dir":
		cfg.Cache.Dir = value
	case "cache.ttlSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache.ttlSeconds must be an integer: %w", err)
		}
		cfg.Cache.TTLSeconds = n
	case "privacy.redactSecrets":
		cfg.Privacy.RedactSecrets = value == "true"
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
