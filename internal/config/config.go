package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"bustrip/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version     int         `toml:"version"`
	API         APISettings `toml:"api"`
	Search      Search      `toml:"search"`
	OTP         OTP         `toml:"otp"`
	Storage     Storage     `toml:"storage"`
	Log         Log         `toml:"log"`
	Preferences Preferences `toml:"preferences"`
}

// APISettings points the client at the booking backend
type APISettings struct {
	BaseURL   string `toml:"base_url"`
	TimeoutMS int    `toml:"timeout_ms"`
}

// Search tunes the city lookup
type Search struct {
	DebounceMS      int `toml:"debounce_ms"`
	CacheTTLSeconds int `toml:"cache_ttl_seconds"`
}

// OTP configures the verification code input
type OTP struct {
	Length     int  `toml:"length"`
	AutoVerify bool `toml:"auto_verify"`
}

// Storage locates the local key-value database
type Storage struct {
	Path string `toml:"path"`
}

// Log locates the log file
type Log struct {
	File string `toml:"file"`
}

// Preferences are the onboarding choices
type Preferences struct {
	Country  string `toml:"country"`
	Language string `toml:"language"`
}

// Timeout returns the HTTP timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutMS) * time.Millisecond
}

// Debounce returns the search quiet period
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Search.DebounceMS) * time.Millisecond
}

// CacheTTL returns how long city lookups stay cached
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Search.CacheTTLSeconds) * time.Second
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultDir returns the bustrip directory under the user config dir
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "bustrip")
}

// NewConfigService creates a config service for path; empty means the
// default location
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = filepath.Join(DefaultDir(), "config.toml")
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist. Environment overrides are applied last.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	ApplyEnv(cfg)

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:       cs.filePath,
			APIBaseURL: cfg.API.BaseURL,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.fillDefaults()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadDotEnv loads a .env file into the process environment if present.
// Variables already set are not overwritten.
func LoadDotEnv(paths ...string) error {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides file settings with BUSTRIP_* environment variables
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("BUSTRIP_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v, ok := envInt("BUSTRIP_API_TIMEOUT_MS"); ok {
		cfg.API.TimeoutMS = v
	}
	if v, ok := envInt("BUSTRIP_DEBOUNCE_MS"); ok {
		cfg.Search.DebounceMS = v
	}
}

func envInt(key string) (int, bool) {
	value := os.Getenv(key)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.API.BaseURL == "" {
		c.API.BaseURL = d.API.BaseURL
	}
	if c.API.TimeoutMS <= 0 {
		c.API.TimeoutMS = d.API.TimeoutMS
	}
	if c.Search.DebounceMS <= 0 {
		c.Search.DebounceMS = d.Search.DebounceMS
	}
	if c.Search.CacheTTLSeconds <= 0 {
		c.Search.CacheTTLSeconds = d.Search.CacheTTLSeconds
	}
	if c.OTP.Length <= 0 {
		c.OTP.Length = d.OTP.Length
	}
	if c.Storage.Path == "" {
		c.Storage.Path = d.Storage.Path
	}
	if c.Log.File == "" {
		c.Log.File = d.Log.File
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := DefaultDir()
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:   "http://localhost:3000/api/v1",
			TimeoutMS: 10_000,
		},
		Search: Search{
			DebounceMS:      500,
			CacheTTLSeconds: 120,
		},
		OTP: OTP{
			Length: 6,
		},
		Storage: Storage{
			Path: filepath.Join(dir, "bustrip.db"),
		},
		Log: Log{
			File: "bustrip.log",
		},
	}
}
