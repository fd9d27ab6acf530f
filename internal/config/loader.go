package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/howells/stacksheet/internal/geometry"
	"github.com/spf13/viper"
)

// Standard directory permissions (rwxr-xr-x).
const dirPerm = 0o755

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("STACKSHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging env vars keep their short legacy names.
	if err := v.BindEnv("logging.level", "STACKSHEET_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind STACKSHEET_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "STACKSHEET_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind STACKSHEET_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing config file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// Config returns the currently loaded configuration.
func (m *Manager) Config() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		cfg := DefaultConfig()
		normalizeConfig(cfg)
		return cfg
	}
	return m.config
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// No file: run on defaults and env vars alone.
			return nil
		}
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configDir, _ := GetConfigDir()
			configFile = filepath.Join(configDir, "config.toml")
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return config, nil
}

// normalizeConfig resolves the union-typed fields (side as value-or-pair,
// spring as preset-or-params) into their concrete forms. Unrecognized values
// degrade to defaults.
func normalizeConfig(config *Config) {
	def := DefaultResolved()
	config.Sheet.SideDesktop, config.Sheet.SideMobile = normalizeSide(config.Sheet.Side, def.SideDesktop, def.SideMobile)
	config.Sheet.SpringParams = normalizeSpring(config.Sheet.Spring, def.Spring)
}

func normalizeSide(raw any, defDesktop, defMobile Side) (desktop, mobile Side) {
	desktop, mobile = defDesktop, defMobile
	switch v := raw.(type) {
	case string:
		if s := Side(strings.ToLower(v)); s.Valid() {
			return s, s
		}
	case map[string]any:
		if s, ok := v["desktop"].(string); ok {
			if side := Side(strings.ToLower(s)); side.Valid() {
				desktop = side
			}
		}
		if s, ok := v["mobile"].(string); ok {
			if side := Side(strings.ToLower(s)); side.Valid() {
				mobile = side
			}
		}
	}
	return desktop, mobile
}

func normalizeSpring(raw any, def geometry.Spring) geometry.Spring {
	switch v := raw.(type) {
	case string:
		if s, ok := geometry.SpringPreset(strings.ToLower(v)); ok {
			return s
		}
	case map[string]any:
		s := geometry.Spring{
			Stiffness: floatValue(v["stiffness"]),
			Damping:   floatValue(v["damping"]),
			Mass:      floatValue(v["mass"]),
		}
		if s.Stiffness > 0 {
			if s.Mass <= 0 {
				s.Mass = 1
			}
			return s
		}
	}
	return def
}

func floatValue(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

// GetConfigDir returns the stacksheet configuration directory, creating it
// if necessary.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	dir := filepath.Join(base, "stacksheet")
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// GetConfigFile returns the path of the config file in use, or the default
// location when none has been read yet.
func (m *Manager) GetConfigFile() (string, error) {
	if file := m.viper.ConfigFileUsed(); file != "" {
		return file, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
