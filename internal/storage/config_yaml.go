package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"focustrack/internal/core/model"
	"focustrack/internal/logging"
	"gopkg.in/yaml.v3"
)

const (
	configFileName   = "config.yaml"
	sqliteFileName   = "focustrack.db"
	stateFileName    = "state.json"
	defaultLogLevel  = "info"
	defaultBackend   = BackendSQLite
	defaultDirectory = "."
)

type yamlConfig struct {
	StorageBackend string `yaml:"storage_backend"`
	DataPath       string `yaml:"data_path,omitempty"`
	LogLevel       string `yaml:"log_level"`
	AutoSwitch     *bool  `yaml:"auto_switch"`
	Notifications  *bool  `yaml:"notifications"`
	LaunchAtLogin  *bool  `yaml:"launch_at_login"`
}

// DefaultConfig returns the configuration used when no file exists. Data
// files live next to the config file in dir.
func DefaultConfig(dir string) model.AppConfig {
	if dir == "" {
		dir = defaultDirectory
	}
	return model.AppConfig{
		StorageBackend: defaultBackend,
		DataPath:       filepath.Join(dir, sqliteFileName),
		LogLevel:       defaultLogLevel,
		AutoSwitch:     true,
		Notifications:  true,
		LaunchAtLogin:  false,
	}
}

// LoadConfig reads application settings from YAML at path.
// If the config file does not exist, default settings are returned.
func LoadConfig(path string) (model.AppConfig, error) {
	config := DefaultConfig(filepath.Dir(path))

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	if err := applyYamlConfig(&config, fileData, filepath.Dir(path)); err != nil {
		return DefaultConfig(filepath.Dir(path)), err
	}
	return config, nil
}

// SaveConfig writes application settings to YAML at path.
func SaveConfig(path string, config model.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlConfig{
		StorageBackend: config.StorageBackend,
		DataPath:       config.DataPath,
		LogLevel:       config.LogLevel,
		AutoSwitch:     &config.AutoSwitch,
		Notifications:  &config.Notifications,
		LaunchAtLogin:  &config.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns <user config dir>/<appName>/config.yaml.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

func applyYamlConfig(config *model.AppConfig, fileData yamlConfig, dir string) error {
	backend, err := ParseBackend(fileData.StorageBackend)
	if err != nil {
		return err
	}
	config.StorageBackend = backend

	switch {
	case fileData.DataPath != "":
		config.DataPath = fileData.DataPath
	case backend == BackendFile:
		config.DataPath = filepath.Join(dir, stateFileName)
	}

	if fileData.LogLevel != "" {
		if _, err := logging.ParseLevel(fileData.LogLevel); err != nil {
			return err
		}
		config.LogLevel = fileData.LogLevel
	}

	if fileData.AutoSwitch != nil {
		config.AutoSwitch = *fileData.AutoSwitch
	}
	if fileData.Notifications != nil {
		config.Notifications = *fileData.Notifications
	}
	if fileData.LaunchAtLogin != nil {
		config.LaunchAtLogin = *fileData.LaunchAtLogin
	}
	return nil
}
