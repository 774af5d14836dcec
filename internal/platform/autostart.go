package platform

import (
	"fmt"
	"os"
	"strings"
)

// DefaultAppName names autostart entries when the caller passes a blank name.
const DefaultAppName = "focustrack"

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
	AutostartEnabled(appName string) (bool, error)
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// SyncAutostart makes the login entry match enabled. It only touches the
// system when the current state differs.
func SyncAutostart(service Service, appName string, enabled bool) error {
	current, err := service.AutostartEnabled(appName)
	if err != nil {
		return fmt.Errorf("sync autostart: %w", err)
	}
	if current == enabled {
		return nil
	}
	if !enabled {
		return service.DisableAutostart(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("sync autostart: resolve executable: %w", err)
	}
	return service.EnableAutostart(appName, execPath)
}

func slugName(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = DefaultAppName
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}
