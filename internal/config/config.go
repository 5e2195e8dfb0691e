package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults applied when the config file or flags leave a value unset.
const (
	DefaultAPIBaseURL = "https://api.paisera.in/v1"
	DefaultTheme      = "default"
)

// SetDefaults registers default values on the global viper instance.
func SetDefaults() {
	viper.SetDefault("api.base_url", DefaultAPIBaseURL)
	viper.SetDefault("api.timeout_seconds", 30)
	viper.SetDefault("tui.theme", DefaultTheme)
	viper.SetDefault("cache.path", "~/.local/share/paisera/cache.db")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// CachePath returns the expanded path to the local sqlite cache, creating
// the parent directory if needed.
func CachePath() (string, error) {
	path := ExpandPath(viper.GetString("cache.path"))
	if path == "" {
		return "", fmt.Errorf("cache.path is not configured")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}
	return path, nil
}

// APIToken returns the session token used for authenticated requests.
// Resolution order: PAISERA_TOKEN env (via viper), then the config file.
func APIToken() string {
	return viper.GetString("api.token")
}
