package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/johan-perso/betterpip/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyPipCommand    = "pip_command"
	KeyPythonCommand = "python_command"
	KeySilent        = "silent_output"
	KeyDefaultInit   = "default_value_for_init"
	KeyOpenAfterInit = "open_package_after_init"
	KeyShimDir       = "shim_dir"
	KeyLang          = "lang"
	KeyNoUpdateCheck = "no_update_check"
	KeyGitHubAPIURL  = "github_api_url"
)

// Keys lists every key accepted by `config set`.
var Keys = []string{
	KeyPipCommand,
	KeyPythonCommand,
	KeySilent,
	KeyDefaultInit,
	KeyOpenAfterInit,
	KeyShimDir,
	KeyLang,
	KeyNoUpdateCheck,
	KeyGitHubAPIURL,
}

// Settings is a typed snapshot of the configuration.
type Settings struct {
	PipCommand    string
	PythonCommand string
	Silent        bool
	DefaultInit   bool
	OpenAfterInit bool
	ShimDir       string
	Lang          string
	NoUpdateCheck bool
	GitHubAPIURL  string
}

// Dir returns the path to the config directory (~/.betterpip/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.betterpip/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyPipCommand, "pip")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys, ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Current returns the settings resolved from file, environment and defaults.
func Current() Settings {
	pip := strings.TrimSpace(Get(KeyPipCommand))
	if pip == "" {
		pip = "pip"
	}
	return Settings{
		PipCommand:    pip,
		PythonCommand: strings.TrimSpace(Get(KeyPythonCommand)),
		Silent:        truthy(Get(KeySilent)),
		DefaultInit:   truthy(Get(KeyDefaultInit)),
		OpenAfterInit: truthy(Get(KeyOpenAfterInit)),
		ShimDir:       strings.TrimSpace(Get(KeyShimDir)),
		Lang:          strings.TrimSpace(Get(KeyLang)),
		NoUpdateCheck: truthy(Get(KeyNoUpdateCheck)),
		GitHubAPIURL:  strings.TrimSpace(Get(KeyGitHubAPIURL)),
	}
}

// truthy treats any non-empty value as set, except explicit negatives.
// BETTERPIP_SILENT_OUTPUT=yes has always meant "on".
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
