package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/BurntSushi/toml"
)

func getConfigFilePath() string {
	var configDirs []string

	// useful during development or other non-standard setups.
	if dir := os.Getenv("GANACHE_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}

	// os.UserConfigDir() already does this for linux leaving darwin to handle
	if runtime.GOOS == "darwin" {
		configDirs = append(configDirs, path.Join(os.Getenv("HOME"), ".config"))
		if xdgConfigDir := os.Getenv("XDG_CONFIG_HOME"); xdgConfigDir != "" {
			configDirs = append(configDirs, xdgConfigDir)
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, configDir)
	}

	for _, dir := range configDirs {
		configPath := filepath.Join(dir, "ganache", "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	if len(configDirs) > 0 {
		return filepath.Join(configDirs[0], "ganache", "config.toml")
	}
	return ""
}

func GetConfigDir() string {
	configFile := getConfigFilePath()
	if configFile == "" {
		return ""
	}
	return filepath.Dir(configFile)
}

func loadDefaultConfig() *Config {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: no embedded default config found: %v\n", err)
		os.Exit(1)
	}

	config := &Config{}
	if _, err := config.Load(string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: failed to load embedded default config: %v\n", err)
		os.Exit(1)
	}
	return config
}

// Load decodes data on top of the current values. Keys missing from data
// keep their values. It returns the keys that were not recognised.
func (c *Config) Load(data string) ([]string, error) {
	metadata, err := toml.Decode(data, c)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var unknown []string
	for _, key := range metadata.Undecoded() {
		unknown = append(unknown, key.String())
	}
	slices.Sort(unknown)
	return unknown, nil
}

// LoadConfigFile reads the user's config file. A missing file is reported
// as an error wrapping fs.ErrNotExist.
func LoadConfigFile() ([]byte, error) {
	return ReadConfigFile(getConfigFilePath())
}

func ReadConfigFile(configFile string) ([]byte, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", configFile, err)
	}
	return data, nil
}

func loadTheme(data []byte, base Theme) (Theme, error) {
	var overlay Theme
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return nil, err
	}
	return MergeTheme(base, overlay), nil
}

// LoadEmbeddedTheme loads one of the themes shipped with the binary.
func LoadEmbeddedTheme(name string) (Theme, error) {
	data, err := configFS.ReadFile("default/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("embedded theme %q: %w", name, err)
	}
	return loadTheme(data, nil)
}

// LoadTheme loads a theme from the themes directory next to the config file
// and merges it over base.
func LoadTheme(name string, base Theme) (Theme, error) {
	themeFile := filepath.Join(GetConfigDir(), "themes", name+".toml")
	data, err := os.ReadFile(themeFile)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}
	theme, err := loadTheme(data, base)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}
	return theme, nil
}
