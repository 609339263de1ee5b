package config

import (
	"embed"
	"errors"
	"fmt"
)

//go:embed default/*.toml
var configFS embed.FS

var Current = loadDefaultConfig()

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	UI   UIConfig   `toml:"ui"`
	Keys KeysConfig `toml:"keys"`
}

type UIConfig struct {
	Theme        string  `toml:"theme"`
	Padding      int     `toml:"padding"`
	Spacing      int     `toml:"spacing"`
	SplitPercent float64 `toml:"split_percent"`
	SplitStep    float64 `toml:"split_step"`
	// Colors overrides fields of the selected theme.
	Colors Theme `toml:"colors"`
}

type KeysConfig struct {
	Next       StringList `toml:"next"`
	Previous   StringList `toml:"previous"`
	Activate   StringList `toml:"activate"`
	Jump       StringList `toml:"jump"`
	ToggleHelp StringList `toml:"toggle_help"`
	Expand     StringList `toml:"expand"`
	Shrink     StringList `toml:"shrink"`
	Cancel     StringList `toml:"cancel"`
	Quit       StringList `toml:"quit"`
}

// StringList allows TOML values to be specified as a string or array of strings.
type StringList []string

func (l *StringList) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*l = StringList{v}
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string in list, got %T", item)
			}
			out = append(out, s)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("expected string or list of strings, got %T", value)
	}
}

// Validate reports settings that the host cannot work with.
func (c *Config) Validate() error {
	if c.UI.Padding < 0 {
		return fmt.Errorf("%w: ui.padding must not be negative, got %d", ErrInvalidConfig, c.UI.Padding)
	}
	if c.UI.Spacing < 0 {
		return fmt.Errorf("%w: ui.spacing must not be negative, got %d", ErrInvalidConfig, c.UI.Spacing)
	}
	if c.UI.SplitPercent < 0 || c.UI.SplitPercent > 100 {
		return fmt.Errorf("%w: ui.split_percent must be between 0 and 100, got %v", ErrInvalidConfig, c.UI.SplitPercent)
	}
	keys := []struct {
		name string
		keys StringList
	}{
		{"next", c.Keys.Next},
		{"previous", c.Keys.Previous},
		{"activate", c.Keys.Activate},
		{"quit", c.Keys.Quit},
	}
	for _, k := range keys {
		if len(k.keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no keys", ErrInvalidConfig, k.name)
		}
	}
	return nil
}
