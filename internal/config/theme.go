package config

import (
	"fmt"
	"maps"
)

// Theme maps a widget kind to its style fields.
type Theme map[string]map[string]Color

// Color is a style field value. In TOML it is either a colour string, which
// sets the foreground, or an inline table.
type Color struct {
	Fg            string `toml:"fg"`
	Bg            string `toml:"bg"`
	Bold          *bool  `toml:"bold"`
	Italic        *bool  `toml:"italic"`
	Underline     *bool  `toml:"underline"`
	Strikethrough *bool  `toml:"strikethrough"`
	Reverse       *bool  `toml:"reverse"`
}

func (c *Color) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*c = Color{Fg: v}
		return nil
	case map[string]any:
		var color Color
		for key, raw := range v {
			if err := color.set(key, raw); err != nil {
				return err
			}
		}
		*c = color
		return nil
	default:
		return fmt.Errorf("expected colour string or table, got %T", value)
	}
}

func (c *Color) set(key string, raw any) error {
	switch key {
	case "fg", "bg":
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("%s: expected string, got %T", key, raw)
		}
		if key == "fg" {
			c.Fg = s
		} else {
			c.Bg = s
		}
		return nil
	}
	flags := map[string]**bool{
		"bold":          &c.Bold,
		"italic":        &c.Italic,
		"underline":     &c.Underline,
		"strikethrough": &c.Strikethrough,
		"reverse":       &c.Reverse,
	}
	flag, ok := flags[key]
	if !ok {
		return fmt.Errorf("unknown colour attribute %q", key)
	}
	b, ok := raw.(bool)
	if !ok {
		return fmt.Errorf("%s: expected bool, got %T", key, raw)
	}
	*flag = &b
	return nil
}

// MergeTheme returns base with every field of overlay applied on top. Kinds
// and fields missing from overlay keep their base values; neither argument
// is modified.
func MergeTheme(base, overlay Theme) Theme {
	merged := make(Theme, len(base)+len(overlay))
	for kind, fields := range base {
		merged[kind] = maps.Clone(fields)
	}
	for kind, fields := range overlay {
		if merged[kind] == nil {
			merged[kind] = make(map[string]Color, len(fields))
		}
		maps.Copy(merged[kind], fields)
	}
	return merged
}
