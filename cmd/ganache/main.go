package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/idursun/ganache/internal/config"
	"github.com/idursun/ganache/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("ganache", flag.ContinueOnError)
	configFile := flags.String("config", "", "config file to load instead of the one in the user config directory")
	themeName := flags.String("theme", "", "theme to use, overrides ui.theme")
	debugLog := flags.String("debug-log", os.Getenv("GANACHE_DEBUG"), "write debug logs to this file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *debugLog != "" {
		f, err := tea.LogToFile(*debugLog, "ganache")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	c, warnings, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	if *themeName != "" {
		c.UI.Theme = *themeName
	}
	colors, err := loadColors(c)
	if err != nil {
		return err
	}

	log.Printf("starting with theme %q", c.UI.Theme)
	_, err = tea.NewProgram(ui.New(c, colors)).Run()
	return err
}

// loadConfig overlays configFile, or the user's config file when configFile
// is empty, on the embedded defaults. A missing user config file is not an
// error.
func loadConfig(configFile string) (*config.Config, []string, error) {
	c := *config.Current
	var (
		data []byte
		err  error
	)
	if configFile != "" {
		data, err = config.ReadConfigFile(configFile)
	} else {
		data, err = config.LoadConfigFile()
		if errors.Is(err, fs.ErrNotExist) {
			return &c, nil, nil
		}
	}
	if err != nil {
		return nil, nil, err
	}

	unknown, err := c.Load(string(data))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	var warnings []string
	for _, key := range unknown {
		warnings = append(warnings, fmt.Sprintf("unknown config key %q", key))
	}
	return &c, warnings, nil
}

// loadColors resolves c.UI.Theme over the embedded dark theme and applies
// the colour overrides from the config file on top.
func loadColors(c *config.Config) (config.Theme, error) {
	base, err := config.LoadEmbeddedTheme("dark")
	if err != nil {
		return nil, err
	}
	colors := base
	switch c.UI.Theme {
	case "", "dark":
	case "light":
		light, err := config.LoadEmbeddedTheme("light")
		if err != nil {
			return nil, err
		}
		colors = config.MergeTheme(base, light)
	default:
		colors, err = config.LoadTheme(c.UI.Theme, base)
		if err != nil {
			return nil, err
		}
	}
	return config.MergeTheme(colors, c.UI.Colors), nil
}
