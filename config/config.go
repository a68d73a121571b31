package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"

	"github.com/lixenwraith/hawktui/terminal"
)

var (
	// ErrUnknownKey is returned for configuration keys that map to no field
	ErrUnknownKey = errors.New("config: unknown key")
	// ErrInvalid is returned for values outside their allowed set
	ErrInvalid = errors.New("config: invalid value")
)

// Mouse reporting levels accepted by the mouse key
const (
	MouseNone   = "none"
	MouseClick  = "click"
	MouseDrag   = "drag"
	MouseMotion = "motion"
)

// Config is the demo configuration, loaded from TOML and overridden by flags
type Config struct {
	QuitKeys      []string `toml:"quit_keys"`
	Mouse         string   `toml:"mouse"`
	Debug         bool     `toml:"debug"`
	Audio         bool     `toml:"audio"`
	TraceEndpoint string   `toml:"trace_endpoint"`
}

// Default returns the built-in configuration
// TraceEndpoint defaults to OTEL_EXPORTER_OTLP_ENDPOINT
func Default() Config {
	return Config{
		QuitKeys:      []string{"q", "ctrl+c"},
		Mouse:         MouseMotion,
		TraceEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

// Load reads a TOML file over the defaults, an empty path yields the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults
// Returns error on unknown keys, invalid values, or parse failure
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		names := make([]string, len(undecoded))
		for i, k := range undecoded {
			names[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the mouse level and that every quit key names a key
func (c Config) Validate() error {
	if _, ok := mouseModes[c.Mouse]; !ok {
		return fmt.Errorf("%w: mouse %q", ErrInvalid, c.Mouse)
	}
	if len(c.QuitKeys) == 0 {
		return fmt.Errorf("%w: quit_keys is empty", ErrInvalid)
	}
	for _, name := range c.QuitKeys {
		if _, _, ok := terminal.KeyByName(name); !ok {
			return fmt.Errorf("%w: quit key %q", ErrInvalid, name)
		}
	}
	return nil
}

var mouseModes = map[string]terminal.MouseMode{
	MouseNone:   terminal.MouseModeNone,
	MouseClick:  terminal.MouseModeClick,
	MouseDrag:   terminal.MouseModeClick | terminal.MouseModeDrag,
	MouseMotion: terminal.MouseModeAll,
}

// MouseMode maps the mouse level to driver reporting flags
func (c Config) MouseMode() terminal.MouseMode {
	if m, ok := mouseModes[c.Mouse]; ok {
		return m
	}
	return terminal.MouseModeAll
}

// QuitBinding returns the quit keys as a key binding
func (c Config) QuitBinding() key.Binding {
	help := "q"
	if len(c.QuitKeys) > 0 {
		help = c.QuitKeys[0]
	}
	return key.NewBinding(
		key.WithKeys(c.QuitKeys...),
		key.WithHelp(help, "quit"),
	)
}
