package reveal

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// fileConfig is the on-disk form of Config. Times are milliseconds.
type fileConfig struct {
	Offset                  float64 `koanf:"offset"`
	Delay                   int     `koanf:"delay"`
	Easing                  string  `koanf:"easing"`
	Duration                int     `koanf:"duration"`
	Once                    bool    `koanf:"once"`
	Mirror                  bool    `koanf:"mirror"`
	AnchorPlacement         string  `koanf:"anchorPlacement"`
	StartEvent              string  `koanf:"startEvent"`
	AnimatedClassName       string  `koanf:"animatedClassName"`
	InitClassName           string  `koanf:"initClassName"`
	UseClassNames           bool    `koanf:"useClassNames"`
	DisableMutationObserver bool    `koanf:"disableMutationObserver"`
	ThrottleDelay           int     `koanf:"throttleDelay"`
	DebounceDelay           int     `koanf:"debounceDelay"`
}

func defaultFileValues() map[string]interface{} {
	d := DefaultConfig()
	return map[string]interface{}{
		"offset":                  d.Offset,
		"delay":                   d.Delay.Milliseconds(),
		"easing":                  d.Easing,
		"duration":                d.Duration.Milliseconds(),
		"disable":                 false,
		"once":                    d.Once,
		"mirror":                  d.Mirror,
		"anchorPlacement":         d.AnchorPlacement.String(),
		"startEvent":              d.StartEvent,
		"animatedClassName":       d.AnimatedClassName,
		"initClassName":           d.InitClassName,
		"useClassNames":           d.UseClassNames,
		"disableMutationObserver": d.DisableMutationObserver,
		"throttleDelay":           d.ThrottleDelay.Milliseconds(),
		"debounceDelay":           d.DebounceDelay.Milliseconds(),
	}
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

// LoadConfig reads a YAML or TOML file over DefaultConfig. Keys match the
// option names (offset, delay, easing, duration, disable, once, mirror,
// anchorPlacement, startEvent, animatedClassName, initClassName,
// useClassNames, disableMutationObserver, throttleDelay, debounceDelay);
// times are in milliseconds. disable accepts a boolean or one of "mobile",
// "phone" and "tablet".
func LoadConfig(path string) (Config, error) {
	parser, err := parserFor(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaultFileValues(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load config defaults: %w", err)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return configFromKoanf(k)
}

// configFromKoanf converts loaded values into a Config. Malformed placements
// fall back to the default, matching per-element attribute handling.
func configFromKoanf(k *koanf.Koanf) (Config, error) {
	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Offset = fc.Offset
	cfg.Delay = time.Duration(fc.Delay) * time.Millisecond
	cfg.Easing = fc.Easing
	cfg.Duration = time.Duration(fc.Duration) * time.Millisecond
	cfg.Once = fc.Once
	cfg.Mirror = fc.Mirror
	if p, ok := ParsePlacement(fc.AnchorPlacement); ok {
		cfg.AnchorPlacement = p
	}
	cfg.StartEvent = fc.StartEvent
	cfg.AnimatedClassName = fc.AnimatedClassName
	cfg.InitClassName = fc.InitClassName
	cfg.UseClassNames = fc.UseClassNames
	cfg.DisableMutationObserver = fc.DisableMutationObserver
	cfg.ThrottleDelay = time.Duration(fc.ThrottleDelay) * time.Millisecond
	cfg.DebounceDelay = time.Duration(fc.DebounceDelay) * time.Millisecond

	policy, ok := ParseDisable(k.String("disable"))
	if !ok {
		return Config{}, fmt.Errorf("decode config: invalid disable value %q", k.String("disable"))
	}
	cfg.Disable = policy
	return cfg, nil
}
