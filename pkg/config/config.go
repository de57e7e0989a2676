// Package config loads minigraphml settings from TOML.
//
//	[load]
//	duplicates = "reject"   # or "last-wins", "first-wins"
//	strict_keys = false
//
//	[render]
//	edge_labels = true
//	rankdir = "TB"
//
// Absent settings keep their [Default] values. Unknown settings and
// unknown enum values are INVALID_CONFIG errors.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	gmlerrors "github.com/matzehuels/minigraphml/pkg/errors"
	"github.com/matzehuels/minigraphml/pkg/graphml"
	"github.com/matzehuels/minigraphml/pkg/render/dot"
)

// Config is the decoded configuration file.
type Config struct {
	Load   LoadTable `toml:"load"`
	Render Render    `toml:"render"`
}

// LoadTable holds the [load] table.
type LoadTable struct {
	Duplicates string `toml:"duplicates"`
	StrictKeys bool   `toml:"strict_keys"`
}

// Render holds the [render] table.
type Render struct {
	EdgeLabels bool   `toml:"edge_labels"`
	RankDir    string `toml:"rankdir"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Load:   LoadTable{Duplicates: graphml.DuplicatesReject.String()},
		Render: Render{EdgeLabels: true, RankDir: "TB"},
	}
}

// Load reads and validates the TOML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, gmlerrors.Wrap(gmlerrors.ErrCodeIO, err, "read config %s", path)
	}
	return parse(string(data), path)
}

// Parse decodes and validates TOML text.
func Parse(text string) (Config, error) {
	return parse(text, "<string>")
}

func parse(text, source string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, gmlerrors.Wrap(gmlerrors.ErrCodeInvalidConfig, err, "decode %s", source)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, gmlerrors.New(gmlerrors.ErrCodeInvalidConfig, "%s: unknown settings: %s", source, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enum-valued settings.
func (c Config) Validate() error {
	if _, err := graphml.ParseDuplicatePolicy(c.Load.Duplicates); err != nil {
		return gmlerrors.Wrap(gmlerrors.ErrCodeInvalidConfig, err, "load.duplicates")
	}
	if !dot.ValidRankDir(c.Render.RankDir) {
		return gmlerrors.New(gmlerrors.ErrCodeInvalidConfig, "render.rankdir: unknown value %q", c.Render.RankDir)
	}
	return nil
}

// LoadOptions converts the [load] table into loader options using logger.
// The configuration must have passed [Config.Validate].
func (c Config) LoadOptions(logger *log.Logger) graphml.Options {
	policy, _ := graphml.ParseDuplicatePolicy(c.Load.Duplicates)
	return graphml.Options{
		Duplicates: policy,
		StrictKeys: c.Load.StrictKeys,
		Logger:     logger,
	}
}

// RenderOptions converts the [render] table into DOT options.
func (c Config) RenderOptions() dot.Options {
	return dot.Options{
		EdgeLabels: c.Render.EdgeLabels,
		RankDir:    c.Render.RankDir,
	}
}
