// Package config handles loading, defaulting, and validation of the
// ccplot-gui TOML configuration file. Every section maps to a typed
// struct so the rest of the codebase gets strong typing without manual
// key lookups.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level configuration, mirroring the TOML sections.
type Config struct {
	Ccplot  CcplotConfig  `toml:"ccplot"  json:"ccplot"`
	Plot    PlotConfig    `toml:"plot"    json:"plot"`
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// CcplotConfig describes how to reach the external ccplot tool.
type CcplotConfig struct {
	Binary      string `toml:"binary"       json:"binary"`
	ColormapDir string `toml:"colormap_dir" json:"colormap_dir"`
	Colormap    string `toml:"colormap"     json:"colormap"`
	Opacity     int    `toml:"opacity"      json:"opacity"`
}

// PlotConfig holds plot invocation defaults and the altitude slider
// bounds, all in meters.
type PlotConfig struct {
	Output          string `toml:"output"           json:"output"`
	CalipsoProduct  string `toml:"calipso_product"  json:"calipso_product"`
	CloudsatProduct string `toml:"cloudsat_product" json:"cloudsat_product"`
	AltitudeMin     int    `toml:"altitude_min"     json:"altitude_min"`
	AltitudeMax     int    `toml:"altitude_max"     json:"altitude_max"`
	AltitudeBottom  int    `toml:"altitude_bottom"  json:"altitude_bottom"`
	AltitudeTop     int    `toml:"altitude_top"     json:"altitude_top"`
}

type LoggingConfig struct {
	Level string `toml:"level" json:"level"`
}

// Default returns a Config populated with sane defaults. Values here
// are used whenever the TOML file omits a field. The product names and
// opacity match what ccplot expects for CALIPSO 532nm backscatter and
// CloudSat reflectivity plots.
func Default() Config {
	return Config{
		Ccplot: CcplotConfig{
			Binary:      "ccplot",
			ColormapDir: "/usr/share/ccplot/cmap",
			Colormap:    "calipso-backscatter.cmap",
			Opacity:     30,
		},
		Plot: PlotConfig{
			Output:          filepath.Join(os.TempDir(), "ccplot-gui.png"),
			CalipsoProduct:  "calipso532",
			CloudsatProduct: "cloudsat-reflec",
			AltitudeMin:     0,
			AltitudeMax:     40000,
			AltitudeBottom:  0,
			AltitudeTop:     30000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path, layers it on top of the defaults,
// and validates the result. An error is returned if the file can't be
// read, parsed, or if any constraint is violated.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}

	if err := validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Ccplot.Binary == "" {
		return errors.New("ccplot.binary must not be empty")
	}
	if cfg.Ccplot.Opacity < 0 || cfg.Ccplot.Opacity > 100 {
		return errors.New("ccplot.opacity must be between 0 and 100")
	}
	if cfg.Plot.Output == "" {
		return errors.New("plot.output must not be empty")
	}
	if cfg.Plot.CalipsoProduct == "" {
		return errors.New("plot.calipso_product must not be empty")
	}
	if cfg.Plot.CloudsatProduct == "" {
		return errors.New("plot.cloudsat_product must not be empty")
	}
	if cfg.Plot.AltitudeMin >= cfg.Plot.AltitudeMax {
		return errors.New("plot.altitude_min must be below plot.altitude_max")
	}
	if cfg.Plot.AltitudeBottom >= cfg.Plot.AltitudeTop {
		return errors.New("plot.altitude_bottom must be below plot.altitude_top")
	}
	if cfg.Plot.AltitudeBottom < cfg.Plot.AltitudeMin || cfg.Plot.AltitudeTop > cfg.Plot.AltitudeMax {
		return errors.New("plot altitude defaults must stay within the slider bounds")
	}
	return nil
}
