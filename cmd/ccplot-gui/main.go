// Ccplot-gui is a desktop front end for the external ccplot plotting
// tool. It opens CALIPSO/CloudSat HDF granules, lets the user pick a
// time/altitude subset and colormap, runs ccplot as a subprocess, and
// displays the rendered PNG.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/pflag"

	"ccplot-gui/internal/app"
	"ccplot-gui/internal/config"
	"ccplot-gui/internal/logger"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", defaultConfigPath(), "Path to config TOML")
		logLevel   = pflag.String("log-level", "", "Override log level (debug|info|warn|error)")
	)
	pflag.Parse()

	cfg := loadConfig(*configPath)

	level := cfg.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}
	log := logger.NewConsoleLogger(logger.ParseLevel(level))

	application, err := app.New(cfg, log)
	if err != nil {
		log.Error("main", err, nil)
		os.Exit(1)
	}

	// Optional positional granule to open at startup.
	if pflag.NArg() > 0 {
		application.OpenAtStartup(pflag.Arg(0))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("main", "signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		application.Quit()
	}()

	if err := application.Run(); err != nil {
		log.Error("main", err, nil)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "ccplot-gui", "config.toml")
	}
	return "ccplot-gui.toml"
}

// loadConfig reads the TOML config. A missing file at the default
// location is fine and yields the built-in defaults; an explicitly
// requested file must exist.
func loadConfig(path string) config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !pflag.CommandLine.Changed("config") {
			return config.Default()
		}
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
