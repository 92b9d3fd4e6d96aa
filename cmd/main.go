package main

import (
	"flag"
	"io"
	"os"

	"github.com/treefs/treefs/config"
	"github.com/treefs/treefs/filesystem"
	"github.com/treefs/treefs/internal/util"
	"github.com/treefs/treefs/internal/watcher"
	"github.com/treefs/treefs/shell"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		verbose    int
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (yaml or json)")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.IntVar(&verbose, "verbose", 3, "Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")
	flag.IntVar(&verbose, "v", 3, "--verbose (shorthand)")
	flag.Parse()

	// Initialize logger
	if verbose < 1 {
		verbose = 1
	}
	if verbose > 5 {
		verbose = 5
	}
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	logLvl := logLvls[verbose-1]
	util.InitializeLogger(logLvl)
	logger := util.GetLogger("main")

	// Load config: defaults, then file overrides if provided
	cfg := config.NewDefaultConfig()
	cfg.LogLvl = logLvl
	if configPath != "" {
		override, err := config.LoadConfigOverrideFile(configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config file")
		}
		cfg.Merge(override)
		util.SetLevel(cfg.LogLvl)
		logger.Debug().Str("config", configPath).Msg("Config file loaded successfully")
	}
	logger.Info().
		Int("max_nodes", cfg.MaxNodes).
		Int("max_name_length", cfg.MaxNameLength).
		Int("max_depth", cfg.MaxDepth).
		Msg("treefs initializing")

	fs := filesystem.NewFS(cfg)

	// Reapply the log level when the config file changes on disk
	if configPath != "" {
		w, err := watcher.New(configPath)
		if err != nil {
			logger.Warn().Err(err).Msg("Config watcher unavailable")
		} else {
			w.OnChange(func(e watcher.Event) {
				override, err := config.LoadConfigOverrideFile(e.Path)
				if err != nil {
					logger.Warn().Err(err).Str("config", e.Path).Msg("Failed to reload config file")
					return
				}
				if override.LogLevel != nil {
					util.SetLevel(*override.LogLevel)
					logger.Info().Int("log_level", *override.LogLevel).Msg("Log level updated from config")
				}
			})
			if err := w.Start(); err != nil {
				logger.Warn().Err(err).Msg("Failed to start config watcher")
			} else {
				defer w.Stop() // nolint:errcheck
			}
		}
	}

	// Commands come from a script file if one is passed, stdin otherwise
	var in io.Reader = os.Stdin
	if script := flag.Arg(0); script != "" {
		f, err := os.Open(script)
		if err != nil {
			logger.Fatal().Err(err).Str("script", script).Msg("Failed to open script file")
		}
		defer f.Close() // nolint:errcheck
		logger.Debug().Str("script", script).Msg("Reading commands from script file")
		in = f
	}

	sh := shell.New(fs, in, os.Stdout)
	if err := sh.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Command session failed")
	}
}
