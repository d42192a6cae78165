package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/configloader/internal/application"
	"github.com/eugenenazirov/configloader/internal/config"
	"github.com/eugenenazirov/configloader/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("configloader", "Inspect a KEY<delimiter>VALUE configuration file and print its coerced values")
	configFile := kingpinApp.Flag("config", "Path to YAML settings file").String()
	file := kingpinApp.Flag("file", "Configuration file to inspect (default .env)").Short('f').String()
	delimiter := kingpinApp.Flag("delimiter", "Key/value separator: = ; , : or equals, semicolon, comma, colon").Short('d').String()
	output := kingpinApp.Flag("output", "Output format: yaml, json or toml").Short('o').String()
	logLevel := kingpinApp.Flag("log-level", "Log level: debug, info, warn or error").String()

	if _, err := kingpinApp.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg, err := config.Load(&config.CLIOverrides{
		ConfigFile: *configFile,
		FilePath:   file,
		Delimiter:  delimiter,
		Output:     output,
		LogLevel:   logLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return err
	}

	if err := app.Run(stdout); err != nil {
		logger.Error("inspection failed", zap.Error(err))
		return err
	}
	return nil
}
