package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/toolconfig/internal/application"
	"github.com/eugenenazirov/toolconfig/internal/config"
	"github.com/eugenenazirov/toolconfig/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run parses args, executes the selected command, and writes its output to
// stdout. Failures before the logger exists are written to stderr as plain
// text; later ones are logged. Either way the error is returned.
func run(args []string, stdout, stderr io.Writer) error {
	kingpinApp := kingpin.New("toolconfig", "Tool Configuration - prints the external tool paths configured for the project")
	settingsFile := kingpinApp.Flag("settings", "Path to YAML settings file").String()
	root := kingpinApp.Flag("root", "Project root containing the tool configuration file").String()
	fileName := kingpinApp.Flag("file", "Tool configuration file name inside the project root").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()
	format := kingpinApp.Flag("format", "Output format for show (text, json, yaml)").String()

	showCmd := kingpinApp.Command("show", "Print the full configuration and example commands").Default()

	toolCmd := kingpinApp.Command("tool", "Print the path of a configured tool")
	toolName := toolCmd.Arg("name", "Tool name").Required().String()
	toolField := toolCmd.Flag("field", "Tool field to print instead of path").String()

	envCmd := kingpinApp.Command("env", "Print a config-scoped environment variable")
	envName := envCmd.Arg("name", "Variable name").Required().String()

	command, err := kingpinApp.Parse(args)
	if err != nil {
		err = fmt.Errorf("parse arguments: %w", err)
		fmt.Fprintf(stderr, "toolconfig: %v\n", err)
		return err
	}

	overrides := &config.CLIOverrides{
		SettingsFile: *settingsFile,
		Root:         root,
		FileName:     fileName,
		LogLevel:     logLevel,
		Format:       format,
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		err = fmt.Errorf("load settings: %w", err)
		fmt.Fprintf(stderr, "toolconfig: %v\n", err)
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		err = fmt.Errorf("initialize logger: %w", err)
		fmt.Fprintf(stderr, "toolconfig: %v\n", err)
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Error("failed to load tool configuration", zap.Error(err))
		return err
	}

	switch command {
	case showCmd.FullCommand():
		err = app.Show(stdout)
	case toolCmd.FullCommand():
		err = app.Tool(stdout, *toolName, *toolField)
	case envCmd.FullCommand():
		err = app.Env(stdout, *envName)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		return err
	}
	return nil
}
