package application

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/toolconfig/internal/config"
	"github.com/eugenenazirov/toolconfig/internal/toolconfig"
)

// App encapsulates the loaded tool configuration and its collaborators.
type App struct {
	cfg    config.Config
	loader *toolconfig.Loader
	logger *zap.Logger
}

// New loads the tool configuration described by cfg.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	loader, err := toolconfig.New(cfg.LoaderOptions()...)
	if err != nil {
		return nil, fmt.Errorf("load tool configuration: %w", err)
	}

	logger.Debug("tool configuration loaded",
		zap.String("path", loader.Path()),
		zap.Int("tools", len(loader.ToolNames())),
		zap.Int("environment", len(loader.EnvNames())),
	)

	return &App{
		cfg:    cfg,
		loader: loader,
		logger: logger,
	}, nil
}

// Loader returns the underlying tool configuration loader.
func (a *App) Loader() *toolconfig.Loader {
	return a.loader
}

// Show renders the whole configuration in the configured format. The text
// format is followed by example commands built from the tool paths.
func (a *App) Show(w io.Writer) error {
	switch a.cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a.loader.Config())
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a.loader.Config()); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return enc.Close()
	}

	if err := a.loader.Print(w); err != nil {
		return err
	}

	examples, err := a.loader.ExampleCommands()
	if err != nil {
		return fmt.Errorf("build example commands: %w", err)
	}
	if _, err := fmt.Fprintln(w, "Example commands:"); err != nil {
		return err
	}
	for _, ex := range examples {
		if _, err := fmt.Fprintf(w, "  %s\n", ex); err != nil {
			return err
		}
	}
	return nil
}

// Tool prints the path of a tool, or one of its extra fields when field is set.
func (a *App) Tool(w io.Writer, name, field string) error {
	if field == "" {
		field = toolconfig.FieldPath
	}
	value, err := a.loader.ToolField(name, field)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, value)
	return err
}

// Env prints a config-scoped environment value.
func (a *App) Env(w io.Writer, name string) error {
	value, err := a.loader.EnvVar(name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, value)
	return err
}
