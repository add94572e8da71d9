package toolconfig

import (
	"fmt"
	"sort"
)

// ToolPath returns tools[name].path.
func (l *Loader) ToolPath(name string) (string, error) {
	return l.ToolField(name, FieldPath)
}

// ToolField returns tools[name][field].
func (l *Loader) ToolField(name, field string) (string, error) {
	tool, ok := l.cfg.Tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	value, ok := tool[field]
	if !ok {
		return "", fmt.Errorf("%w: %q has no %q", ErrUnknownField, name, field)
	}
	return value, nil
}

// EnvVar returns environment[name].
func (l *Loader) EnvVar(name string) (string, error) {
	value, ok := l.cfg.Environment[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvVar, name)
	}
	return value, nil
}

// Maven returns the Maven executable path.
func (l *Loader) Maven() (string, error) {
	return l.ToolPath(ToolMaven)
}

// Java returns the Java runtime path.
func (l *Loader) Java() (string, error) {
	return l.ToolPath(ToolJava)
}

// Javac returns the Java compiler path stored on the java tool record.
func (l *Loader) Javac() (string, error) {
	return l.ToolField(ToolJava, FieldJavacPath)
}

// MySQL returns the MySQL client path.
func (l *Loader) MySQL() (string, error) {
	return l.ToolPath(ToolMySQL)
}

// GitHubCLI returns the GitHub CLI path.
func (l *Loader) GitHubCLI() (string, error) {
	return l.ToolPath(ToolGitHub)
}

// JavaHome returns the config-scoped JAVA_HOME.
func (l *Loader) JavaHome() (string, error) {
	return l.EnvVar(EnvJavaHome)
}

// MavenHome returns the config-scoped MAVEN_HOME.
func (l *Loader) MavenHome() (string, error) {
	return l.EnvVar(EnvMavenHome)
}

// Config returns a copy of the loaded configuration.
func (l *Loader) Config() Config {
	return l.cfg.clone()
}

// Tools returns a copy of the tools section.
func (l *Loader) Tools() map[string]Tool {
	return l.cfg.clone().Tools
}

// Environment returns a copy of the environment section.
func (l *Loader) Environment() map[string]string {
	return l.cfg.clone().Environment
}

// ToolNames returns the configured tool names in sorted order.
func (l *Loader) ToolNames() []string {
	return sortedKeys(l.cfg.Tools)
}

// EnvNames returns the configured environment variable names in sorted order.
func (l *Loader) EnvNames() []string {
	return sortedKeys(l.cfg.Environment)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
