// Package config resolves the CLI's own runtime settings from multiple sources
// (YAML settings file, environment variables, CLI flags) with precedence:
// CLI flags > YAML settings > Environment variables > Defaults. The tool
// configuration itself is handled by package toolconfig.
package config
