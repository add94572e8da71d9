// Package application wires the resolved settings, the logger, and the tool
// configuration loader together and implements the CLI commands on top of
// them, keeping the main package focused on flag parsing.
package application
