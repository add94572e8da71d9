// Package toolconfig loads the project's tool configuration file
// (.tool-config.json) and exposes typed accessors for the paths of external
// tools and the config-scoped environment values stored alongside them.
package toolconfig
