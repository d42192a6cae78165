// Package config resolves the settings of the configloader command from a
// YAML settings file and CLI flags with precedence: CLI flags > YAML settings
// file > Defaults.
package config
