// Package application wires the settings, the koanf-backed file provider and
// the output renderer behind the configloader command.
package application
