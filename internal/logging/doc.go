// Package logging builds the zap logger used by the configloader command.
package logging
