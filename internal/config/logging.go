package config

import (
	"github.com/rshade/pokedex/internal/logging"
)

// ToLoggingConfig converts config.LoggingConfig to logging.Config.
//
// The conversion applies these rules:
//   - Level, Format are copied directly
//   - If File is set, Output becomes "file"
//   - If File is empty, Output is "stderr", or "discard" when interactive is
//     true so log lines never land on the screen the TUI is drawing
func (lc *LoggingConfig) ToLoggingConfig(interactive bool) logging.Config {
	output := logging.OutputStderr
	switch {
	case lc.File != "":
		output = logging.OutputFile
	case interactive:
		output = logging.OutputDiscard
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the Logging section of the global config.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
