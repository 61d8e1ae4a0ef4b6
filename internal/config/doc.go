// SPDX-License-Identifier: MPL-2.0

// Package config loads dais settings with Viper, using CUE as the file format.
//
// The file is ~/.config/dais/config.cue ($XDG_CONFIG_HOME/dais on Linux,
// ~/Library/Application Support/dais on macOS, %APPDATA%\dais on Windows),
// falling back to ./config.cue. It is checked against the embedded #Config
// schema before being merged over the defaults. DAIS_* environment variables
// override file values (DAIS_LOG_LEVEL, DAIS_UI_VERBOSE, ...).
//
// Besides UI and logging settings the file may declare presets: named partial
// applications of a command type that callers complete on the command line.
package config
