// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

const (
	// LogLevelDebug logs every application step.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs notable events.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs recoverable problems only.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs failures only.
	LogLevelError LogLevel = "error"

	// ColorSchemeAuto detects the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark palette.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light palette.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidPresetName is the sentinel error wrapped by InvalidPresetNameError.
	ErrInvalidPresetName = errors.New("invalid preset name")
	// ErrInvalidPreset is the sentinel error wrapped by InvalidPresetError.
	ErrInvalidPreset = errors.New("invalid preset")
	// ErrDuplicatePreset is returned when two presets share a name.
	ErrDuplicatePreset = errors.New("duplicate preset")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel is the minimum level written by the CLI logger.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// ColorScheme selects the terminal palette.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// PresetName names a preset: a lowercase letter followed by lowercase
	// letters, digits, '_' or '-'.
	PresetName string

	// InvalidPresetNameError is returned when a PresetName is malformed.
	InvalidPresetNameError struct {
		Value PresetName
	}

	// InvalidPresetError collects the field errors of one preset.
	InvalidPresetError struct {
		Name        PresetName
		FieldErrors []error
	}

	// InvalidConfigError collects the field errors of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Preset is a named partial application: the command it targets and the
	// parameters applied before the caller's own.
	Preset struct {
		Name    PresetName     `json:"name" mapstructure:"name"`
		Command types.TypeName `json:"command" mapstructure:"command"`
		Params  map[string]any `json:"params,omitempty" mapstructure:"params"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose renders help entries and full error chains on failure.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// Config holds the application configuration.
	Config struct {
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level"`
		UI       UIConfig `json:"ui" mapstructure:"ui"`
		Presets  []Preset `json:"presets" mapstructure:"presets"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: LogLevelWarn,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Presets: []Preset{},
	}
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// IsValid returns whether the ColorScheme is one of the defined schemes.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the PresetName.
func (n PresetName) String() string { return string(n) }

// IsValid returns whether the PresetName is well formed.
func (n PresetName) IsValid() (bool, []error) {
	if n == "" || n[0] < 'a' || n[0] > 'z' {
		return false, []error{&InvalidPresetNameError{Value: n}}
	}
	for i := 1; i < len(n); i++ {
		c := n[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' && c != '-' {
			return false, []error{&InvalidPresetNameError{Value: n}}
		}
	}
	return true, nil
}

// Error implements the error interface for InvalidPresetNameError.
func (e *InvalidPresetNameError) Error() string {
	return fmt.Sprintf("invalid preset name %q: must match [a-z][a-z0-9_-]*", e.Value)
}

// Unwrap returns ErrInvalidPresetName for errors.Is() compatibility.
func (e *InvalidPresetNameError) Unwrap() error { return ErrInvalidPresetName }

// ParamMap returns the preset parameters keyed by parameter name.
func (p Preset) ParamMap() params.Map {
	out := make(params.Map, len(p.Params))
	for k, v := range p.Params {
		out[types.ParamName(k)] = v
	}
	return out
}

// IsValid returns whether the preset name, command and parameter names are
// well formed. It does not check that the command exists.
func (p Preset) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := p.Name.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := p.Command.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	for _, name := range p.ParamMap().Names() {
		if valid, fieldErrs := name.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidPresetError{Name: p.Name, FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidPresetError.
func (e *InvalidPresetError) Error() string {
	return fmt.Sprintf("invalid preset %q: %v", e.Name, errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidPreset and every field error.
func (e *InvalidPresetError) Unwrap() []error {
	return append([]error{ErrInvalidPreset}, e.FieldErrors...)
}

// IsValid returns whether the UIConfig has valid fields.
func (c UIConfig) IsValid() (bool, []error) {
	return c.ColorScheme.IsValid()
}

// Preset returns the preset called name.
func (c *Config) Preset(name PresetName) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// IsValid returns whether every field is valid and preset names are unique.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.LogLevel.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	seen := make(map[PresetName]int, len(c.Presets))
	for i, p := range c.Presets {
		if valid, fieldErrs := p.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
		if first, dup := seen[p.Name]; dup {
			errs = append(errs, fmt.Errorf("%w %q: presets[%d] repeats presets[%d]", ErrDuplicatePreset, p.Name, i, first))
			continue
		}
		seen[p.Name] = i
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and every field error.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
