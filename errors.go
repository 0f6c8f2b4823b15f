package mdbookpdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrConfig        = errors.New("configuration error")
	ErrUnknownEngine = errors.New("unknown PDF engine")
	ErrExternalTool  = errors.New("external conversion tool failed")

	// Warning classes. Values wrapping these never abort a render.
	ErrMalformedConfig   = errors.New("malformed configuration")
	ErrUnsupportedOption = errors.New("option not supported for this engine")
)

// ConfigError reports a required value that could not be derived or a
// value that cannot be used. Err, when set, is the underlying cause.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConfig}
	}
	return []error{ErrConfig, e.Err}
}

// MalformedConfigWarning reports a configuration sub-tree that does not
// match the expected shape. The whole namespace is then treated as absent.
type MalformedConfigWarning struct {
	Namespace string
	Err       error
}

func (w *MalformedConfigWarning) Error() string {
	return fmt.Sprintf("%v under %s, using defaults: %v", ErrMalformedConfig, w.Namespace, w.Err)
}

func (w *MalformedConfigWarning) Unwrap() []error { return []error{ErrMalformedConfig, w.Err} }

// UnsupportedOptionWarning reports an option that the selected engine ignores.
type UnsupportedOptionWarning struct {
	Option string
	Engine EngineKind
}

func (w *UnsupportedOptionWarning) Error() string {
	return fmt.Sprintf("%v: %s has no effect with %s", ErrUnsupportedOption, w.Option, w.Engine)
}

func (w *UnsupportedOptionWarning) Unwrap() error { return ErrUnsupportedOption }

// ExternalToolError reports a failed pandoc run.
// ExitCode is -1 when the process could not be started or was killed.
type ExternalToolError struct {
	Tool     string
	Engine   EngineKind
	ExitCode int
	Err      error
}

func (e *ExternalToolError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%v: %s (engine %s) exited with status %d", ErrExternalTool, e.Tool, e.Engine, e.ExitCode)
	}
	return fmt.Sprintf("%v: %s (engine %s): %v", ErrExternalTool, e.Tool, e.Engine, e.Err)
}

func (e *ExternalToolError) Unwrap() []error { return []error{ErrExternalTool, e.Err} }
