package gogrid

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is matched by every *ConfigError.
	ErrConfig = errors.New("invalid grid configuration")
	// ErrResolution is matched by every *ResolutionError.
	ErrResolution = errors.New("cannot resolve field value")

	errNilNestedRecord = errors.New("nested record is nil")
	errUnknownLookup   = errors.New("lookup field is not defined on nested record")
	errNestedType      = errors.New("nested record has unexpected type")
)

// ConfigError reports a grid or pager configuration that cannot produce a
// table. It is fatal: Compile returns no partial output.
type ConfigError struct {
	// Option is the name of the offending setting, e.g. "rowsPerPage".
	Option string
	Reason string
}

func newConfigError(option, format string, args ...any) *ConfigError {
	return &ConfigError{
		Option: option,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfig, e.Option, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

// ResolutionError reports a foreign key that could not be followed for a
// single record.
type ResolutionError struct {
	Field  string
	Lookup string
	RowID  int
	Err    error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: field '%s' lookup '%s' (row %d): %v", ErrResolution, e.Field, e.Lookup, e.RowID, e.Err)
}

func (e *ResolutionError) Unwrap() []error {
	return []error{ErrResolution, e.Err}
}
