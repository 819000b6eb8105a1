package ratings

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the workbook cannot be parsed.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrInvalidRegistry indicates the registry is not a JSON array of names.
var ErrInvalidRegistry = errors.New("invalid institution registry")

// Conversion stages reported by ConversionError.
const (
	StageRegistry = "registry"
	StageWorkbook = "workbook"
	StageOutput   = "output"
)

// ConversionError represents a fatal error that aborts a conversion.
type ConversionError struct {
	Path  string
	Stage string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error in %s %q: %v", e.Stage, e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(stage, path string, err error) *ConversionError {
	return &ConversionError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
