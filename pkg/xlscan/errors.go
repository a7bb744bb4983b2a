package xlscan

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable indicates the workbook could not be opened or read.
var ErrSourceUnavailable = errors.New("workbook source unavailable")

// SourceError describes why a workbook could not be read. It matches
// ErrSourceUnavailable with errors.Is.
type SourceError struct {
	Path  string
	Sheet string // empty when the whole file failed
	Err   error
}

func (e *SourceError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("%v: %s: sheet %q: %v", ErrSourceUnavailable, e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrSourceUnavailable, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSourceUnavailable.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NewSourceError creates a new SourceError.
func NewSourceError(path, sheetName string, err error) *SourceError {
	return &SourceError{
		Path:  path,
		Sheet: sheetName,
		Err:   err,
	}
}
