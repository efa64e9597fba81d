package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Source errors
	ErrInvalidSource = errors.New("source folder is invalid")
	ErrNoInputFiles  = errors.New("no input files found")

	// Conversion errors
	ErrValueParse      = errors.New("value is not a number")
	ErrUnknownEncoding = errors.New("unknown input encoding")
	ErrSaveFailed      = errors.New("workbook save failed")
)

// Error constructors with context
func NewInvalidSourceError(folder string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSource, folder, err)
	}
	return fmt.Errorf("%w: %s", ErrInvalidSource, folder)
}

func NewNoInputFilesError(folder, ext string) error {
	return fmt.Errorf("%w: no %s files in %s", ErrNoInputFiles, ext, folder)
}

func NewValueParseError(file string, line int, value string, err error) error {
	return fmt.Errorf("%w: %s line %d: %q: %v", ErrValueParse, file, line, value, err)
}

func NewUnknownEncodingError(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
}

func NewSaveError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrSaveFailed, path, err)
}
