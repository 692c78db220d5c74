// Package errors provides custom error types for the crosscheck system.
// These errors enable programmatic error checking by callers and keep the
// failure taxonomy of the reconciliation pipeline in one place.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the crosscheck system
var (
	// ErrMissingSheet indicates a required input sheet was not found
	ErrMissingSheet = errors.New("missing sheet")

	// ErrNoCommonColumns indicates the two datasets share no columns
	ErrNoCommonColumns = errors.New("no common columns")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")
)

// MissingSheetError reports that one or both required input sheets are
// absent from the uploaded workbook. Fatal for the request.
type MissingSheetError struct {
	Workbook string
	Sheets   []string
}

// Error implements the error interface
func (e *MissingSheetError) Error() string {
	if e.Workbook != "" {
		return fmt.Sprintf("workbook %s is missing required sheet(s): %s", e.Workbook, strings.Join(e.Sheets, ", "))
	}
	return fmt.Sprintf("missing required sheet(s): %s", strings.Join(e.Sheets, ", "))
}

// Is implements errors.Is support
func (e *MissingSheetError) Is(target error) bool {
	return target == ErrMissingSheet
}

// NewMissingSheetError creates a new MissingSheetError
func NewMissingSheetError(workbook string, sheets ...string) *MissingSheetError {
	return &MissingSheetError{Workbook: workbook, Sheets: sheets}
}

// NoCommonColumnsError reports that the source and target datasets share no
// columns, so no dimension set can be chosen. Fatal for the request.
type NoCommonColumnsError struct {
	Source string
	Target string
}

// Error implements the error interface
func (e *NoCommonColumnsError) Error() string {
	return fmt.Sprintf("no common columns between %s and %s to use as dimensions", e.Source, e.Target)
}

// Is implements errors.Is support
func (e *NoCommonColumnsError) Is(target error) bool {
	return target == ErrNoCommonColumns
}

// NewNoCommonColumnsError creates a new NoCommonColumnsError
func NewNoCommonColumnsError(source, target string) *NoCommonColumnsError {
	return &NoCommonColumnsError{Source: source, Target: target}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "xlsx", "yaml", "json", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// Helper functions for error checking

// IsMissingSheet checks if an error indicates a missing input sheet
func IsMissingSheet(err error) bool {
	return errors.Is(err, ErrMissingSheet)
}

// IsNoCommonColumns checks if an error indicates an empty column intersection
func IsNoCommonColumns(err error) bool {
	return errors.Is(err, ErrNoCommonColumns)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
