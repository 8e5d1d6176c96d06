// Package parsererror defines the typed errors shared across the statement
// processing pipeline. Configuration loading distinguishes between soft
// failures (pattern/category config, which falls back to built-in defaults)
// and hard failures (rules config, surfaced as *ConfigurationError).
package parsererror

import "fmt"

// ParseError represents an error during statement text parsing
type ParseError struct {
	Stage string
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Stage, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure on an input file
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// ConfigurationError represents a hard configuration failure. It is returned
// when a custom rules file exists but cannot be used (malformed document,
// top level is not a sequence, or a rule regex does not compile). Pattern and
// category configuration never produces this error; it falls back to the
// built-in defaults instead.
type ConfigurationError struct {
	FilePath string
	Reason   string
	Err      error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error in %s: %s: %v", e.FilePath, e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %s", e.FilePath, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ExtractionError represents a failure to obtain text from a statement
// document, for example when the document is unreadable or the external
// text extraction tool is missing.
type ExtractionError struct {
	FilePath string
	Reason   string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("text extraction failed for %s: %s: %v", e.FilePath, e.Reason, e.Err)
	}
	return fmt.Sprintf("text extraction failed for %s: %s", e.FilePath, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// OutputError represents a failure to write processed transactions out
type OutputError struct {
	FilePath string
	Err      error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("failed to write output %s: %v", e.FilePath, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
