package types

import (
	"fmt"
	"strings"
)

// Error tag constants classifying Slate runtime errors.
const (
	TagTypeError = "TypeError"
	TagNameError = "NameError"
)

// RuntimeError represents a Slate evaluation error with the source line of
// the offending token, a human-readable message, and classification tags.
// Raising one unwinds evaluation to the top-level Interpret call.
type RuntimeError struct {
	Message string
	Line    int
	Tags    []string
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s (line=%d, tags=[%s])", e.Message, e.Line, strings.Join(e.Tags, ", "))
}

// HasTag returns true if the error has the specified tag.
func (e *RuntimeError) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NewTypeError creates a TypeError for an operator applied to operands of
// the wrong kind.
func NewTypeError(line int, msg string) *RuntimeError {
	return &RuntimeError{Message: msg, Line: line, Tags: []string{TagTypeError}}
}

// NewNameError creates a NameError for an undefined variable access or
// assignment.
func NewNameError(line int, msg string) *RuntimeError {
	return &RuntimeError{Message: msg, Line: line, Tags: []string{TagNameError}}
}
