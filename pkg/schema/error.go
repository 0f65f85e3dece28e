// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"strings"
)

// ValidationError is returned by Load (and the From* helpers) when the input
// does not conform to the schema. It carries every violation found.
type ValidationError struct {
	Schema     string
	Violations []error
}

var _ error = &ValidationError{}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("Validating %s:\n", e.Schema)
	for _, err := range e.Violations {
		msg += err.Error()
	}
	return msg
}

// HasViolations indicates whether this ValidationError contains any violations.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

func (e *ValidationError) add(err error) {
	e.Violations = append(e.Violations, err)
}

func (e *ValidationError) errOrNil() error {
	if e.HasViolations() {
		return e
	}
	return nil
}

// MissingFieldError reports a required field absent from the input.
type MissingFieldError struct {
	Schema string
	Field  *Field
}

// MismatchedTypeError reports a present value of the wrong type.
type MismatchedTypeError struct {
	Schema string
	Field  *Field
	Found  interface{}
}

// InvalidValueError reports a value of the right type that fails a
// constraint such as a format or a minimum.
type InvalidValueError struct {
	Schema  string
	Field   *Field
	Found   interface{}
	Message string
}

// UnexpectedKeyError reports an input key the schema does not declare. It is
// only produced when unknown keys are disallowed.
type UnexpectedKeyError struct {
	Schema string
	Key    string
	// Suggestion is a declared field the key may be a misspelling of.
	Suggestion string
}

// NotAMappingError reports input that is not a key-value mapping.
type NotAMappingError struct {
	Schema string
	Found  interface{}
}

// NonStringKeyError reports a mapping key that is not a string.
type NonStringKeyError struct {
	Schema string
	Key    interface{}
}

func (e MissingFieldError) Error() string {
	position := e.Schema + "." + e.Field.Name
	leftColumnSize := len(position) + 1

	msg := "\n"
	msg += formatLine(leftColumnSize, position, "")
	msg += formatLine(leftColumnSize, "", "MISSING REQUIRED FIELD - the schema requires a value for this field:")
	msg += formatLine(leftColumnSize, "", "     found: (nothing)")
	msg += formatLine(leftColumnSize, "", fmt.Sprintf("  expected: %s", e.Field.Type))
	return msg
}

func (e MismatchedTypeError) Error() string {
	position := e.Schema + "." + e.Field.Name
	leftColumnSize := len(position) + 1

	msg := "\n"
	msg += formatLine(leftColumnSize, position, fmt.Sprintf("%v", e.Found))
	msg += formatLine(leftColumnSize, "", "")
	msg += formatLine(leftColumnSize, "", "TYPE MISMATCH - the value of this item is not what schema expected:")
	msg += formatLine(leftColumnSize, "", fmt.Sprintf("     found: %s", valueTypeAsString(e.Found)))
	msg += formatLine(leftColumnSize, "", fmt.Sprintf("  expected: %s", e.Field.Type))
	return msg
}

func (e InvalidValueError) Error() string {
	position := e.Schema + "." + e.Field.Name
	leftColumnSize := len(position) + 1

	msg := "\n"
	msg += formatLine(leftColumnSize, position, fmt.Sprintf("%v", e.Found))
	msg += formatLine(leftColumnSize, "", "")
	msg += formatLine(leftColumnSize, "", "INVALID VALUE - "+e.Message)
	return msg
}

func (e UnexpectedKeyError) Error() string {
	position := e.Schema + "." + e.Key
	leftColumnSize := len(position) + 1

	msg := "\n"
	msg += formatLine(leftColumnSize, position, "")
	msg += formatLine(leftColumnSize, "", "UNEXPECTED KEY - the key of this item was not found in the schema:")
	msg += formatLine(leftColumnSize, "", fmt.Sprintf("     found: %s", e.Key))
	msg += formatLine(leftColumnSize, "", fmt.Sprintf("  expected: (a field declared by %s)", e.Schema))
	if e.Suggestion != "" {
		msg += formatLine(leftColumnSize, "", fmt.Sprintf("      hint: did you mean '%s'?", e.Suggestion))
	}
	return msg
}

func (e NotAMappingError) Error() string {
	position := e.Schema
	leftColumnSize := len(position) + 1

	msg := "\n"
	msg += formatLine(leftColumnSize, position, "")
	msg += formatLine(leftColumnSize, "", "TYPE MISMATCH - the document is not what schema expected:")
	msg += formatLine(leftColumnSize, "", fmt.Sprintf("     found: %s", valueTypeAsString(e.Found)))
	msg += formatLine(leftColumnSize, "", "  expected: map")
	return msg
}

func (e NonStringKeyError) Error() string {
	position := fmt.Sprintf("%s.%v", e.Schema, e.Key)
	leftColumnSize := len(position) + 1

	msg := "\n"
	msg += formatLine(leftColumnSize, position, "")
	msg += formatLine(leftColumnSize, "", "TYPE MISMATCH - the key of this item is not what schema expected:")
	msg += formatLine(leftColumnSize, "", fmt.Sprintf("     found: %s", valueTypeAsString(e.Key)))
	msg += formatLine(leftColumnSize, "", "  expected: string")
	return msg
}

func formatLine(leftColumnSize int, left, right string) string {
	if len(right) > 0 {
		right = " " + right
	}
	return fmt.Sprintf("%s%s|%s\n", left, strings.Repeat(" ", leftColumnSize-len(left)), right)
}
