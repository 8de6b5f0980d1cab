/*
Copyright 2025 Urinorm Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"fmt"
	"strings"
)

// Error is a string type that implements the error interface. It is used for
// the sentinel errors of this package so they can be declared as constants.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidArgument is matched by every error reporting that a raw
	// component value does not follow its grammar.
	ErrInvalidArgument Error = "invalid argument"
	// ErrInvalidStructure is matched by every error reporting that otherwise
	// valid components cannot form a well-formed authority or URI.
	ErrInvalidStructure Error = "invalid structure"
)

// Component names one of the parts of a URI.
type Component string

// URI components, in recomposition order. ComponentAuthority names the
// combination of user information, host and port.
const (
	ComponentScheme    Component = "scheme"
	ComponentUserInfo  Component = "user-info"
	ComponentHost      Component = "host"
	ComponentPort      Component = "port"
	ComponentAuthority Component = "authority"
	ComponentPath      Component = "path"
	ComponentQuery     Component = "query"
	ComponentFragment  Component = "fragment"
)

// NormalizationError reports that a raw component value could not be reduced
// to its canonical form. Err carries the more specific cause when the
// component is made of several parts (domain labels, IPv6 segments).
type NormalizationError struct {
	Component Component
	Value     string
	Err       error
}

func newNormalizationError(c Component, value string, err error) *NormalizationError {
	return &NormalizationError{Component: c, Value: value, Err: err}
}

// Error returns the string representation of the normalization error.
func (e *NormalizationError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Component, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the nested cause, if any.
func (e *NormalizationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidArgument.
func (e *NormalizationError) Is(target error) bool { return target == ErrInvalidArgument }

// StructureError reports an authority or URI whose components are each valid
// but do not combine into something that can be rendered.
type StructureError struct {
	Message     string
	Combination string
}

// Error returns the string representation of the structure error.
func (e *StructureError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Combination)
}

// Is reports whether target is ErrInvalidStructure.
func (e *StructureError) Is(target error) bool { return target == ErrInvalidStructure }

// ParseError is the error type returned by Parse. It names the offending
// component and the full input, and wraps the underlying failure.
type ParseError struct {
	Input     string
	Component Component
	Err       error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("URI parse error")
	if e.Component != "" {
		b.WriteString(" in ")
		b.WriteString(string(e.Component))
	}
	fmt.Fprintf(&b, " of %q", e.Input)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidArgument.
func (e *ParseError) Is(target error) bool { return target == ErrInvalidArgument }

// kindError describes a low level grammar failure. It is nested as the cause
// of a NormalizationError.
type kindError struct {
	message string
	char    rune
	details string
}

// Error formats the error message with any available character or details.
func (e *kindError) Error() string {
	msg := e.message
	if e.char != 0 {
		msg = fmt.Sprintf("%s '%c'", msg, e.char)
	} else if e.details != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.details)
	}
	return msg
}
