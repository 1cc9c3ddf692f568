/*
Copyright 2026 go-uri Authors

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

import "fmt"

// ErrorKind identifies one failure class out of the closed set this
// package can report. Parse-time kinds are carried by ParseError,
// mutation-time kinds by MutationError.
type ErrorKind uint8

const (
	// InvalidCharacter reports a byte outside the allowed character class
	// of the grammar production being matched.
	InvalidCharacter ErrorKind = iota + 1
	// InvalidPercentEncoding reports a '%' that is not followed by two
	// hexadecimal digits within the current component.
	InvalidPercentEncoding
	// IncompleteOrMalformedComponent reports a required production that
	// could not be matched, such as a missing scheme, an unterminated IP
	// literal, or trailing input after the grammar is exhausted.
	IncompleteOrMalformedComponent
	// RequiredComponent reports an attempt to remove a component the
	// grammar requires, or to set a component whose enclosing structure
	// (the authority) is absent.
	RequiredComponent
	// InvalidReplacementValue reports a replacement string that fails the
	// character-class rules of its target component.
	InvalidReplacementValue
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "invalid character"
	case InvalidPercentEncoding:
		return "invalid percent encoding"
	case IncompleteOrMalformedComponent:
		return "incomplete or malformed component"
	case RequiredComponent:
		return "required component"
	case InvalidReplacementValue:
		return "invalid replacement value"
	}
	return "unknown"
}

// ParseError is the error type returned by Parse. It pins the failure to
// a grammar production and a byte offset in the input.
type ParseError struct {
	Kind       ErrorKind
	Production string
	Offset     int
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("uri: %s in %s at offset %d", e.Kind, e.Production, e.Offset)
}

// errInvalidChar reports a byte outside the character class of the named
// production.
func errInvalidChar(production string, offset int) *ParseError {
	return &ParseError{Kind: InvalidCharacter, Production: production, Offset: offset}
}

// errInvalidPct reports a malformed percent triplet starting at offset.
func errInvalidPct(offset int) *ParseError {
	return &ParseError{Kind: InvalidPercentEncoding, Production: "pct-encoded", Offset: offset}
}

// errIncomplete reports a production that could not be matched at offset.
func errIncomplete(production string, offset int) *ParseError {
	return &ParseError{Kind: IncompleteOrMalformedComponent, Production: production, Offset: offset}
}

// MutationError is the error type returned by the Set and Remove methods.
// For InvalidReplacementValue it wraps the ParseError describing why the
// replacement failed validation.
type MutationError struct {
	Kind      ErrorKind
	Component string
	Err       error
}

// Error returns the string representation of the mutation error.
func (e *MutationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("uri: %s for %s: %v", e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("uri: %s: %s", e.Kind, e.Component)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *MutationError) Unwrap() error {
	return e.Err
}

// errRequired reports an attempt to remove a required component or to
// address a component of an absent authority.
func errRequired(component string) *MutationError {
	return &MutationError{Kind: RequiredComponent, Component: component}
}

// errReplacement wraps the validation failure of a replacement value.
func errReplacement(component string, err error) *MutationError {
	return &MutationError{Kind: InvalidReplacementValue, Component: component, Err: err}
}

// BufferSizeError is returned by Recompose when the caller's buffer
// cannot hold the serialized URI. Required carries the exact byte count
// needed so the caller can retry with a larger buffer.
type BufferSizeError struct {
	Required int
}

// Error returns the string representation of the buffer size error.
func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("uri: buffer too small, %d bytes required", e.Required)
}
