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

// Package uri parses and serializes absolute URIs as defined by RFC 3986.
//
// The package is built for callers that cannot afford hidden allocation:
// Parse decomposes an input string into components represented as byte
// ranges over that same string, accessors hand back zero-copy substrings,
// and Recompose writes the serialized URI into a caller-provided buffer
// of fixed capacity.
//
// Key properties:
//   - Strict validation against the RFC 3986 Appendix A grammar; parsing
//     either yields a fully valid URI or fails atomically.
//   - Percent-encoded octets are validated but never decoded; encoding
//     and decoding of reserved characters is the caller's business.
//   - Per-component mutation (SetFragment, SetHost, ...) that cannot
//     produce a URI that would fail re-parsing.
//   - No normalization, no relative-reference resolution, and no scheme
//     defaulting; what was parsed is what is serialized.
//
// A URI value borrows the input string it was parsed from and any
// replacement strings passed to its Set methods. Distinct URI values may
// be used from distinct goroutines freely; mutating a single URI
// concurrently requires external synchronization.
package uri

import (
	"encoding/json"
	"strconv"
)

// componentState tags a component as absent, as a byte range inside the
// original input, or as a caller-supplied replacement string.
type componentState uint8

const (
	componentAbsent componentState = iota
	componentSpan
	componentReplaced
)

// component is the uniform representation of one URI component. Spans
// always reference the exact input string given at parse time and are
// never adjusted afterwards; mutation swaps the whole component for a
// replacement instead of editing offsets.
type component struct {
	state       componentState
	start, end  int
	replacement string
}

// span builds a component referencing input[start:end].
func span(start, end int) component {
	return component{state: componentSpan, start: start, end: end}
}

// replaced builds a component carrying a caller-supplied value.
func replaced(s string) component {
	return component{state: componentReplaced, replacement: s}
}

// present reports whether the component exists at all. A present
// component may still resolve to the empty string.
func (c component) present() bool {
	return c.state != componentAbsent
}

// resolve returns the component text: a zero-copy substring of the
// original input for spans, the replacement string otherwise. This is
// the single resolution point used by accessors and by Recompose.
func (c component) resolve(input string) string {
	switch c.state {
	case componentSpan:
		return input[c.start:c.end]
	case componentReplaced:
		return c.replacement
	}
	return ""
}

// length returns the byte length the component contributes to the
// serialized URI, delimiters excluded.
func (c component) length() int {
	switch c.state {
	case componentSpan:
		return c.end - c.start
	case componentReplaced:
		return len(c.replacement)
	}
	return 0
}

// URI is an absolute URI decomposed into its RFC 3986 components. Values
// are created by Parse only and hold byte ranges into the parse input;
// the input string and any replacement strings passed to Set methods
// must outlive the URI (Go strings make that automatic).
type URI struct {
	input        string
	scheme       component
	hasAuthority bool
	userinfo     component
	host         component
	port         component
	path         component
	query        component
	fragment     component
}

// Scheme returns the scheme component without the ':' delimiter. A
// successfully parsed URI always has a non-empty scheme.
func (u *URI) Scheme() string {
	return u.scheme.resolve(u.input)
}

// HasAuthority reports whether the URI carries an authority component,
// i.e. whether its hier-part began with "//".
func (u *URI) HasAuthority() bool {
	return u.hasAuthority
}

// HasHost reports whether the URI has a host. The host is mandatory
// inside an authority, so this is equivalent to HasAuthority; note that
// the grammar permits the host text itself to be empty.
func (u *URI) HasHost() bool {
	return u.hasAuthority
}

// Userinfo returns the userinfo component without the '@' delimiter and
// whether it was present.
func (u *URI) Userinfo() (string, bool) {
	if !u.userinfo.present() {
		return "", false
	}
	return u.userinfo.resolve(u.input), true
}

// Host classifies and returns the host component. Classification is
// recomputed on every call from the current host text, so it always
// reflects the latest mutation. The second return is false when the URI
// has no authority.
func (u *URI) Host() (Host, bool) {
	if !u.hasAuthority {
		return Host{}, false
	}
	return classifyHost(u.host.resolve(u.input)), true
}

// Domain returns the host text when the host is a registered name, as
// opposed to an IP literal.
func (u *URI) Domain() (string, bool) {
	h, ok := u.Host()
	if !ok || h.Kind != HostDomain {
		return "", false
	}
	return h.Text, true
}

// Port returns the port component without the ':' delimiter and whether
// it was present. The grammar allows an empty port ("http://host:").
func (u *URI) Port() (string, bool) {
	if !u.port.present() {
		return "", false
	}
	return u.port.resolve(u.input), true
}

// PortNumber returns the port as a number. It reports false when the
// port is absent, empty, or does not fit in 16 bits.
func (u *URI) PortNumber() (uint16, bool) {
	port, ok := u.Port()
	if !ok || port == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// Path returns the path component. A path is always present, though it
// may be the empty string.
func (u *URI) Path() string {
	return u.path.resolve(u.input)
}

// Query returns the query component without the '?' delimiter and
// whether it was present.
func (u *URI) Query() (string, bool) {
	if !u.query.present() {
		return "", false
	}
	return u.query.resolve(u.input), true
}

// Fragment returns the fragment component without the '#' delimiter and
// whether it was present.
func (u *URI) Fragment() (string, bool) {
	if !u.fragment.present() {
		return "", false
	}
	return u.fragment.resolve(u.input), true
}

// MarshalJSON implements the json.Marshaler interface, encoding the URI
// as a JSON string in its serialized form.
func (u *URI) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a
// JSON string into a URI, performing full validation in the process.
func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
