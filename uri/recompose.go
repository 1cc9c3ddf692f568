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

import "unsafe"

// RecomposedLen returns the exact number of bytes Recompose will write:
// the length of all present components in canonical order plus their
// delimiters.
func (u *URI) RecomposedLen() int {
	n := u.scheme.length() + 1 // ':'
	if u.hasAuthority {
		n += authorityPrefixLength
		if u.userinfo.present() {
			n += u.userinfo.length() + 1 // '@'
		}
		n += u.host.length()
		if u.port.present() {
			n += 1 + u.port.length() // ':'
		}
	}
	n += u.path.length()
	if u.query.present() {
		n += 1 + u.query.length() // '?'
	}
	if u.fragment.present() {
		n += 1 + u.fragment.length() // '#'
	}
	return n
}

// Recompose serializes the URI into buf in canonical component order,
// per RFC 3986, Section 5.3:
//
//	scheme ":" [ "//" authority ] path [ "?" query ] [ "#" fragment ]
//
// Each component resolves to its original input range or to its
// replacement value; nothing is re-encoded or normalized. When buf is
// too small, nothing is written and the returned BufferSizeError carries
// the required length. On success the returned string is a zero-copy
// view over exactly the bytes written; it aliases buf and is invalidated
// by any later modification of buf.
//
// Recompose never mutates the URI; serializing twice yields identical
// bytes.
func (u *URI) Recompose(buf []byte) (string, error) {
	required := u.RecomposedLen()
	if required > len(buf) {
		return "", &BufferSizeError{Required: required}
	}

	n := copy(buf, u.scheme.resolve(u.input))
	buf[n] = ':'
	n++
	if u.hasAuthority {
		n += copy(buf[n:], "//")
		if u.userinfo.present() {
			n += copy(buf[n:], u.userinfo.resolve(u.input))
			buf[n] = '@'
			n++
		}
		n += copy(buf[n:], u.host.resolve(u.input))
		if u.port.present() {
			buf[n] = ':'
			n++
			n += copy(buf[n:], u.port.resolve(u.input))
		}
	}
	n += copy(buf[n:], u.path.resolve(u.input))
	if u.query.present() {
		buf[n] = '?'
		n++
		n += copy(buf[n:], u.query.resolve(u.input))
	}
	if u.fragment.present() {
		buf[n] = '#'
		n++
		n += copy(buf[n:], u.fragment.resolve(u.input))
	}

	// The scheme is never empty, so n > 0 and buf has a backing array.
	return unsafe.String(unsafe.SliceData(buf), n), nil
}

// String returns the serialized URI as a freshly allocated string. Use
// Recompose directly to control the buffer.
func (u *URI) String() string {
	buf := make([]byte, u.RecomposedLen())
	s, err := u.Recompose(buf)
	if err != nil {
		// RecomposedLen sized the buffer; this cannot happen.
		return ""
	}
	return s
}
