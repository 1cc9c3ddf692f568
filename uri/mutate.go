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

import "strings"

// The Set methods below validate the replacement against the same
// character-class rules the parser enforces for the corresponding
// production, so a mutated URI always re-parses to itself. On failure
// the URI is left untouched; on success the component is swapped for
// the replacement string, which must outlive the URI.
//
// Components the grammar makes optional have a matching Remove method.
// The scheme and the path have none (both are mandatory), and removing
// the host of a present authority is refused, since an authority
// without a host cannot be expressed.

// SetScheme replaces the scheme component. The value is validated
// against the scheme production and must be non-empty.
func (u *URI) SetScheme(s string) error {
	if s == "" {
		return errReplacement("scheme", errIncomplete("scheme", 0))
	}
	if !isAlpha(s[0]) {
		return errReplacement("scheme", errInvalidChar("scheme", 0))
	}
	for i := 1; i < len(s); i++ {
		if !isSchemeChar(s[i]) {
			return errReplacement("scheme", errInvalidChar("scheme", i))
		}
	}
	u.scheme = replaced(s)
	return nil
}

// SetUserinfo replaces the userinfo component. It fails with
// RequiredComponent when the URI has no authority to carry one.
func (u *URI) SetUserinfo(s string) error {
	if !u.hasAuthority {
		return errRequired("authority")
	}
	if err := validateUserinfo(s, 0, len(s)); err != nil {
		return errReplacement("userinfo", err)
	}
	u.userinfo = replaced(s)
	return nil
}

// RemoveUserinfo drops the userinfo component if present.
func (u *URI) RemoveUserinfo() {
	u.userinfo = component{}
}

// SetHost replaces the host component. The value may be a registered
// name (possibly empty), a dotted-decimal literal, or a bracketed IP
// literal including its brackets. It fails with RequiredComponent when
// the URI has no authority.
func (u *URI) SetHost(s string) error {
	if !u.hasAuthority {
		return errRequired("authority")
	}
	if err := validateHost(s, 0, len(s)); err != nil {
		return errReplacement("host", err)
	}
	u.host = replaced(s)
	return nil
}

// RemoveHost fails with RequiredComponent when the URI has an authority:
// the grammar requires a host inside one. Without an authority there is
// no host and the call is a no-op.
func (u *URI) RemoveHost() error {
	if u.hasAuthority {
		return errRequired("host")
	}
	return nil
}

// SetPort replaces the port component. Only decimal digits are allowed;
// the empty string is a valid, present-but-empty port. It fails with
// RequiredComponent when the URI has no authority.
func (u *URI) SetPort(s string) error {
	if !u.hasAuthority {
		return errRequired("authority")
	}
	if err := validatePort(s, 0, len(s)); err != nil {
		return errReplacement("port", err)
	}
	u.port = replaced(s)
	return nil
}

// RemovePort drops the port component if present.
func (u *URI) RemovePort() {
	u.port = component{}
}

// SetPath replaces the path component. Beyond the pchar character class
// the structural rules of the path alternatives apply: with an authority
// the path must be empty or begin with '/', and without one it must not
// begin with "//".
func (u *URI) SetPath(s string) error {
	if u.hasAuthority && s != "" && s[0] != '/' {
		return errReplacement("path", errIncomplete("path-abempty", 0))
	}
	if !u.hasAuthority && strings.HasPrefix(s, "//") {
		return errReplacement("path", errIncomplete("path-absolute", 0))
	}
	for i := 0; i < len(s); {
		c := s[i]
		if c == '%' {
			next, err := checkPctTriplet(s, i, len(s))
			if err != nil {
				return errReplacement("path", err)
			}
			i = next
			continue
		}
		if c != '/' && !isPChar(c) {
			return errReplacement("path", errInvalidChar("path", i))
		}
		i++
	}
	u.path = replaced(s)
	return nil
}

// SetQuery replaces the query component, without the '?' delimiter.
func (u *URI) SetQuery(s string) error {
	if err := validateQueryOrFragment(s, "query"); err != nil {
		return errReplacement("query", err)
	}
	u.query = replaced(s)
	return nil
}

// RemoveQuery drops the query component if present.
func (u *URI) RemoveQuery() {
	u.query = component{}
}

// SetFragment replaces the fragment component, without the '#' delimiter.
func (u *URI) SetFragment(s string) error {
	if err := validateQueryOrFragment(s, "fragment"); err != nil {
		return errReplacement("fragment", err)
	}
	u.fragment = replaced(s)
	return nil
}

// RemoveFragment drops the fragment component if present.
func (u *URI) RemoveFragment() {
	u.fragment = component{}
}

// validateQueryOrFragment checks s against the shared query/fragment
// character class: *( pchar / "/" / "?" ).
func validateQueryOrFragment(s, production string) error {
	for i := 0; i < len(s); {
		c := s[i]
		if c == '%' {
			next, err := checkPctTriplet(s, i, len(s))
			if err != nil {
				return err
			}
			i = next
			continue
		}
		if !isQueryOrFragmentChar(c) {
			return errInvalidChar(production, i)
		}
		i++
	}
	return nil
}
