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

// The predicates below implement the fixed US-ASCII character classes of
// RFC 3986, Appendix A. URIs are ASCII by definition; any byte >= 0x80
// fails every predicate and is reported as an invalid character by the
// caller.

// isAlpha checks if a byte is an ASCII letter.
func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isDigit checks if a byte is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isHexDigit checks if a byte is an ASCII hexadecimal digit.
func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// isSchemeChar checks a byte against the scheme continuation set:
// ALPHA / DIGIT / "+" / "-" / ".". The leading byte of a scheme is
// restricted further to ALPHA.
func isSchemeChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '+' || c == '-' || c == '.'
}

// isUnreserved checks a byte against the unreserved set:
// ALPHA / DIGIT / "-" / "." / "_" / "~".
func isUnreserved(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// isSubDelim checks a byte against the sub-delims set.
func isSubDelim(c byte) bool {
	return strings.IndexByte("!$&'()*+,;=", c) >= 0
}

// isUnreservedOrSubDelim combines the two sets shared by the userinfo,
// reg-name, and pchar productions.
func isUnreservedOrSubDelim(c byte) bool {
	return isUnreserved(c) || isSubDelim(c)
}

// isPChar checks a byte against the pchar set, percent-encoding aside:
// unreserved / sub-delims / ":" / "@". Percent triplets are handled as
// an atomic unit by the scanner, never here.
func isPChar(c byte) bool {
	return isUnreservedOrSubDelim(c) || c == ':' || c == '@'
}

// isUserinfoChar checks a byte against the userinfo set, percent-encoding
// aside: unreserved / sub-delims / ":".
func isUserinfoChar(c byte) bool {
	return isUnreservedOrSubDelim(c) || c == ':'
}

// isQueryOrFragmentChar checks a byte against the query and fragment set,
// percent-encoding aside: pchar / "/" / "?".
func isQueryOrFragmentChar(c byte) bool {
	return isPChar(c) || c == '/' || c == '?'
}
