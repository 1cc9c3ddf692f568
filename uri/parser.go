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

import (
	"net"
	"strings"
)

// authorityPrefixLength is the length of the string "//".
const authorityPrefixLength = 2

// Parse parses and validates a string as an absolute URI per RFC 3986,
// Appendix A. The entire input must be consumed; relative references
// (inputs without a scheme) are rejected.
//
// The returned URI references byte ranges of the input string and
// performs no copying; percent-encoded octets are validated but left
// encoded.
func Parse(input string) (*URI, error) {
	p := &parser{input: input, uri: URI{input: input}}
	if err := p.parseURI(); err != nil {
		return nil, err
	}
	return &p.uri, nil
}

// parser walks the input left to right with a single byte cursor. Each
// production advances pos monotonically; once a production commits (for
// example the ':' ending a scheme) the cursor never moves back into an
// earlier alternative.
type parser struct {
	input string
	pos   int
	uri   URI
}

// parseURI recognizes
//
//	URI = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
func (p *parser) parseURI() error {
	if err := p.parseScheme(); err != nil {
		return err
	}
	if err := p.parseHierPart(); err != nil {
		return err
	}
	if p.pos < len(p.input) && p.input[p.pos] == '?' {
		if err := p.parseQuery(); err != nil {
			return err
		}
	}
	if p.pos < len(p.input) && p.input[p.pos] == '#' {
		if err := p.parseFragment(); err != nil {
			return err
		}
	}
	if p.pos != len(p.input) {
		return errIncomplete("URI", p.pos)
	}
	return nil
}

// parseScheme recognizes
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
//
// followed by the mandatory ':' separator. The scheme is required: this
// parser accepts absolute URIs only.
func (p *parser) parseScheme() error {
	if len(p.input) == 0 {
		return errIncomplete("scheme", 0)
	}
	if !isAlpha(p.input[0]) {
		return errInvalidChar("scheme", 0)
	}
	i := 1
	for i < len(p.input) && isSchemeChar(p.input[i]) {
		i++
	}
	if i == len(p.input) {
		// The scheme-char run hit end of input without the ':' separator.
		return errIncomplete("scheme", i)
	}
	if p.input[i] != ':' {
		return errInvalidChar("scheme", i)
	}
	p.uri.scheme = span(0, i)
	p.pos = i + 1
	return nil
}

// parseHierPart recognizes
//
//	hier-part = "//" authority path-abempty
//	          / path-absolute / path-rootless / path-empty
//
// The "//" prefix commits to the authority alternative. Without it the
// three path alternatives reduce to one byte scan: path-absolute vs
// path-rootless vs path-empty differ only in their first byte, which the
// scan validates like any other, and a no-authority path can never open
// with "//" because that spelling was consumed as the authority prefix.
func (p *parser) parseHierPart() error {
	if strings.HasPrefix(p.input[p.pos:], "//") {
		p.pos += authorityPrefixLength
		if err := p.parseAuthority(); err != nil {
			return err
		}
	}
	return p.parsePath()
}

// parseAuthority recognizes
//
//	authority = [ userinfo "@" ] host [ ":" port ]
//
// The authority extends to the first '/', '?', or '#', or to end of
// input. Userinfo is split off at the last '@' and the port at the last
// ':' outside an IP literal, then each part is validated against its own
// character class.
func (p *parser) parseAuthority() error {
	start := p.pos
	end := start
	for end < len(p.input) {
		if c := p.input[end]; c == '/' || c == '?' || c == '#' {
			break
		}
		end++
	}

	hostStart := start
	if at := strings.LastIndexByte(p.input[start:end], '@'); at >= 0 {
		userinfoEnd := start + at
		if err := validateUserinfo(p.input, start, userinfoEnd); err != nil {
			return err
		}
		p.uri.userinfo = span(start, userinfoEnd)
		hostStart = userinfoEnd + 1
	}

	hostEnd, portStart, err := splitHostPort(p.input, hostStart, end)
	if err != nil {
		return err
	}
	if err := validateHost(p.input, hostStart, hostEnd); err != nil {
		return err
	}
	p.uri.host = span(hostStart, hostEnd)

	if portStart >= 0 {
		if err := validatePort(p.input, portStart, end); err != nil {
			return err
		}
		p.uri.port = span(portStart, end)
	}

	p.uri.hasAuthority = true
	p.pos = end
	return nil
}

// splitHostPort locates the host/port boundary inside input[hostStart:end].
// It returns the host end offset and the port start offset, or -1 when no
// port is present. A bracketed IP literal keeps its brackets as part of
// the host; a registered name is split at its last colon.
func splitHostPort(input string, hostStart, end int) (hostEnd, portStart int, err error) {
	if hostStart < end && input[hostStart] == '[' {
		rb := strings.IndexByte(input[hostStart:end], ']')
		if rb < 0 {
			return 0, 0, errIncomplete("IP-literal", hostStart)
		}
		hostEnd = hostStart + rb + 1
		if hostEnd == end {
			return hostEnd, -1, nil
		}
		if input[hostEnd] != ':' {
			return 0, 0, errInvalidChar("authority", hostEnd)
		}
		return hostEnd, hostEnd + 1, nil
	}
	if colon := strings.LastIndexByte(input[hostStart:end], ':'); colon >= 0 {
		return hostStart + colon, hostStart + colon + 1, nil
	}
	return end, -1, nil
}

// validateUserinfo checks input[lo:hi] against
//
//	userinfo = *( unreserved / pct-encoded / sub-delims / ":" )
func validateUserinfo(input string, lo, hi int) error {
	for i := lo; i < hi; {
		c := input[i]
		if c == '%' {
			next, err := checkPctTriplet(input, i, hi)
			if err != nil {
				return err
			}
			i = next
			continue
		}
		if !isUserinfoChar(c) {
			return errInvalidChar("userinfo", i)
		}
		i++
	}
	return nil
}

// validateHost checks input[lo:hi] against
//
//	host = IP-literal / IPv4address / reg-name
//
// An IPv4 literal is also a valid reg-name, so only the bracketed
// IP-literal form needs structural validation here; classification of
// dotted-decimal hosts happens on demand at read time.
func validateHost(input string, lo, hi int) error {
	host := input[lo:hi]
	if strings.HasPrefix(host, "[") {
		if !strings.HasSuffix(host, "]") {
			return errIncomplete("IP-literal", lo)
		}
		return validateIPLiteral(host[1:len(host)-1], lo+1)
	}
	return validateRegName(input, lo, hi)
}

// validateIPLiteral checks the bracket interior of an IP literal:
// an IPvFuture when it opens with 'v', an IPv6 address otherwise.
func validateIPLiteral(interior string, base int) error {
	if strings.HasPrefix(interior, "v") || strings.HasPrefix(interior, "V") {
		return validateIPvFuture(interior, base)
	}
	// IPv6address always contains a colon; the extra check keeps
	// net.ParseIP from accepting a bare dotted-decimal inside brackets.
	if !strings.Contains(interior, ":") || net.ParseIP(interior) == nil {
		return errIncomplete("IPv6address", base)
	}
	return nil
}

// validateIPvFuture checks
//
//	IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
func validateIPvFuture(interior string, base int) error {
	dot := strings.IndexByte(interior, '.')
	if dot < 0 {
		return errIncomplete("IPvFuture", base)
	}
	version, address := interior[1:dot], interior[dot+1:]
	if version == "" || address == "" {
		return errIncomplete("IPvFuture", base)
	}
	for i := 0; i < len(version); i++ {
		if !isHexDigit(version[i]) {
			return errInvalidChar("IPvFuture", base+1+i)
		}
	}
	for i := 0; i < len(address); i++ {
		if c := address[i]; !isUnreservedOrSubDelim(c) && c != ':' {
			return errInvalidChar("IPvFuture", base+dot+1+i)
		}
	}
	return nil
}

// validateRegName checks input[lo:hi] against
//
//	reg-name = *( unreserved / pct-encoded / sub-delims )
func validateRegName(input string, lo, hi int) error {
	for i := lo; i < hi; {
		c := input[i]
		if c == '%' {
			next, err := checkPctTriplet(input, i, hi)
			if err != nil {
				return err
			}
			i = next
			continue
		}
		if !isUnreservedOrSubDelim(c) {
			return errInvalidChar("reg-name", i)
		}
		i++
	}
	return nil
}

// validatePort checks input[lo:hi] against
//
//	port = *DIGIT
func validatePort(input string, lo, hi int) error {
	for i := lo; i < hi; i++ {
		if !isDigit(input[i]) {
			return errInvalidChar("port", i)
		}
	}
	return nil
}

// parsePath consumes the path component: a run of pchar and '/' bytes up
// to the next '?' or '#' delimiter or end of input. The path is always
// recorded, possibly as an empty span.
func (p *parser) parsePath() error {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '?' || c == '#' {
			break
		}
		if c == '%' {
			next, err := checkPctTriplet(p.input, p.pos, len(p.input))
			if err != nil {
				return err
			}
			p.pos = next
			continue
		}
		if c != '/' && !isPChar(c) {
			return errInvalidChar("path", p.pos)
		}
		p.pos++
	}
	p.uri.path = span(start, p.pos)
	return nil
}

// parseQuery consumes the '?' delimiter and recognizes
//
//	query = *( pchar / "/" / "?" )
func (p *parser) parseQuery() error {
	p.pos++ // '?'
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '#' {
			break
		}
		if c == '%' {
			next, err := checkPctTriplet(p.input, p.pos, len(p.input))
			if err != nil {
				return err
			}
			p.pos = next
			continue
		}
		if !isQueryOrFragmentChar(c) {
			return errInvalidChar("query", p.pos)
		}
		p.pos++
	}
	p.uri.query = span(start, p.pos)
	return nil
}

// parseFragment consumes the '#' delimiter and recognizes
//
//	fragment = *( pchar / "/" / "?" )
func (p *parser) parseFragment() error {
	p.pos++ // '#'
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '%' {
			next, err := checkPctTriplet(p.input, p.pos, len(p.input))
			if err != nil {
				return err
			}
			p.pos = next
			continue
		}
		if !isQueryOrFragmentChar(c) {
			return errInvalidChar("fragment", p.pos)
		}
		p.pos++
	}
	p.uri.fragment = span(start, p.pos)
	return nil
}

// checkPctTriplet validates the atomic "%" HEXDIG HEXDIG triplet
// starting at off and returns the offset past it. The triplet must fit
// entirely before limit, the end of the enclosing component.
func checkPctTriplet(input string, off, limit int) (int, error) {
	if off+3 > limit || !isHexDigit(input[off+1]) || !isHexDigit(input[off+2]) {
		return 0, errInvalidPct(off)
	}
	return off + 3, nil
}
