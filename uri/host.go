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
	"strings"

	"golang.org/x/net/idna"
)

// HostKind is the classification of an authority host.
type HostKind uint8

const (
	// HostDomain is an opaque registered name.
	HostDomain HostKind = iota
	// HostV4 is a dotted-decimal IPv4 literal.
	HostV4
	// HostV6 is a bracketed IP literal (IPv6 or IPvFuture); Text holds
	// the bracket interior.
	HostV6
)

// String returns the name of the host kind.
func (k HostKind) String() string {
	switch k {
	case HostV4:
		return "IPv4"
	case HostV6:
		return "IPv6"
	}
	return "domain"
}

// Host is the classified form of an authority host. It is derived on
// demand by URI.Host and never stored, so it always reflects the host
// component's current value.
type Host struct {
	Kind HostKind
	Text string
}

// ASCII returns the host in the form expected by DNS: registered names
// are converted with IDNA (ToASCII, i.e. punycode for any non-ASCII
// labels), IP literals are returned unchanged.
func (h Host) ASCII() (string, error) {
	if h.Kind != HostDomain || h.Text == "" {
		return h.Text, nil
	}
	return idna.ToASCII(h.Text)
}

// classifyHost decides what kind of host a grammatically valid host span
// holds. The span must match the entire IPv4address production to
// classify as V4; a dotted-decimal prefix with trailing characters is a
// registered name like any other. Bracketed literals classify as V6 with
// the brackets stripped.
func classifyHost(host string) Host {
	if isIPv4(host) {
		return Host{Kind: HostV4, Text: host}
	}
	if len(host) >= 2 && host[0] == '[' && host[len(host)-1] == ']' {
		return Host{Kind: HostV6, Text: host[1 : len(host)-1]}
	}
	return Host{Kind: HostDomain, Text: host}
}

// isIPv4 reports whether s matches the whole of
//
//	IPv4address = dec-octet "." dec-octet "." dec-octet "." dec-octet
//
// Octets are 1 to 3 digits with a numeric value of at most 255; leading
// zeros are tolerated.
func isIPv4(s string) bool {
	for group := 0; group < 4; group++ {
		if group > 0 {
			if !strings.HasPrefix(s, ".") {
				return false
			}
			s = s[1:]
		}
		n := 0
		for n < len(s) && isDigit(s[n]) {
			n++
		}
		if n < 1 || n > 3 {
			return false
		}
		if n == 3 && s[:3] > "255" {
			return false
		}
		s = s[n:]
	}
	return s == ""
}
