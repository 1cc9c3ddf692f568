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
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// EncodeIRI converts an internationalized identifier into the ASCII form
// this package's grammar accepts: the input is normalized to Unicode
// Normalization Form C and every non-ASCII rune is percent-encoded as
// its UTF-8 octets, per RFC 3987, Section 3.1. ASCII bytes, existing
// percent triplets included, pass through untouched.
//
// This is an explicit pre-processing step for callers holding IRIs;
// Parse itself never encodes or decodes anything. The result still has
// to satisfy the URI grammar: EncodeIRI does not escape ASCII characters
// that are illegal in a URI, such as spaces.
func EncodeIRI(iri string) string {
	s := norm.NFC.String(iri)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
			continue
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "%%%02X", buf[i])
		}
	}
	return b.String()
}
