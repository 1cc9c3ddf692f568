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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package uri

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, input string) *URI {
	t.Helper()
	u, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return u
}

func TestMutateThenRecompose(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		mutate func(*URI) error
		want   string
	}{
		{
			name:   "set fragment",
			input:  "https://example.com/data.csv",
			mutate: func(u *URI) error { return u.SetFragment("cell=4,1-6,2") },
			want:   "https://example.com/data.csv#cell=4,1-6,2",
		},
		{
			name:  "remove fragment",
			input: "https://example.com/data.csv#row=4",
			mutate: func(u *URI) error {
				u.RemoveFragment()
				return nil
			},
			want: "https://example.com/data.csv",
		},
		{
			name:   "set query",
			input:  "https://example.com/products",
			mutate: func(u *URI) error { return u.SetQuery("page=2") },
			want:   "https://example.com/products?page=2",
		},
		{
			name:  "remove query",
			input: "https://example.com/products?page=2",
			mutate: func(u *URI) error {
				u.RemoveQuery()
				return nil
			},
			want: "https://example.com/products",
		},
		{
			name:   "set path on empty path",
			input:  "https://example.com",
			mutate: func(u *URI) error { return u.SetPath("/api/comments") },
			want:   "https://example.com/api/comments",
		},
		{
			name:   "replace path",
			input:  "https://example.com/api",
			mutate: func(u *URI) error { return u.SetPath("/data/report.csv") },
			want:   "https://example.com/data/report.csv",
		},
		{
			name:   "set port",
			input:  "ssh://example.net:2048/",
			mutate: func(u *URI) error { return u.SetPort("4096") },
			want:   "ssh://example.net:4096/",
		},
		{
			name:  "remove port",
			input: "ssh://example.net:2048/",
			mutate: func(u *URI) error {
				u.RemovePort()
				return nil
			},
			want: "ssh://example.net/",
		},
		{
			name:   "set host",
			input:  "https://example.net",
			mutate: func(u *URI) error { return u.SetHost("example.org") },
			want:   "https://example.org",
		},
		{
			name:   "set bracketed host",
			input:  "https://example.net/x",
			mutate: func(u *URI) error { return u.SetHost("[::1]") },
			want:   "https://[::1]/x",
		},
		{
			name:   "set userinfo",
			input:  "ftp://example.com/",
			mutate: func(u *URI) error { return u.SetUserinfo("user1") },
			want:   "ftp://user1@example.com/",
		},
		{
			name:  "remove userinfo",
			input: "ftp://rms@example.com/",
			mutate: func(u *URI) error {
				u.RemoveUserinfo()
				return nil
			},
			want: "ftp://example.com/",
		},
		{
			name:   "set scheme",
			input:  "http://example.com/ws",
			mutate: func(u *URI) error { return u.SetScheme("wss") },
			want:   "wss://example.com/ws",
		},
		{
			name:  "several mutations stack",
			input: "http://example.com/a?x#y",
			mutate: func(u *URI) error {
				if err := u.SetScheme("https"); err != nil {
					return err
				}
				if err := u.SetPath("/b"); err != nil {
					return err
				}
				u.RemoveQuery()
				return u.SetFragment("z")
			},
			want: "https://example.com/b#z",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := mustParse(t, tc.input)
			if err := tc.mutate(u); err != nil {
				t.Fatalf("mutation failed: %v", err)
			}
			if got := u.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}

			// A mutated URI always re-parses to the same serialization.
			reparsed, err := Parse(u.String())
			if err != nil {
				t.Fatalf("re-parsing %q failed: %v", u.String(), err)
			}
			if reparsed.String() != tc.want {
				t.Errorf("re-parse serialized to %q, want %q", reparsed.String(), tc.want)
			}
		})
	}
}

func TestMutateRejects(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		mutate func(*URI) error
		kind   ErrorKind
	}{
		{
			name:   "empty scheme",
			input:  "https://example.com",
			mutate: func(u *URI) error { return u.SetScheme("") },
			kind:   InvalidReplacementValue,
		},
		{
			name:   "scheme starting with digit",
			input:  "https://example.com",
			mutate: func(u *URI) error { return u.SetScheme("1ab") },
			kind:   InvalidReplacementValue,
		},
		{
			name:   "space in fragment",
			input:  "https://example.com",
			mutate: func(u *URI) error { return u.SetFragment("a b") },
			kind:   InvalidReplacementValue,
		},
		{
			name:   "hash in fragment",
			input:  "https://example.com",
			mutate: func(u *URI) error { return u.SetFragment("a#b") },
			kind:   InvalidReplacementValue,
		},
		{
			name:   "hash in query",
			input:  "https://example.com",
			mutate: func(u *URI) error { return u.SetQuery("a#b") },
			kind:   InvalidReplacementValue,
		},
		{
			name:   "truncated percent escape in query",
			input:  "https://example.com",
			mutate: func(u *URI) error { return u.SetQuery("a%2") },
			kind:   InvalidReplacementValue,
		},
		{
			name:   "relative path with authority present",
			input:  "https://example.com",
			mutate: func(u *URI) error { return u.SetPath("api/comments") },
			kind:   InvalidReplacementValue,
		},
		{
			name:   "double-slash path without authority",
			input:  "mailto:a@b",
			mutate: func(u *URI) error { return u.SetPath("//a") },
			kind:   InvalidReplacementValue,
		},
		{
			name:   "letter in port",
			input:  "https://example.com",
			mutate: func(u *URI) error { return u.SetPort("8a") },
			kind:   InvalidReplacementValue,
		},
		{
			name:   "space in host",
			input:  "https://example.com",
			mutate: func(u *URI) error { return u.SetHost("exa mple.com") },
			kind:   InvalidReplacementValue,
		},
		{
			name:   "unterminated bracket in host",
			input:  "https://example.com",
			mutate: func(u *URI) error { return u.SetHost("[::1") },
			kind:   InvalidReplacementValue,
		},
		{
			name:   "host without authority",
			input:  "mailto:a@b",
			mutate: func(u *URI) error { return u.SetHost("example.com") },
			kind:   RequiredComponent,
		},
		{
			name:   "port without authority",
			input:  "mailto:a@b",
			mutate: func(u *URI) error { return u.SetPort("80") },
			kind:   RequiredComponent,
		},
		{
			name:   "userinfo without authority",
			input:  "mailto:a@b",
			mutate: func(u *URI) error { return u.SetUserinfo("rms") },
			kind:   RequiredComponent,
		},
		{
			name:   "host removal with authority present",
			input:  "https://example.com",
			mutate: func(u *URI) error { return u.RemoveHost() },
			kind:   RequiredComponent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := mustParse(t, tc.input)
			before := u.String()

			err := tc.mutate(u)
			if err == nil {
				t.Fatalf("mutation succeeded as %q, want kind %v", u.String(), tc.kind)
			}
			var mutationErr *MutationError
			if !errors.As(err, &mutationErr) {
				t.Fatalf("mutation returned %T, want *MutationError", err)
			}
			if mutationErr.Kind != tc.kind {
				t.Errorf("Kind = %v, want %v (%v)", mutationErr.Kind, tc.kind, mutationErr)
			}
			if mutationErr.Kind == InvalidReplacementValue && mutationErr.Unwrap() == nil {
				t.Error("InvalidReplacementValue does not wrap the validation error")
			}

			// Failed mutations leave the URI untouched.
			if got := u.String(); got != before {
				t.Errorf("URI changed by failed mutation: %q -> %q", before, got)
			}
		})
	}
}

func TestRemoveHostWithoutAuthority(t *testing.T) {
	u := mustParse(t, "mailto:a@b")
	if err := u.RemoveHost(); err != nil {
		t.Errorf("RemoveHost() on a path-only URI failed: %v", err)
	}
}

func TestMutationReclassifiesHost(t *testing.T) {
	u := mustParse(t, "https://example.com")

	if err := u.SetHost("10.0.0.1"); err != nil {
		t.Fatalf("SetHost failed: %v", err)
	}
	if h, _ := u.Host(); h.Kind != HostV4 || h.Text != "10.0.0.1" {
		t.Errorf("Host() = %+v, want V4 10.0.0.1", h)
	}

	if err := u.SetHost("[2001:db8::1]"); err != nil {
		t.Fatalf("SetHost failed: %v", err)
	}
	if h, _ := u.Host(); h.Kind != HostV6 || h.Text != "2001:db8::1" {
		t.Errorf("Host() = %+v, want V6 2001:db8::1", h)
	}
}

func TestEmptyReplacementsKeepDelimiters(t *testing.T) {
	u := mustParse(t, "https://example.com/x")
	if err := u.SetQuery(""); err != nil {
		t.Fatalf("SetQuery failed: %v", err)
	}
	if err := u.SetFragment(""); err != nil {
		t.Fatalf("SetFragment failed: %v", err)
	}
	if err := u.SetPort(""); err != nil {
		t.Fatalf("SetPort failed: %v", err)
	}
	if got, want := u.String(), "https://example.com:/x?#"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
