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

// SegmentIterator walks the segments of a path lazily, without
// materializing a slice. A zero-copy substring is produced per call to
// Next; no segment is percent-decoded.
type SegmentIterator struct {
	rest string
	done bool
}

// PathSegments returns a fresh iterator over the path's '/'-separated
// segments. A leading '/' is the root delimiter and produces no initial
// empty segment; consecutive slashes produce empty segments; an empty
// path produces no segments at all. Each call returns an independent
// iterator, so iteration is restartable.
func (u *URI) PathSegments() *SegmentIterator {
	path := u.Path()
	if path == "" {
		return &SegmentIterator{done: true}
	}
	return &SegmentIterator{rest: strings.TrimPrefix(path, "/")}
}

// Next returns the next path segment. The second return is false once
// the sequence is exhausted.
func (it *SegmentIterator) Next() (string, bool) {
	if it.done {
		return "", false
	}
	if i := strings.IndexByte(it.rest, '/'); i >= 0 {
		segment := it.rest[:i]
		it.rest = it.rest[i+1:]
		return segment, true
	}
	segment := it.rest
	it.rest = ""
	it.done = true
	return segment, true
}
