/**
 * Copyright (c) 2026, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package values

import (
	"strconv"

	"github.com/selenegql/selene/internal/util"
)

// Path locates the part of an input value a diagnostic refers to. It is a linked list growing
// from the root; each node adds an object field name or a list index. The zero value (nil) is
// the root.
type Path struct {
	prev *Path
	key  interface{}
}

// WithField returns the path extended by an object field name.
func (path *Path) WithField(name string) *Path {
	return &Path{prev: path, key: name}
}

// WithIndex returns the path extended by a list index.
func (path *Path) WithIndex(index int) *Path {
	return &Path{prev: path, key: index}
}

// Empty returns true for the root path.
func (path *Path) Empty() bool {
	return path == nil
}

// Keys returns the path keys from the root outwards. Field names are strings, list indices are
// ints.
func (path *Path) Keys() []interface{} {
	var n int
	for p := path; p != nil; p = p.prev {
		n++
	}
	keys := make([]interface{}, n)
	for p := path; p != nil; p = p.prev {
		n--
		keys[n] = p.key
	}
	return keys
}

// String renders the path as diagnostics quote it, e.g. "value.a[0].b".
func (path *Path) String() string {
	if path == nil {
		return ""
	}
	var buf util.StringBuilder
	buf.WriteString("value")
	for _, key := range path.Keys() {
		switch key := key.(type) {
		case string:
			buf.WriteString(".")
			buf.WriteString(key)
		case int:
			buf.WriteString("[")
			buf.WriteString(strconv.Itoa(key))
			buf.WriteString("]")
		}
	}
	return buf.String()
}
