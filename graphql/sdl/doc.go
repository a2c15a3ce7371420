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

// Package sdl builds executable type systems from parsed GraphQL schema definition language.
//
// BuildSchema turns an ast.SchemaDocument (produced by gqlparser's parser.ParseSchema) into an
// immutable graphql.Schema. Member types referenced before their definition are handled by
// deferring field, interface, member and value resolution into thunks that close over the
// document-wide name table; a schema therefore builds in a single pass regardless of definition
// order or reference cycles.
//
// ExtendSchema layers extension documents over an existing schema, producing a new schema while
// leaving the original untouched.
package sdl
