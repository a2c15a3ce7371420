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
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/selenegql/selene/graphql"
)

// Numbers decode as json.Number so integer variables survive the trip into Int coercion without
// a float round.
var jsonConfig = jsoniter.Config{UseNumber: true}.Froze()

// DecodeVariableValues reads a JSON object from r and returns it as a variable value set.
// A JSON null yields an empty set.
func DecodeVariableValues(r io.Reader) (*VariableValues, error) {
	var raw map[string]interface{}
	if err := jsonConfig.NewDecoder(r).Decode(&raw); err != nil {
		return nil, graphql.WrapError(err, "failed to decode variable values")
	}
	return NewVariableValues(raw), nil
}

// DecodeVariableValuesFromJSON is DecodeVariableValues over an in-memory JSON document.
func DecodeVariableValuesFromJSON(data []byte) (*VariableValues, error) {
	var raw map[string]interface{}
	if err := jsonConfig.Unmarshal(data, &raw); err != nil {
		return nil, graphql.WrapError(err, "failed to decode variable values")
	}
	return NewVariableValues(raw), nil
}
