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

package testutil

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/onsi/gomega/types"
)

// SerializeToJSONAs returns a matcher that checks the JSON serialization of
// the actual value. Both the actual and the expected value are marshalled,
// then decoded back into the expected value's type and compared, so the
// assertion sees the wire shape (field names, omitted empties) rather than
// the Go representation.
func SerializeToJSONAs(expected interface{}) types.GomegaMatcher {
	return serializeToJSONAsMatcher{expected: expected}
}

type serializeToJSONAsMatcher struct {
	expected interface{}
}

// Match implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher) Match(actual interface{}) (bool, error) {
	expectedType := reflect.TypeOf(matcher.expected)

	decodedActual, err := roundTrip(actual, expectedType)
	if err != nil {
		return false, fmt.Errorf("SerializeToJSONAs matcher failed on actual value: %s", err)
	}
	decodedExpected, err := roundTrip(matcher.expected, expectedType)
	if err != nil {
		return false, fmt.Errorf("SerializeToJSONAs matcher failed on expected value: %s", err)
	}

	return reflect.DeepEqual(decodedActual, decodedExpected), nil
}

// roundTrip marshals v to JSON and decodes the data into a freshly allocated
// value of type t.
func roundTrip(v interface{}, t reflect.Type) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cannot encode %T into JSON: %s", v, err)
	}
	decoded := reflect.New(t).Interface()
	if err := json.Unmarshal(data, decoded); err != nil {
		return nil, fmt.Errorf("cannot decode JSON into %v: %s", t, err)
	}
	return decoded, nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher) FailureMessage(actual interface{}) string {
	return fmt.Sprintf("Expected\n\t%#v\nto serialize to JSON value as\n\t%#v", actual, matcher.expected)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher) NegatedFailureMessage(actual interface{}) string {
	return fmt.Sprintf("Expected\n\t%#v\nnot to serialize to JSON value as\n\t%#v", actual, matcher.expected)
}
