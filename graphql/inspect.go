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

package graphql

import (
	"fmt"
	"io"
	"reflect"
	"sort"

	jsoniter "github.com/json-iterator/go"

	"github.com/selenegql/selene/internal/util"
)

// ValueWithCustomInspect provides a custom serialization for a value in Inspect.
type ValueWithCustomInspect interface {
	Inspect(out io.Writer) error
}

// InspectTo prints the Go value v to out in the format diagnostics quote offending input values
// with. The format follows graphql-js's inspect function: strings are JSON-quoted, slices print
// as [a, b], maps and structs as { key: value }.
//
// Note that errors returned from out.Write are ignored.
func InspectTo(out io.Writer, v interface{}) error {
	if v, ok := v.(ValueWithCustomInspect); ok {
		return v.Inspect(out)
	}
	if v, ok := v.(fmt.Stringer); ok {
		_, err := io.WriteString(out, v.String())
		return err
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.String:
		stream := jsoniter.ConfigDefault.BorrowStream(out)
		stream.WriteString(value.String())
		err := stream.Flush()
		jsoniter.ConfigDefault.ReturnStream(stream)
		if err != nil {
			return err
		}

	case reflect.Array, reflect.Slice:
		io.WriteString(out, "[")
		for i, size := 0, value.Len(); i < size; i++ {
			if i > 0 {
				io.WriteString(out, ", ")
			}
			if err := InspectTo(out, value.Index(i).Interface()); err != nil {
				return err
			}
		}
		io.WriteString(out, "]")

	case reflect.Map:
		if value.Len() == 0 {
			io.WriteString(out, "{}")
			return nil
		}
		io.WriteString(out, "{ ")

		keys := value.MapKeys()
		// Sort string keys so the rendering is stable across runs.
		if value.Type().Key().Kind() == reflect.String {
			sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		}
		for i, key := range keys {
			if i > 0 {
				io.WriteString(out, ", ")
			}
			if key.Kind() == reflect.String {
				io.WriteString(out, key.String())
			} else if err := InspectTo(out, key.Interface()); err != nil {
				return err
			}
			io.WriteString(out, ": ")
			if err := InspectTo(out, value.MapIndex(key).Interface()); err != nil {
				return err
			}
		}

		io.WriteString(out, " }")

	case reflect.Struct:
		typ := value.Type()
		numFields := typ.NumField()
		if numFields == 0 {
			io.WriteString(out, "{}")
			return nil
		}
		io.WriteString(out, "{ ")
		for i := 0; i < numFields; i++ {
			if i > 0 {
				io.WriteString(out, ", ")
			}
			io.WriteString(out, typ.Field(i).Name)
			io.WriteString(out, ": ")
			if err := InspectTo(out, value.Field(i).Interface()); err != nil {
				return err
			}
		}
		io.WriteString(out, " }")

	case reflect.Ptr, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			io.WriteString(out, "null")
			return nil
		}
		return InspectTo(out, elem.Interface())

	case reflect.Invalid:
		io.WriteString(out, "null")

	default:
		if _, err := fmt.Fprint(out, v); err != nil {
			return err
		}
	}

	return nil
}

// Inspect is like InspectTo but renders to a string and panics on error.
func Inspect(v interface{}) string {
	var buf util.StringBuilder
	if err := InspectTo(&buf, v); err != nil {
		panic(fmt.Sprintf("inspect %+v with error: %s", v, err))
	}
	return buf.String()
}
