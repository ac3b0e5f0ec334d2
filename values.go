//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

package geobuf

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/fogfish/geobuf/schema"
)

// classifyValue converts a gjson scalar/object/array into the tagged
// union schema.Value carries over the wire. Callers are responsible
// for skipping gjson.Null before reaching here: null properties are
// not materialized as a Value at all.
func classifyValue(val gjson.Result) *schema.Value {
	switch val.Type {
	case gjson.String:
		return &schema.Value{Kind: schema.ValueString, StringValue: val.String()}

	case gjson.True, gjson.False:
		return &schema.Value{Kind: schema.ValueBool, BoolValue: val.Bool()}

	case gjson.Number:
		return classifyNumber(val)

	default:
		// JSON, gjson.Null already filtered by the caller
		return &schema.Value{Kind: schema.ValueJSON, JSONValue: val.Raw}
	}
}

// classifyNumber picks the narrowest of {pos_int_value, neg_int_value,
// double_value} able to hold val without loss, per spec.md's encoding
// rule. The raw literal is inspected for a fractional/exponent marker
// before the numeric parse, so "1.0" round-trips as a double rather
// than silently truncating to an integer.
func classifyNumber(val gjson.Result) *schema.Value {
	raw := val.Raw
	if strings.ContainsAny(raw, ".eE") {
		return &schema.Value{Kind: schema.ValueDouble, DoubleValue: val.Float()}
	}

	if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return &schema.Value{Kind: schema.ValuePosInt, PosIntValue: u}
	}

	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if i < 0 {
			return &schema.Value{Kind: schema.ValueNegInt, NegIntValue: uint64(-i)}
		}
		return &schema.Value{Kind: schema.ValuePosInt, PosIntValue: uint64(i)}
	}

	return &schema.Value{Kind: schema.ValueDouble, DoubleValue: val.Float()}
}

// decodeValue is the inverse of classifyValue: it reconstructs the Go
// value that encoding/json (via jsonbuilder) will render as the
// matching JSON literal.
func decodeValue(v *schema.Value) (any, error) {
	switch v.Kind {
	case schema.ValueString:
		return v.StringValue, nil
	case schema.ValueDouble:
		return v.DoubleValue, nil
	case schema.ValuePosInt:
		return v.PosIntValue, nil
	case schema.ValueNegInt:
		return -int64(v.NegIntValue), nil
	case schema.ValueBool:
		return v.BoolValue, nil
	case schema.ValueJSON:
		if !gjson.Valid(v.JSONValue) {
			return nil, ErrorMalformedInput
		}
		return rawJSON(v.JSONValue), nil
	default:
		return nil, ErrorMalformedInput
	}
}

// rawJSON implements json.Marshaler over an already-serialized JSON
// fragment, so jsonbuilder.Object can splice a json_value payload back
// in verbatim instead of re-encoding it.
type rawJSON string

func (r rawJSON) MarshalJSON() ([]byte, error) { return []byte(r), nil }
