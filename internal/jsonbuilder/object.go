//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

/*

Package jsonbuilder assembles JSON objects bottom-up while preserving
insertion order, the way the Geobuf decoder needs to: a Feature's
"type" and "geometry" members are set before any custom_properties or
properties members are layered on top, and the output should read
naturally rather than in arbitrary map order.

It exists because Go's map[string]any loses that order on every
encoding/json.Marshal call; the teacher library (fogfish/geojson)
solves the same problem on the encode side with ordered anonymous
structs, which isn't an option here because the decoder's field set
isn't known at compile time.
*/
package jsonbuilder

import (
	"bytes"
	"encoding/json"
)

// Object is an order-preserving JSON object under construction.
type Object struct {
	keys []string
	vals map[string]any
}

// New returns an empty Object.
func New() *Object {
	return &Object{vals: make(map[string]any)}
}

// Set assigns key to val, appending key to the emission order on its
// first use and overwriting the value in place on subsequent calls.
func (o *Object) Set(key string, val any) *Object {
	if _, seen := o.vals[key]; !seen {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = val
	return o
}

// Len reports the number of distinct keys set so far.
func (o *Object) Len() int { return len(o.keys) }

// MarshalJSON renders the object with members in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')

		vb, err := json.Marshal(o.vals[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
