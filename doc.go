//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

/*

Package geobuf implements a bidirectional codec between GeoJSON and
Geobuf, a compact Protocol-Buffers-backed binary encoding of the same
data. Coordinates are quantized to a caller-chosen decimal precision
and delta-encoded within each ring or line; property names are
interned into a shared string dictionary; property values are carried
as a small tagged union (string, double, unsigned/signed integer,
bool, or escaped JSON).

	data, err := geobuf.Encode(geojsonBytes, geobuf.Options{Dimensions: 2, Precision: 6})
	...
	out, err := geobuf.Decode(data)

Encode and Decode are pure functions: no file or network I/O happens
here — that lives in cmd/geobuf. Round-tripping is exact up to the
configured precision; see the package tests for the documented
rounding, delta, and lengths[] invariants.
*/
package geobuf
