//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

package geobuf

/*

Error of Geobuf codec
*/
type Error string

func (err Error) Error() string { return string(err) }

/*

Supported Geobuf codec errors
*/
const (
	// ErrorMissingDataType is returned by Decode when none of the
	// FeatureCollection/Feature/Geometry payload variants is set.
	ErrorMissingDataType = Error("geobuf: payload variant is not set")

	// ErrorInvalidGeometryType is returned by Encode when a geometry's
	// "type" is not one of the seven recognized shapes.
	ErrorInvalidGeometryType = Error("geobuf: unsupported geometry type")

	// ErrorMalformedInput covers every other encode/decode failure:
	// invalid JSON or a non-object root, a non-array features or
	// Point.coordinates, a feature without geometry, out-of-range
	// dictionary or value indices, an invalid json_value payload.
	// Non-numeric coordinate components are not rejected; they are
	// read through gjson's numeric conversion. Use errors.Is against
	// this sentinel; the wrapped message carries the specific detail.
	ErrorMalformedInput = Error("geobuf: malformed input")
)
