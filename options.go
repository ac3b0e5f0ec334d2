//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

package geobuf

// Options configures Encode. Dimensions and Precision are stored
// verbatim into the Geobuf header and used to quantize coordinates.
type Options struct {
	// Dimensions is the number of numeric components per coordinate
	// tuple (2 for XY, 3 for XYZ, ...).
	Dimensions uint32

	// Precision is the number of significant decimal digits preserved
	// after the decimal point.
	Precision uint32
}

// DefaultOptions returns the Geobuf reference defaults: dimensions=2,
// precision=6.
func DefaultOptions() Options {
	return Options{Dimensions: 2, Precision: 6}
}
