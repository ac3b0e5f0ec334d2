//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

package geobuf

import (
	"fmt"
	"math"

	"github.com/fogfish/geobuf/internal/jsonbuilder"
	"github.com/fogfish/geobuf/schema"
)

// Decode converts a Geobuf Data message back into a GeoJSON document.
// One of data's FeatureCollection/Feature/Geometry variants must be
// populated; ErrorMissingDataType is returned when none is. If more
// than one is set, FeatureCollection wins over Feature, and Feature
// over Geometry.
func Decode(data *schema.Data) ([]byte, error) {
	if _, ok := data.DataType(); !ok {
		return nil, ErrorMissingDataType
	}

	dec := &decoder{
		data: data,
		dim:  int(data.Dimensions),
		e:    math.Pow(10, float64(data.Precision)),
	}

	var obj *jsonbuilder.Object
	var err error

	switch {
	case data.FeatureCollection != nil:
		obj, err = dec.decodeFeatureCollection(data.FeatureCollection)
	case data.Feature != nil:
		obj, err = dec.decodeFeature(data.Feature)
	case data.Geometry != nil:
		obj, err = dec.decodeGeometry(data.Geometry)
	}
	if err != nil {
		return nil, err
	}

	return obj.MarshalJSON()
}

type decoder struct {
	data *schema.Data
	dim  int
	e    float64
}

func (dec *decoder) decodeFeatureCollection(fc *schema.FeatureCollection) (*jsonbuilder.Object, error) {
	obj := jsonbuilder.New()
	obj.Set("type", "FeatureCollection")

	features := make([]*jsonbuilder.Object, 0, len(fc.Features))
	for _, f := range fc.Features {
		fo, err := dec.decodeFeature(f)
		if err != nil {
			return nil, err
		}
		features = append(features, fo)
	}
	obj.Set("features", features)

	if err := dec.decodeProperties(fc.CustomProperties, fc.Values, obj); err != nil {
		return nil, err
	}

	return obj, nil
}

func (dec *decoder) decodeFeature(f *schema.Feature) (*jsonbuilder.Object, error) {
	if f.Geometry == nil {
		return nil, fmt.Errorf("%w: feature has no geometry", ErrorMalformedInput)
	}

	geometry, err := dec.decodeGeometry(f.Geometry)
	if err != nil {
		return nil, err
	}

	obj := jsonbuilder.New()
	obj.Set("type", "Feature")
	obj.Set("geometry", geometry)

	if err := dec.decodeProperties(f.CustomProperties, f.Values, obj); err != nil {
		return nil, err
	}

	switch {
	case f.HasIntID:
		obj.Set("id", f.IntID)
	case f.HasId:
		obj.Set("id", f.Id)
	}

	if len(f.Properties) > 0 {
		properties := jsonbuilder.New()
		if err := dec.decodeProperties(f.Properties, f.Values, properties); err != nil {
			return nil, err
		}
		obj.Set("properties", properties)
	}

	return obj, nil
}

func (dec *decoder) decodeGeometry(g *schema.Geometry) (*jsonbuilder.Object, error) {
	obj := jsonbuilder.New()

	switch g.Type {
	case schema.GEOMETRYCOLLECTION:
		obj.Set("type", "GeometryCollection")
		geometries := make([]*jsonbuilder.Object, 0, len(g.Geometries))
		for _, child := range g.Geometries {
			co, err := dec.decodeGeometry(child)
			if err != nil {
				return nil, err
			}
			geometries = append(geometries, co)
		}
		obj.Set("geometries", geometries)

	case schema.POINT:
		obj.Set("type", "Point")
		obj.Set("coordinates", dec.decodePoint(g.Coords))

	case schema.MULTIPOINT:
		obj.Set("type", "MultiPoint")
		obj.Set("coordinates", dec.decodeLine(g.Coords, false))

	case schema.LINESTRING:
		obj.Set("type", "LineString")
		obj.Set("coordinates", dec.decodeLine(g.Coords, false))

	case schema.MULTILINESTRING:
		obj.Set("type", "MultiLineString")
		obj.Set("coordinates", dec.decodeMultiLine(g, false))

	case schema.POLYGON:
		obj.Set("type", "Polygon")
		obj.Set("coordinates", dec.decodeMultiLine(g, true))

	case schema.MULTIPOLYGON:
		obj.Set("type", "MultiPolygon")
		obj.Set("coordinates", dec.decodeMultiPolygon(g))

	default:
		return nil, ErrorInvalidGeometryType
	}

	if err := dec.decodeProperties(g.CustomProperties, g.Values, obj); err != nil {
		return nil, err
	}

	return obj, nil
}

// decodeProperties walks a (key-index, value-index) pair list and
// sets each resolved key/value onto obj. Out-of-range indices are
// reported as ErrorMalformedInput rather than panicking.
func (dec *decoder) decodeProperties(properties []uint32, values []*schema.Value, obj *jsonbuilder.Object) error {
	for i := 0; i+1 < len(properties); i += 2 {
		keyIdx, valIdx := properties[i], properties[i+1]

		if int(keyIdx) >= len(dec.data.Keys) {
			return fmt.Errorf("%w: key index %d out of range", ErrorMalformedInput, keyIdx)
		}
		if int(valIdx) >= len(values) {
			return fmt.Errorf("%w: value index %d out of range", ErrorMalformedInput, valIdx)
		}

		v, err := decodeValue(values[valIdx])
		if err != nil {
			return err
		}
		obj.Set(dec.data.Keys[keyIdx], v)
	}
	return nil
}

func (dec *decoder) decodeCoord(c int64) float64 {
	return float64(c) / dec.e
}

func (dec *decoder) decodePoint(coords []int64) []float64 {
	out := make([]float64, len(coords))
	for i, c := range coords {
		out[i] = dec.decodeCoord(c)
	}
	return out
}

// decodeLine reverses addLine: it walks the flat delta-encoded coords
// in dim-sized strides, re-accumulating the running absolute position.
// For a closed ring it appends a final point equal to the first,
// restoring the vertex addLine elided on encode.
func (dec *decoder) decodeLine(coords []int64, isClosed bool) [][]float64 {
	points := make([][]float64, 0, len(coords)/dec.dim+1)
	sum := make([]int64, dec.dim)

	for i := 0; i+dec.dim <= len(coords); i += dec.dim {
		point := make([]float64, dec.dim)
		for j := 0; j < dec.dim; j++ {
			sum[j] += coords[i+j]
			point[j] = dec.decodeCoord(sum[j])
		}
		points = append(points, point)
	}

	if isClosed && len(coords) >= dec.dim {
		first := make([]float64, dec.dim)
		for j := 0; j < dec.dim; j++ {
			first[j] = dec.decodeCoord(coords[j])
		}
		points = append(points, first)
	}

	return points
}

// decodeMultiLine reverses addMultiLine: an empty Lengths means the
// geometry held exactly one line, delta-encoded across the whole
// coords array; otherwise each length names the point count of one
// line, consumed off the front of coords in order.
func (dec *decoder) decodeMultiLine(g *schema.Geometry, isClosed bool) [][][]float64 {
	if len(g.Lengths) == 0 {
		return [][][]float64{dec.decodeLine(g.Coords, isClosed)}
	}

	lines := make([][][]float64, 0, len(g.Lengths))
	i := 0
	for _, l := range g.Lengths {
		end := int(l) * dec.dim
		lines = append(lines, dec.decodeLine(g.Coords[i:i+end], isClosed))
		i += end
	}
	return lines
}

// decodeMultiPolygon reverses addMultiPolygon's two layouts: an empty
// Lengths means a single polygon with a single ring; otherwise
// Lengths[0] is the polygon count, followed per polygon by a ring
// count and then one entry per ring, walked with a cursor into both
// Lengths and the flat Coords array.
func (dec *decoder) decodeMultiPolygon(g *schema.Geometry) [][][][]float64 {
	if len(g.Lengths) == 0 {
		return [][][][]float64{{dec.decodeLine(g.Coords, true)}}
	}

	polygons := make([][][][]float64, 0, g.Lengths[0])
	i, j := 0, 1
	numPolygons := int(g.Lengths[0])

	for n := 0; n < numPolygons; n++ {
		numRings := int(g.Lengths[j])
		j++

		rings := make([][][]float64, 0, numRings)
		for r := 0; r < numRings; r++ {
			l := int(g.Lengths[j])
			end := l * dec.dim
			rings = append(rings, dec.decodeLine(g.Coords[i:i+end], true))
			j++
			i += end
		}
		polygons = append(polygons, rings)
	}

	return polygons
}
