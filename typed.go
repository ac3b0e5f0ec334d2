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

	"github.com/fogfish/curie"

	"github.com/fogfish/geobuf/geojson"
	"github.com/fogfish/geobuf/schema"
)

// DecodeGeometry builds the typed geojson.Geometry object model
// directly from a wire Geometry message, for callers who want a
// *Point/*LineString/*Polygon... Go value instead of re-parsing the
// JSON tree Decode produces. It reuses the decoder's coordinate
// reconstruction (decodePoint, decodeLine, decodeMultiLine,
// decodeMultiPolygon) so a typed read costs no extra quantization
// round-trip. A GeometryCollection has no typed representation and is
// reported as ErrorInvalidGeometryType.
func DecodeGeometry(data *schema.Data) (*geojson.Geometry, error) {
	g := data.Geometry
	if g == nil {
		if data.Feature != nil {
			g = data.Feature.Geometry
		}
	}
	if g == nil {
		return nil, ErrorMissingDataType
	}

	dec := &decoder{data: data, dim: int(data.Dimensions)}
	dec.e = pow10(int(data.Precision))

	return dec.decodeGeometryTyped(g)
}

func (dec *decoder) decodeGeometryTyped(g *schema.Geometry) (*geojson.Geometry, error) {
	switch g.Type {
	case schema.POINT:
		return &geojson.Geometry{Coords: &geojson.Point{Coords: geojson.Position(dec.decodePoint(g.Coords))}}, nil

	case schema.MULTIPOINT:
		return &geojson.Geometry{Coords: &geojson.MultiPoint{Coords: toSequence(dec.decodeLine(g.Coords, false))}}, nil

	case schema.LINESTRING:
		return &geojson.Geometry{Coords: &geojson.LineString{Coords: toSequence(dec.decodeLine(g.Coords, false))}}, nil

	case schema.MULTILINESTRING:
		return &geojson.Geometry{Coords: &geojson.MultiLineString{Coords: toSurface(dec.decodeMultiLine(g, false))}}, nil

	case schema.POLYGON:
		return &geojson.Geometry{Coords: &geojson.Polygon{Coords: toSurface(dec.decodeMultiLine(g, true))}}, nil

	case schema.MULTIPOLYGON:
		polygons := dec.decodeMultiPolygon(g)
		surfaces := make([]geojson.Surface, len(polygons))
		for i, rings := range polygons {
			surfaces[i] = toSurface(rings)
		}
		return &geojson.Geometry{Coords: &geojson.MultiPolygon{Coords: surfaces}}, nil

	default:
		return nil, fmt.Errorf("%w: %s has no typed representation", ErrorInvalidGeometryType, g.Type)
	}
}

func toSequence(points [][]float64) geojson.Sequence {
	seq := make(geojson.Sequence, len(points))
	for i, p := range points {
		seq[i] = geojson.Position(p)
	}
	return seq
}

func toSurface(lines [][][]float64) geojson.Surface {
	surface := make(geojson.Surface, len(lines))
	for i, l := range lines {
		surface[i] = toSequence(l)
	}
	return surface
}

func pow10(n int) float64 {
	v := 1.0
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// FeatureIRI reports f's string identifier as a CURIE, for callers
// that carry Geobuf Feature ids into fogfish/curie-keyed systems
// (e.g. indexing features by compact IRI). ok is false when f has no
// id, or when its id is the integer variant.
func FeatureIRI(f *schema.Feature) (iri curie.IRI, ok bool) {
	if !f.HasId {
		return "", false
	}
	return *curie.New(f.Id).This(), true
}
