//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geojson
//

/*

Package geojson is a type-safe GeoJSON geometry object model. The
geobuf decoder builds it on request (see DecodeGeometry in the parent
package) so that callers who want typed Go values — *Point,
*LineString, *Polygon, etc — don't have to re-parse the raw JSON tree
the wire decoder produces. Geometry.MarshalJSON is the path back out:
cmd/geobuf's `decode --typed` flag marshals a DecodeGeometry result
through it instead of routing the full message through jsonbuilder,
for callers who only want the geometry and not its properties.
*/
package geojson

import "encoding/json"

/*

Geometry Object represents points, curves, and surfaces in
coordinate space. It is the typed counterpart of a decoded Geobuf
Geometry message: the oneof type tag becomes a Go interface
implementation instead of a wire enum.
*/
type Geometry struct{ Coords }

/*

Coords is a member of a Geometry Object. It is one of the six
geometry types below; GeometryCollection is not implemented.
*/
type Coords interface {
	MarshalGeoJSON() ([]byte, error)
	UnmarshalGeoJSON(b []byte) error
}

/*

MarshalJSON encodes Geometry to GeoJSON. Exercised by cmd/geobuf's
`decode --typed` flag, which hands a DecodeGeometry result straight to
json.Marshal instead of building the output through jsonbuilder.
*/
func (geo Geometry) MarshalJSON() ([]byte, error) {
	return geo.Coords.MarshalGeoJSON()
}

/*

UnmarshalJSON decodes Geometry from GeoJSON
*/
func (geo *Geometry) UnmarshalJSON(b []byte) error {
	var gen struct {
		Type   string          `json:"type"`
		Coords json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(b, &gen); err != nil {
		return err
	}

	switch gen.Type {
	case "Point":
		geo.Coords = &Point{}
		return geo.Coords.UnmarshalGeoJSON(gen.Coords)
	case "MultiPoint":
		geo.Coords = &MultiPoint{}
		return geo.Coords.UnmarshalGeoJSON(gen.Coords)
	case "LineString":
		geo.Coords = &LineString{}
		return geo.Coords.UnmarshalGeoJSON(gen.Coords)
	case "MultiLineString":
		geo.Coords = &MultiLineString{}
		return geo.Coords.UnmarshalGeoJSON(gen.Coords)
	case "Polygon":
		geo.Coords = &Polygon{}
		return geo.Coords.UnmarshalGeoJSON(gen.Coords)
	case "MultiPolygon":
		geo.Coords = &MultiPolygon{}
		return geo.Coords.UnmarshalGeoJSON(gen.Coords)
	default:
		return ErrorUnsupportedType
	}
}

/*

Point type, the "coordinates" member is a single position.
*/
type Point struct {
	Coords Position
}

func (geo *Point) MarshalGeoJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":        "Point",
		"coordinates": geo.Coords,
	})
}

func (geo *Point) UnmarshalGeoJSON(b []byte) error {
	if err := json.Unmarshal(b, &geo.Coords); err != nil {
		return err
	}
	return nil
}

/*

MultiPoint type, the "coordinates" member is an array of positions.
*/
type MultiPoint struct {
	Coords Sequence
}

func (geo *MultiPoint) MarshalGeoJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":        "MultiPoint",
		"coordinates": geo.Coords,
	})
}

func (geo *MultiPoint) UnmarshalGeoJSON(b []byte) error {
	if err := json.Unmarshal(b, &geo.Coords); err != nil {
		return err
	}
	return nil
}

/*

LineString type, the "coordinates" member is an array of two or
more positions.
*/
type LineString struct {
	Coords Sequence
}

func (geo *LineString) MarshalGeoJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":        "LineString",
		"coordinates": geo.Coords,
	})
}

func (geo *LineString) UnmarshalGeoJSON(b []byte) error {
	if err := json.Unmarshal(b, &geo.Coords); err != nil {
		return err
	}
	return nil
}

/*

MultiLineString type, the "coordinates" member is an array of
LineString coordinate arrays.
*/
type MultiLineString struct {
	Coords Surface
}

func (geo *MultiLineString) MarshalGeoJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":        "MultiLineString",
		"coordinates": geo.Coords,
	})
}

func (geo *MultiLineString) UnmarshalGeoJSON(b []byte) error {
	if err := json.Unmarshal(b, &geo.Coords); err != nil {
		return err
	}
	return nil
}

/*

Polygon is combinaton of exterior and interior linear rings,
the first element is exterior ring, and others are interior rings.

A linear ring is a closed LineString with four or more positions.
The first and last positions are equivalent, and they MUST contain
identical values; their representation SHOULD also be identical.
*/
type Polygon struct {
	Coords Surface
}

func (geo *Polygon) MarshalGeoJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":        "Polygon",
		"coordinates": geo.Coords,
	})
}

func (geo *Polygon) UnmarshalGeoJSON(b []byte) error {
	if err := json.Unmarshal(b, &geo.Coords); err != nil {
		return err
	}
	return nil
}

/*

MultiPolygon type, the "coordinates" member is an array of
Polygon coordinate arrays.
*/
type MultiPolygon struct {
	Coords []Surface
}

func (geo *MultiPolygon) MarshalGeoJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":        "MultiPolygon",
		"coordinates": geo.Coords,
	})
}

func (geo *MultiPolygon) UnmarshalGeoJSON(b []byte) error {
	if err := json.Unmarshal(b, &geo.Coords); err != nil {
		return err
	}
	return nil
}
