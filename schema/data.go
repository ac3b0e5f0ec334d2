//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

package schema

// GeometryType is the closed set of geometry shapes a Geometry message
// may carry.
type GeometryType int32

const (
	POINT GeometryType = iota
	MULTIPOINT
	LINESTRING
	MULTILINESTRING
	POLYGON
	MULTIPOLYGON
	GEOMETRYCOLLECTION
)

func (t GeometryType) String() string {
	switch t {
	case POINT:
		return "Point"
	case MULTIPOINT:
		return "MultiPoint"
	case LINESTRING:
		return "LineString"
	case MULTILINESTRING:
		return "MultiLineString"
	case POLYGON:
		return "Polygon"
	case MULTIPOLYGON:
		return "MultiPolygon"
	case GEOMETRYCOLLECTION:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// Data is the root Geobuf message. Exactly one of FeatureCollection,
// Feature, or Geometry is populated.
type Data struct {
	Keys       []string
	Dimensions uint32
	Precision  uint32

	FeatureCollection *FeatureCollection
	Feature           *Feature
	Geometry          *Geometry
}

// DataType reports which oneof variant is populated, or ok=false if
// none is (a MissingDataType condition at the decoder boundary).
func (d *Data) DataType() (variant string, ok bool) {
	switch {
	case d.FeatureCollection != nil:
		return "FeatureCollection", true
	case d.Feature != nil:
		return "Feature", true
	case d.Geometry != nil:
		return "Geometry", true
	default:
		return "", false
	}
}

// NewData constructs an empty root message with the given header
// fields; default dimensions/precision (2/6) are the caller's
// responsibility to supply, matching spec.md §3.
func NewData(dimensions, precision uint32) *Data {
	return &Data{Dimensions: dimensions, Precision: precision}
}

// FeatureCollection is an ordered sequence of Feature plus the shared
// custom-property/value dictionary for members outside {type,features}.
type FeatureCollection struct {
	Features         []*Feature
	Values           []*Value
	CustomProperties []uint32
}

// Feature pairs a Geometry with an optional identifier and two
// disjoint property-index lists sharing one local Values sequence.
type Feature struct {
	Geometry *Geometry

	// id_type oneof: at most one of Id/IntID is set.
	Id      string
	HasId   bool
	IntID   int64
	HasIntID bool

	Properties       []uint32
	Values           []*Value
	CustomProperties []uint32
}

// Geometry carries a type tag and, for non-collection types, a flat
// delta-encoded coords/lengths pair; collections nest child Geometry
// messages instead.
type Geometry struct {
	Type       GeometryType
	Lengths    []uint32
	Coords     []int64
	Geometries []*Geometry

	Values           []*Value
	CustomProperties []uint32
}

// Value is a tagged union over the six supported property value
// shapes. Exactly one field among the ValueXxx group is meaningful;
// Kind identifies which.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueString
	ValueDouble
	ValuePosInt
	ValueNegInt
	ValueBool
	ValueJSON
)

type Value struct {
	Kind ValueKind

	StringValue string
	DoubleValue float64
	PosIntValue uint64
	NegIntValue uint64
	BoolValue   bool
	JSONValue   string
}
