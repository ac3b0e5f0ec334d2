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

	"github.com/tidwall/gjson"

	"github.com/fogfish/geobuf/schema"
)

// Encode converts a GeoJSON document into its Geobuf wire
// representation. geojson must be a valid JSON object carrying a
// "type" member of "FeatureCollection", "Feature", or one of the seven
// geometry shapes.
func Encode(geojson []byte, opts Options) (*schema.Data, error) {
	if !gjson.ValidBytes(geojson) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrorMalformedInput)
	}

	root := gjson.ParseBytes(geojson)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: root is not a JSON object", ErrorMalformedInput)
	}

	enc := &encoder{
		keys: newKeyDict(),
		dim:  int(opts.Dimensions),
		e:    math.Pow(10, float64(opts.Precision)),
	}

	switch root.Get("type").String() {
	case "FeatureCollection":
		fc, err := enc.encodeFeatureCollection(root)
		if err != nil {
			return nil, err
		}
		data := NewData(opts.Dimensions, opts.Precision)
		data.Keys = enc.keys.keys()
		data.FeatureCollection = fc
		return data, nil

	case "Feature":
		f, err := enc.encodeFeature(root)
		if err != nil {
			return nil, err
		}
		data := NewData(opts.Dimensions, opts.Precision)
		data.Keys = enc.keys.keys()
		data.Feature = f
		return data, nil

	default:
		g, err := enc.encodeGeometry(root)
		if err != nil {
			return nil, err
		}
		data := NewData(opts.Dimensions, opts.Precision)
		data.Keys = enc.keys.keys()
		data.Geometry = g
		return data, nil
	}
}

// NewData is re-exported from schema for callers assembling a Data
// message outside of Encode (e.g. tests building fixtures by hand).
func NewData(dimensions, precision uint32) *schema.Data {
	return schema.NewData(dimensions, precision)
}

// encoder holds the state shared across one Encode call: the global
// key dictionary and the coordinate quantization parameters.
type encoder struct {
	keys *keyDict
	dim  int
	e    float64
}

func (enc *encoder) encodeFeatureCollection(root gjson.Result) (*schema.FeatureCollection, error) {
	fc := &schema.FeatureCollection{}

	props, values := enc.encodeCustomProperties(root, "type", "features")
	fc.CustomProperties = props
	fc.Values = values

	features := root.Get("features")
	if !features.IsArray() {
		return nil, fmt.Errorf("%w: features is not an array", ErrorMalformedInput)
	}

	var encErr error
	features.ForEach(func(_, feature gjson.Result) bool {
		f, err := enc.encodeFeature(feature)
		if err != nil {
			encErr = err
			return false
		}
		fc.Features = append(fc.Features, f)
		return true
	})
	if encErr != nil {
		return nil, encErr
	}

	return fc, nil
}

func (enc *encoder) encodeFeature(root gjson.Result) (*schema.Feature, error) {
	f := &schema.Feature{}

	switch id := root.Get("id"); id.Type {
	case gjson.Number:
		f.HasIntID = true
		f.IntID = id.Int()
	case gjson.String:
		f.HasId = true
		f.Id = id.String()
	}

	var values []*schema.Value

	if properties := root.Get("properties"); properties.IsObject() {
		var props []uint32
		properties.ForEach(func(key, val gjson.Result) bool {
			props, values = enc.encodeProperty(key.String(), val, props, values)
			return true
		})
		f.Properties = props
	}

	custom, values := enc.encodeCustomPropertiesWith(root, values, "type", "id", "properties", "geometry")
	f.CustomProperties = custom
	f.Values = values

	geometry := root.Get("geometry")
	if !geometry.Exists() {
		return nil, fmt.Errorf("%w: feature has no geometry", ErrorMalformedInput)
	}
	g, err := enc.encodeGeometry(geometry)
	if err != nil {
		return nil, err
	}
	f.Geometry = g

	return f, nil
}

func (enc *encoder) encodeGeometry(root gjson.Result) (*schema.Geometry, error) {
	g := &schema.Geometry{}

	props, values := enc.encodeCustomProperties(root, "type", "id", "coordinates", "arcs", "geometries", "properties")
	g.CustomProperties = props
	g.Values = values

	switch root.Get("type").String() {
	case "GeometryCollection":
		g.Type = schema.GEOMETRYCOLLECTION
		var encErr error
		root.Get("geometries").ForEach(func(_, geom gjson.Result) bool {
			child, err := enc.encodeGeometry(geom)
			if err != nil {
				encErr = err
				return false
			}
			g.Geometries = append(g.Geometries, child)
			return true
		})
		if encErr != nil {
			return nil, encErr
		}

	case "Point":
		g.Type = schema.POINT
		coords := root.Get("coordinates")
		if !coords.IsArray() {
			return nil, fmt.Errorf("%w: Point.coordinates is not an array", ErrorMalformedInput)
		}
		for _, c := range coords.Array() {
			g.Coords = append(g.Coords, enc.quantize(c.Float()))
		}

	case "MultiPoint":
		g.Type = schema.MULTIPOINT
		enc.addLine(&g.Coords, root.Get("coordinates"), false)

	case "LineString":
		g.Type = schema.LINESTRING
		enc.addLine(&g.Coords, root.Get("coordinates"), false)

	case "MultiLineString":
		g.Type = schema.MULTILINESTRING
		enc.addMultiLine(g, root.Get("coordinates"), false)

	case "Polygon":
		g.Type = schema.POLYGON
		enc.addMultiLine(g, root.Get("coordinates"), true)

	case "MultiPolygon":
		g.Type = schema.MULTIPOLYGON
		enc.addMultiPolygon(g, root.Get("coordinates"))

	default:
		return nil, ErrorInvalidGeometryType
	}

	return g, nil
}

// encodeCustomProperties harvests every member of root not named in
// exclude into a fresh properties/values pair.
func (enc *encoder) encodeCustomProperties(root gjson.Result, exclude ...string) ([]uint32, []*schema.Value) {
	return enc.encodeCustomPropertiesWith(root, nil, exclude...)
}

// encodeCustomPropertiesWith is the same harvest, but appends into an
// already-started values sequence. Feature needs this variant because
// "properties" and custom members must land in the same local values
// list, addressed by two disjoint index lists.
func (enc *encoder) encodeCustomPropertiesWith(root gjson.Result, values []*schema.Value, exclude ...string) ([]uint32, []*schema.Value) {
	excluded := make(map[string]struct{}, len(exclude))
	for _, k := range exclude {
		excluded[k] = struct{}{}
	}

	var props []uint32
	root.ForEach(func(key, val gjson.Result) bool {
		k := key.String()
		if _, skip := excluded[k]; skip {
			return true
		}
		props, values = enc.encodeProperty(k, val, props, values)
		return true
	})

	return props, values
}

// encodeProperty classifies a single (key, value) pair and appends it
// to the caller's properties/values accumulators. A JSON-null value is
// skipped in full: neither the key-index nor a value-index is emitted,
// so the value-indices that follow stay aligned with the values slice.
func (enc *encoder) encodeProperty(key string, val gjson.Result, properties []uint32, values []*schema.Value) ([]uint32, []*schema.Value) {
	if val.Type == gjson.Null {
		return properties, values
	}

	keyIndex := enc.keys.intern(key)
	properties = append(properties, uint32(keyIndex))

	values = append(values, classifyValue(val))
	properties = append(properties, uint32(len(values)-1))

	return properties, values
}

// quantize rounds a coordinate into the fixed-point integer the wire
// format carries, at the encoder's configured precision.
func (enc *encoder) quantize(coord float64) int64 {
	return int64(math.Round(coord * enc.e))
}

// addLine delta-encodes a flat array of [dim]-tuples into coords. When
// isClosed is set, the final point (equal to the first, per the
// GeoJSON linear-ring rule) is omitted: the decoder restores it from
// the ring's own first point.
func (enc *encoder) addLine(coords *[]int64, points gjson.Result, isClosed bool) {
	all := points.Array()
	n := len(all)
	if isClosed && n > 0 {
		n--
	}

	sum := make([]int64, enc.dim)
	for i := 0; i < n; i++ {
		point := all[i].Array()
		for j := 0; j < enc.dim; j++ {
			var coord float64
			if j < len(point) {
				coord = point[j].Float()
			}
			delta := enc.quantize(coord) - sum[j]
			*coords = append(*coords, delta)
			sum[j] += delta
		}
	}
}

// addMultiLine encodes MultiLineString/Polygon coordinates. A single
// line is written without a lengths[] entry (the decoder treats an
// empty Lengths as "exactly one line"); two or more lines each get
// their point count recorded so the decoder can recover individual
// line boundaries in the one flat coords array.
func (enc *encoder) addMultiLine(g *schema.Geometry, lines gjson.Result, isClosed bool) {
	all := lines.Array()

	if len(all) != 1 {
		for _, points := range all {
			count := len(points.Array())
			if isClosed && count > 0 {
				count--
			}
			g.Lengths = append(g.Lengths, uint32(count))
			enc.addLine(&g.Coords, points, isClosed)
		}
		return
	}

	for _, points := range all {
		enc.addLine(&g.Coords, points, isClosed)
	}
}

// addMultiPolygon mirrors the reference encoder's lengths[] layout for
// MultiPolygon: when there is more than one polygon, or the single
// polygon has more than one ring, lengths[] carries a leading polygon
// count followed by, for each polygon, a ring count and then one
// entry per ring; coords stays one flat, delta-encoded sequence.
func (enc *encoder) addMultiPolygon(g *schema.Geometry, polygons gjson.Result) {
	all := polygons.Array()

	simple := len(all) == 1 && len(all[0].Array()) == 1
	if simple {
		for _, rings := range all {
			for _, points := range rings.Array() {
				enc.addLine(&g.Coords, points, true)
			}
		}
		return
	}

	g.Lengths = append(g.Lengths, uint32(len(all)))
	for _, rings := range all {
		ringsArr := rings.Array()
		g.Lengths = append(g.Lengths, uint32(len(ringsArr)))
		for _, points := range ringsArr {
			count := len(points.Array())
			if count > 0 {
				count--
			}
			g.Lengths = append(g.Lengths, uint32(count))
			enc.addLine(&g.Coords, points, true)
		}
	}
}
