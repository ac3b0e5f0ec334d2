//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

package schema

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers. See DESIGN.md for the Feature.int_id/values collision
// in the reference schema and why int_id moved to 14 here.
const (
	fnDataKeys              protowire.Number = 1
	fnDataDimensions        protowire.Number = 2
	fnDataPrecision         protowire.Number = 3
	fnDataFeatureCollection protowire.Number = 4
	fnDataFeature           protowire.Number = 5
	fnDataGeometry          protowire.Number = 6

	fnFCFeatures         protowire.Number = 1
	fnFCValues           protowire.Number = 13
	fnFCCustomProperties protowire.Number = 15

	fnFeatureGeometry         protowire.Number = 1
	fnFeatureProperties       protowire.Number = 11
	fnFeatureId               protowire.Number = 12
	fnFeatureValues           protowire.Number = 13
	fnFeatureIntID            protowire.Number = 14
	fnFeatureCustomProperties protowire.Number = 15

	fnGeomType             protowire.Number = 1
	fnGeomLengths          protowire.Number = 2
	fnGeomCoords           protowire.Number = 3
	fnGeomGeometries       protowire.Number = 4
	fnGeomValues           protowire.Number = 13
	fnGeomCustomProperties protowire.Number = 15

	fnValueString  protowire.Number = 1
	fnValueDouble  protowire.Number = 2
	fnValuePosInt  protowire.Number = 3
	fnValueNegInt  protowire.Number = 4
	fnValueBool    protowire.Number = 5
	fnValueJSON    protowire.Number = 6
)

// errTruncated is returned when a wire-format scan runs out of bytes
// mid-field (or a field cannot be skipped); Unmarshal returns it to
// callers unwrapped.
var errTruncated = fmt.Errorf("geobuf/schema: truncated message")

func appendPackedVarint(b []byte, num protowire.Number, vs []uint64) []byte {
	if len(vs) == 0 {
		return b
	}
	var inner []byte
	for _, v := range vs {
		inner = protowire.AppendVarint(inner, v)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(len(inner)))
	return append(b, inner...)
}

func appendMessage(b []byte, num protowire.Number, m interface{ Marshal() []byte }) []byte {
	enc := m.Marshal()
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(len(enc)))
	return append(b, enc...)
}

// Marshal encodes v into the Geobuf wire format.
func (v *Value) Marshal() []byte {
	var b []byte
	switch v.Kind {
	case ValueString:
		b = protowire.AppendTag(b, fnValueString, protowire.BytesType)
		b = protowire.AppendString(b, v.StringValue)
	case ValueDouble:
		b = protowire.AppendTag(b, fnValueDouble, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, math.Float64bits(v.DoubleValue))
	case ValuePosInt:
		b = protowire.AppendTag(b, fnValuePosInt, protowire.VarintType)
		b = protowire.AppendVarint(b, v.PosIntValue)
	case ValueNegInt:
		b = protowire.AppendTag(b, fnValueNegInt, protowire.VarintType)
		b = protowire.AppendVarint(b, v.NegIntValue)
	case ValueBool:
		b = protowire.AppendTag(b, fnValueBool, protowire.VarintType)
		var x uint64
		if v.BoolValue {
			x = 1
		}
		b = protowire.AppendVarint(b, x)
	case ValueJSON:
		b = protowire.AppendTag(b, fnValueJSON, protowire.BytesType)
		b = protowire.AppendString(b, v.JSONValue)
	}
	return b
}

func unmarshalValue(buf []byte) (*Value, error) {
	v := &Value{}
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return nil, errTruncated
		}
		buf = buf[n:]

		switch num {
		case fnValueString:
			s, n := protowire.ConsumeString(buf)
			if n < 0 {
				return nil, errTruncated
			}
			v.Kind, v.StringValue = ValueString, s
			buf = buf[n:]
		case fnValueDouble:
			x, n := protowire.ConsumeFixed64(buf)
			if n < 0 {
				return nil, errTruncated
			}
			v.Kind, v.DoubleValue = ValueDouble, math.Float64frombits(x)
			buf = buf[n:]
		case fnValuePosInt:
			x, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return nil, errTruncated
			}
			v.Kind, v.PosIntValue = ValuePosInt, x
			buf = buf[n:]
		case fnValueNegInt:
			x, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return nil, errTruncated
			}
			v.Kind, v.NegIntValue = ValueNegInt, x
			buf = buf[n:]
		case fnValueBool:
			x, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return nil, errTruncated
			}
			v.Kind, v.BoolValue = ValueBool, x != 0
			buf = buf[n:]
		case fnValueJSON:
			s, n := protowire.ConsumeString(buf)
			if n < 0 {
				return nil, errTruncated
			}
			v.Kind, v.JSONValue = ValueJSON, s
			buf = buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return nil, errTruncated
			}
			buf = buf[n:]
		}
	}
	return v, nil
}

// Marshal encodes g into the Geobuf wire format.
func (g *Geometry) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, fnGeomType, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(g.Type))

	if len(g.Lengths) > 0 {
		vs := make([]uint64, len(g.Lengths))
		for i, l := range g.Lengths {
			vs[i] = uint64(l)
		}
		b = appendPackedVarint(b, fnGeomLengths, vs)
	}
	if len(g.Coords) > 0 {
		vs := make([]uint64, len(g.Coords))
		for i, c := range g.Coords {
			vs[i] = protowire.EncodeZigZag(c)
		}
		b = appendPackedVarint(b, fnGeomCoords, vs)
	}
	for _, child := range g.Geometries {
		b = appendMessage(b, fnGeomGeometries, child)
	}
	for _, val := range g.Values {
		b = appendMessage(b, fnGeomValues, val)
	}
	if len(g.CustomProperties) > 0 {
		vs := make([]uint64, len(g.CustomProperties))
		for i, p := range g.CustomProperties {
			vs[i] = uint64(p)
		}
		b = appendPackedVarint(b, fnGeomCustomProperties, vs)
	}
	return b
}

func unmarshalGeometry(buf []byte) (*Geometry, error) {
	g := &Geometry{}
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return nil, errTruncated
		}
		buf = buf[n:]

		switch num {
		case fnGeomType:
			x, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return nil, errTruncated
			}
			g.Type = GeometryType(x)
			buf = buf[n:]
		case fnGeomLengths:
			packed, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			for len(packed) > 0 {
				x, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return nil, errTruncated
				}
				g.Lengths = append(g.Lengths, uint32(x))
				packed = packed[m:]
			}
			buf = buf[n:]
		case fnGeomCoords:
			packed, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			for len(packed) > 0 {
				x, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return nil, errTruncated
				}
				g.Coords = append(g.Coords, protowire.DecodeZigZag(x))
				packed = packed[m:]
			}
			buf = buf[n:]
		case fnGeomGeometries:
			enc, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			child, err := unmarshalGeometry(enc)
			if err != nil {
				return nil, err
			}
			g.Geometries = append(g.Geometries, child)
			buf = buf[n:]
		case fnGeomValues:
			enc, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			val, err := unmarshalValue(enc)
			if err != nil {
				return nil, err
			}
			g.Values = append(g.Values, val)
			buf = buf[n:]
		case fnGeomCustomProperties:
			packed, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			for len(packed) > 0 {
				x, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return nil, errTruncated
				}
				g.CustomProperties = append(g.CustomProperties, uint32(x))
				packed = packed[m:]
			}
			buf = buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return nil, errTruncated
			}
			buf = buf[n:]
		}
	}
	return g, nil
}

// Marshal encodes f into the Geobuf wire format.
func (f *Feature) Marshal() []byte {
	var b []byte
	if f.Geometry != nil {
		b = appendMessage(b, fnFeatureGeometry, f.Geometry)
	}
	if len(f.Properties) > 0 {
		vs := make([]uint64, len(f.Properties))
		for i, p := range f.Properties {
			vs[i] = uint64(p)
		}
		b = appendPackedVarint(b, fnFeatureProperties, vs)
	}
	switch {
	case f.HasId:
		b = protowire.AppendTag(b, fnFeatureId, protowire.BytesType)
		b = protowire.AppendString(b, f.Id)
	case f.HasIntID:
		b = protowire.AppendTag(b, fnFeatureIntID, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeZigZag(f.IntID))
	}
	for _, val := range f.Values {
		b = appendMessage(b, fnFeatureValues, val)
	}
	if len(f.CustomProperties) > 0 {
		vs := make([]uint64, len(f.CustomProperties))
		for i, p := range f.CustomProperties {
			vs[i] = uint64(p)
		}
		b = appendPackedVarint(b, fnFeatureCustomProperties, vs)
	}
	return b
}

func unmarshalFeature(buf []byte) (*Feature, error) {
	f := &Feature{}
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return nil, errTruncated
		}
		buf = buf[n:]

		switch num {
		case fnFeatureGeometry:
			enc, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			geo, err := unmarshalGeometry(enc)
			if err != nil {
				return nil, err
			}
			f.Geometry = geo
			buf = buf[n:]
		case fnFeatureProperties:
			packed, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			for len(packed) > 0 {
				x, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return nil, errTruncated
				}
				f.Properties = append(f.Properties, uint32(x))
				packed = packed[m:]
			}
			buf = buf[n:]
		case fnFeatureId:
			s, n := protowire.ConsumeString(buf)
			if n < 0 {
				return nil, errTruncated
			}
			f.Id, f.HasId = s, true
			buf = buf[n:]
		case fnFeatureIntID:
			x, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return nil, errTruncated
			}
			f.IntID, f.HasIntID = protowire.DecodeZigZag(x), true
			buf = buf[n:]
		case fnFeatureValues:
			enc, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			val, err := unmarshalValue(enc)
			if err != nil {
				return nil, err
			}
			f.Values = append(f.Values, val)
			buf = buf[n:]
		case fnFeatureCustomProperties:
			packed, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			for len(packed) > 0 {
				x, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return nil, errTruncated
				}
				f.CustomProperties = append(f.CustomProperties, uint32(x))
				packed = packed[m:]
			}
			buf = buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return nil, errTruncated
			}
			buf = buf[n:]
		}
	}
	return f, nil
}

// Marshal encodes fc into the Geobuf wire format.
func (fc *FeatureCollection) Marshal() []byte {
	var b []byte
	for _, feature := range fc.Features {
		b = appendMessage(b, fnFCFeatures, feature)
	}
	for _, val := range fc.Values {
		b = appendMessage(b, fnFCValues, val)
	}
	if len(fc.CustomProperties) > 0 {
		vs := make([]uint64, len(fc.CustomProperties))
		for i, p := range fc.CustomProperties {
			vs[i] = uint64(p)
		}
		b = appendPackedVarint(b, fnFCCustomProperties, vs)
	}
	return b
}

func unmarshalFeatureCollection(buf []byte) (*FeatureCollection, error) {
	fc := &FeatureCollection{}
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return nil, errTruncated
		}
		buf = buf[n:]

		switch num {
		case fnFCFeatures:
			enc, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			feature, err := unmarshalFeature(enc)
			if err != nil {
				return nil, err
			}
			fc.Features = append(fc.Features, feature)
			buf = buf[n:]
		case fnFCValues:
			enc, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			val, err := unmarshalValue(enc)
			if err != nil {
				return nil, err
			}
			fc.Values = append(fc.Values, val)
			buf = buf[n:]
		case fnFCCustomProperties:
			packed, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			for len(packed) > 0 {
				x, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return nil, errTruncated
				}
				fc.CustomProperties = append(fc.CustomProperties, uint32(x))
				packed = packed[m:]
			}
			buf = buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return nil, errTruncated
			}
			buf = buf[n:]
		}
	}
	return fc, nil
}

// Marshal encodes the root Data message into the Geobuf wire format.
func (d *Data) Marshal() []byte {
	var b []byte
	for _, k := range d.Keys {
		b = protowire.AppendTag(b, fnDataKeys, protowire.BytesType)
		b = protowire.AppendString(b, k)
	}
	b = protowire.AppendTag(b, fnDataDimensions, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(d.Dimensions))
	b = protowire.AppendTag(b, fnDataPrecision, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(d.Precision))

	switch {
	case d.FeatureCollection != nil:
		b = appendMessage(b, fnDataFeatureCollection, d.FeatureCollection)
	case d.Feature != nil:
		b = appendMessage(b, fnDataFeature, d.Feature)
	case d.Geometry != nil:
		b = appendMessage(b, fnDataGeometry, d.Geometry)
	}
	return b
}

// Unmarshal decodes a root Data message from its Geobuf wire
// representation.
func Unmarshal(buf []byte) (*Data, error) {
	d := &Data{Dimensions: 2, Precision: 6}
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return nil, errTruncated
		}
		buf = buf[n:]

		switch num {
		case fnDataKeys:
			s, n := protowire.ConsumeString(buf)
			if n < 0 {
				return nil, errTruncated
			}
			d.Keys = append(d.Keys, s)
			buf = buf[n:]
		case fnDataDimensions:
			x, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return nil, errTruncated
			}
			d.Dimensions = uint32(x)
			buf = buf[n:]
		case fnDataPrecision:
			x, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return nil, errTruncated
			}
			d.Precision = uint32(x)
			buf = buf[n:]
		case fnDataFeatureCollection:
			enc, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			fc, err := unmarshalFeatureCollection(enc)
			if err != nil {
				return nil, err
			}
			d.FeatureCollection = fc
			buf = buf[n:]
		case fnDataFeature:
			enc, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			f, err := unmarshalFeature(enc)
			if err != nil {
				return nil, err
			}
			d.Feature = f
			buf = buf[n:]
		case fnDataGeometry:
			enc, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return nil, errTruncated
			}
			g, err := unmarshalGeometry(enc)
			if err != nil {
				return nil, err
			}
			d.Geometry = g
			buf = buf[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, buf)
			if n < 0 {
				return nil, errTruncated
			}
			buf = buf[n:]
		}
	}
	return d, nil
}
