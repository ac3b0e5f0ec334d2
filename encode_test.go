//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

package geobuf_test

import (
	"errors"
	"testing"

	"github.com/fogfish/it/v2"

	"github.com/fogfish/geobuf"
	"github.com/fogfish/geobuf/schema"
)

func TestEncodeInvalidGeometryType(t *testing.T) {
	_, err := geobuf.Encode([]byte(`{"type":"Sphere","coordinates":[]}`), geobuf.DefaultOptions())
	it.Then(t).Should(it.Equal(err, geobuf.ErrorInvalidGeometryType))
}

func TestEncodeMalformedInput(t *testing.T) {
	_, err := geobuf.Encode([]byte(`not json`), geobuf.DefaultOptions())
	it.Then(t).Should(it.Equal(errors.Is(err, geobuf.ErrorMalformedInput), true))
}

func TestEncodeGeometryCollection(t *testing.T) {
	const input = `
		{
			"type": "GeometryCollection",
			"geometries": [
				{"type": "Point", "coordinates": [0, 0]},
				{"type": "LineString", "coordinates": [[0,0],[1,1]]}
			]
		}
	`

	data, err := geobuf.Encode([]byte(input), geobuf.DefaultOptions())
	it.Then(t).Should(it.Nil(err))
	it.Then(t).Should(
		it.Equal(data.Geometry.Type, schema.GEOMETRYCOLLECTION),
		it.Equal(len(data.Geometry.Geometries), 2),
		it.Equal(data.Geometry.Geometries[0].Type, schema.POINT),
		it.Equal(data.Geometry.Geometries[1].Type, schema.LINESTRING),
	)
}

func TestEncodeSharesKeyDictionaryAcrossFeatures(t *testing.T) {
	const input = `
		{
			"type": "FeatureCollection",
			"features": [
				{"type":"Feature","properties":{"name":"a"},"geometry":{"type":"Point","coordinates":[0,0]}},
				{"type":"Feature","properties":{"name":"b"},"geometry":{"type":"Point","coordinates":[1,1]}}
			]
		}
	`

	data, err := geobuf.Encode([]byte(input), geobuf.DefaultOptions())
	it.Then(t).Should(it.Nil(err))
	it.Then(t).Should(it.Equiv(data.Keys, []string{"name"}))

	f0, f1 := data.FeatureCollection.Features[0], data.FeatureCollection.Features[1]
	it.Then(t).Should(
		it.Equal(f0.Properties[0], uint32(0)),
		it.Equal(f1.Properties[0], uint32(0)),
	)
}

func TestEncodeCustomPropertiesOnFeature(t *testing.T) {
	const input = `
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [0, 0]},
			"extra": "sidecar"
		}
	`

	data, err := geobuf.Encode([]byte(input), geobuf.DefaultOptions())
	it.Then(t).Should(it.Nil(err))
	it.Then(t).Should(
		it.Equiv(data.Keys, []string{"extra"}),
		it.Equal(len(data.Feature.CustomProperties), 2),
		it.Equal(data.Feature.Values[0].StringValue, "sidecar"),
	)
}
