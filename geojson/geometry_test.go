//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geojson
//

package geojson_test

import (
	"encoding/json"
	"testing"

	"github.com/fogfish/geobuf/geojson"
	"github.com/fogfish/it/v2"
)

const (
	geometryPoint = `
		{
			"type": "Point",
			"coordinates": [100.0, 0.0]
		}
	`

	geometryMultiPoint = `
		{
			"type": "MultiPoint",
			"coordinates": [
					[100.0, 0.0],
					[101.0, 1.0]
			]
		}
	`

	geometryLineString = `
		{
			"type": "LineString",
			"coordinates": [
					[100.0, 0.0],
					[101.0, 1.0]
			]
		}
	`

	geometryMultiLineString = `
		{
			"type": "MultiLineString",
			"coordinates": [
					[
							[100.0, 0.0],
							[101.0, 1.0]
					],
					[
							[102.0, 2.0],
							[103.0, 3.0]
					]
			]
		}
	`

	geometryPolygon = `
		{
			"type": "Polygon",
			"coordinates": [
					[
							[100.0, 0.0],
							[101.0, 0.0],
							[101.0, 1.0],
							[100.0, 1.0],
							[100.0, 0.0]
					]
			]
		}
	`

	geometryPolygonWithHole = `
		{
			"type": "Polygon",
			"coordinates": [
					[
							[100.0, 0.0],
							[101.0, 0.0],
							[101.0, 1.0],
							[100.0, 1.0],
							[100.0, 0.0]
					],
					[
							[100.8, 0.8],
							[100.8, 0.2],
							[100.2, 0.2],
							[100.2, 0.8],
							[100.8, 0.8]
					]
			]
		}
	`

	geometryMultiPolygon = `
		{
			"type": "MultiPolygon",
			"coordinates": [
					[
							[
									[102.0, 2.0],
									[103.0, 2.0],
									[103.0, 3.0],
									[102.0, 3.0],
									[102.0, 2.0]
							]
					],
					[
							[
									[100.0, 0.0],
									[101.0, 0.0],
									[101.0, 1.0],
									[100.0, 1.0],
									[100.0, 0.0]
							],
							[
									[100.2, 0.2],
									[100.2, 0.8],
									[100.8, 0.8],
									[100.8, 0.2],
									[100.2, 0.2]
							]
					]
			]
		}
	`
)

func TestGeometryPoint(t *testing.T) {
	var geometry geojson.Geometry
	err := json.Unmarshal([]byte(geometryPoint), &geometry)
	it.Then(t).Should(it.Nil(err))

	v, ok := geometry.Coords.(*geojson.Point)
	it.Then(t).Should(it.Equal(ok, true))
	it.Then(t).Should(it.Equiv(v.Coords, geojson.Position{100.0, 0.0}))
}

func TestGeometryMultiPoint(t *testing.T) {
	var geometry geojson.Geometry
	err := json.Unmarshal([]byte(geometryMultiPoint), &geometry)
	it.Then(t).Should(it.Nil(err))

	v, ok := geometry.Coords.(*geojson.MultiPoint)
	it.Then(t).Should(it.Equal(ok, true))
	it.Then(t).Should(it.Equiv(v.Coords, geojson.Sequence{
		{100.0, 0.0},
		{101.0, 1.0},
	}))
}

func TestGeometryLineString(t *testing.T) {
	var geometry geojson.Geometry
	err := json.Unmarshal([]byte(geometryLineString), &geometry)
	it.Then(t).Should(it.Nil(err))

	v, ok := geometry.Coords.(*geojson.LineString)
	it.Then(t).Should(it.Equal(ok, true))
	it.Then(t).Should(it.Equiv(v.Coords, geojson.Sequence{
		{100.0, 0.0},
		{101.0, 1.0},
	}))
}

func TestGeometryMultiLineString(t *testing.T) {
	var geometry geojson.Geometry
	err := json.Unmarshal([]byte(geometryMultiLineString), &geometry)
	it.Then(t).Should(it.Nil(err))

	v, ok := geometry.Coords.(*geojson.MultiLineString)
	it.Then(t).Should(it.Equal(ok, true))
	it.Then(t).Should(it.Equiv(v.Coords, geojson.Surface{
		{{100.0, 0.0}, {101.0, 1.0}},
		{{102.0, 2.0}, {103.0, 3.0}},
	}))
}

func TestGeometryPolygon(t *testing.T) {
	var geometry geojson.Geometry
	err := json.Unmarshal([]byte(geometryPolygon), &geometry)
	it.Then(t).Should(it.Nil(err))

	v, ok := geometry.Coords.(*geojson.Polygon)
	it.Then(t).Should(it.Equal(ok, true))
	it.Then(t).Should(it.Equiv(v.Coords, geojson.Surface{
		{
			{100.0, 0.0},
			{101.0, 0.0},
			{101.0, 1.0},
			{100.0, 1.0},
			{100.0, 0.0},
		},
	}))
}

func TestGeometryPolygonWithHole(t *testing.T) {
	var geometry geojson.Geometry
	err := json.Unmarshal([]byte(geometryPolygonWithHole), &geometry)
	it.Then(t).Should(it.Nil(err))

	v, ok := geometry.Coords.(*geojson.Polygon)
	it.Then(t).Should(it.Equal(ok, true))
	it.Then(t).Should(it.Equiv(v.Coords, geojson.Surface{
		{
			{100.0, 0.0},
			{101.0, 0.0},
			{101.0, 1.0},
			{100.0, 1.0},
			{100.0, 0.0},
		},
		{
			{100.8, 0.8},
			{100.8, 0.2},
			{100.2, 0.2},
			{100.2, 0.8},
			{100.8, 0.8},
		},
	}))
}

func TestGeometryMultiPolygon(t *testing.T) {
	var geometry geojson.Geometry
	err := json.Unmarshal([]byte(geometryMultiPolygon), &geometry)
	it.Then(t).Should(it.Nil(err))

	v, ok := geometry.Coords.(*geojson.MultiPolygon)
	it.Then(t).Should(it.Equal(ok, true))
	it.Then(t).Should(it.Equiv(v.Coords, []geojson.Surface{
		{
			{
				{102.0, 2.0},
				{103.0, 2.0},
				{103.0, 3.0},
				{102.0, 3.0},
				{102.0, 2.0},
			},
		},
		{
			{
				{100.0, 0.0},
				{101.0, 0.0},
				{101.0, 1.0},
				{100.0, 1.0},
				{100.0, 0.0},
			},
			{
				{100.2, 0.2},
				{100.2, 0.8},
				{100.8, 0.8},
				{100.8, 0.2},
				{100.2, 0.2},
			},
		},
	}))
}

func TestGeometryInvalidType(t *testing.T) {
	var geometry geojson.Geometry
	err := json.Unmarshal([]byte(`{"type":"Sphere","coordinates":[]}`), &geometry)
	it.Then(t).Should(it.Equal(err, geojson.ErrorUnsupportedType))
}
