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

func TestPosition(t *testing.T) {
	p := geojson.Position{100.0, 0.0}

	bin, err := json.Marshal(p)
	it.Then(t).Should(it.Nil(err))

	var q geojson.Position
	err = json.Unmarshal(bin, &q)
	it.Then(t).Should(
		it.Nil(err),
		it.Equiv(p, q),
	)
}

func TestSequence(t *testing.T) {
	s := geojson.Sequence{
		{100.0, 0.0},
		{101.0, 1.0},
	}

	bin, err := json.Marshal(s)
	it.Then(t).Should(it.Nil(err))

	var r geojson.Sequence
	err = json.Unmarshal(bin, &r)
	it.Then(t).Should(
		it.Nil(err),
		it.Equiv(s, r),
	)
}

func TestSurface(t *testing.T) {
	s := geojson.Surface{
		{
			{100.0, 0.0},
			{101.0, 0.0},
			{101.0, 1.0},
			{100.0, 1.0},
			{100.0, 0.0},
		},
	}

	bin, err := json.Marshal(s)
	it.Then(t).Should(it.Nil(err))

	var r geojson.Surface
	err = json.Unmarshal(bin, &r)
	it.Then(t).Should(
		it.Nil(err),
		it.Equiv(s, r),
	)
}
