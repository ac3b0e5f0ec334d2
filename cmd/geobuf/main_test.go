//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/fogfish/it/v2"
)

const geojsonFixture = `{
	"type": "Feature",
	"geometry": {"type": "Point", "coordinates": [100.0, 0.0]},
	"properties": {"name": "null island"}
}`

func TestEncodeCmdDefaultFlags(t *testing.T) {
	cmd := encodeCmd()
	it.Then(t).Should(
		it.Equal(cmd.Flags().Lookup("dim").DefValue, "2"),
		it.Equal(cmd.Flags().Lookup("precision").DefValue, "6"),
	)
}

func TestDecodeCmdDefaultFlags(t *testing.T) {
	cmd := decodeCmd()
	it.Then(t).Should(
		it.Equal(cmd.Flags().Lookup("pretty").DefValue, "false"),
		it.Equal(cmd.Flags().Lookup("typed").DefValue, "false"),
	)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.geojson")
	bin := filepath.Join(dir, "out.geobuf")
	out := filepath.Join(dir, "out.geojson")

	it.Then(t).Should(it.Nil(os.WriteFile(src, []byte(geojsonFixture), 0o644)))

	encode := encodeCmd()
	encode.Flags().Set("input", src)
	encode.Flags().Set("output", bin)
	it.Then(t).Should(it.Nil(encode.RunE(encode, nil)))

	decode := decodeCmd()
	decode.Flags().Set("input", bin)
	decode.Flags().Set("output", out)
	it.Then(t).Should(it.Nil(decode.RunE(decode, nil)))

	raw, err := os.ReadFile(out)
	it.Then(t).Should(it.Nil(err))
	it.Then(t).Should(
		it.Equal(gjson.GetBytes(raw, "type").String(), "Feature"),
		it.Equal(gjson.GetBytes(raw, "geometry.type").String(), "Point"),
		it.Equal(gjson.GetBytes(raw, "properties.name").String(), "null island"),
	)
}

func TestDecodeCmdTypedFlag(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.geojson")
	bin := filepath.Join(dir, "out.geobuf")
	out := filepath.Join(dir, "out.geometry.json")

	it.Then(t).Should(it.Nil(os.WriteFile(src, []byte(geojsonFixture), 0o644)))

	encode := encodeCmd()
	encode.Flags().Set("input", src)
	encode.Flags().Set("output", bin)
	it.Then(t).Should(it.Nil(encode.RunE(encode, nil)))

	decode := decodeCmd()
	decode.Flags().Set("input", bin)
	decode.Flags().Set("output", out)
	decode.Flags().Set("typed", "true")
	it.Then(t).Should(it.Nil(decode.RunE(decode, nil)))

	raw, err := os.ReadFile(out)
	it.Then(t).Should(it.Nil(err))
	it.Then(t).Should(
		it.Equal(gjson.GetBytes(raw, "type").String(), "Point"),
		it.Equal(gjson.GetBytes(raw, "coordinates.0").Num, float64(100)),
	)
}
