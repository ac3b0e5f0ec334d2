//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/fogfish/geobuf"
	"github.com/fogfish/geobuf/schema"
)

func decodeCmd() *cobra.Command {
	var input, output string
	var usePretty, typed bool

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Convert a Geobuf file to GeoJSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("reading %s: %w", input, err)
			}

			data, err := schema.Unmarshal(raw)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", input, err)
			}

			var out []byte
			if typed {
				geom, err := geobuf.DecodeGeometry(data)
				if err != nil {
					return fmt.Errorf("decoding %s: %w", input, err)
				}

				out, err = json.Marshal(geom)
				if err != nil {
					return fmt.Errorf("encoding %s: %w", input, err)
				}
			} else {
				out, err = geobuf.Decode(data)
				if err != nil {
					return fmt.Errorf("decoding %s: %w", input, err)
				}
			}

			if usePretty {
				out = pretty.Pretty(out)
			}

			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			log.Info().Str("input", input).Str("output", output).
				Bool("pretty", usePretty).Bool("typed", typed).Msg("decoded")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "path to the input Geobuf file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path to the output GeoJSON file")
	cmd.Flags().BoolVarP(&usePretty, "pretty", "p", false, "pretty-print the decoded GeoJSON")
	cmd.Flags().BoolVarP(&typed, "typed", "t", false, "decode only the geometry through the typed geojson object model (Geometry.MarshalJSON)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}
