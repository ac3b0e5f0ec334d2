//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fogfish/geobuf"
	"github.com/fogfish/geobuf/schema"
)

func encodeCmd() *cobra.Command {
	var input, output string
	var dim, precision uint32

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Convert a GeoJSON file to Geobuf",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("reading %s: %w", input, err)
			}

			data, err := geobuf.Encode(raw, geobuf.Options{Dimensions: dim, Precision: precision})
			if err != nil {
				return fmt.Errorf("encoding %s: %w", input, err)
			}

			if err := os.WriteFile(output, marshalData(data), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			log.Info().Str("input", input).Str("output", output).
				Uint32("dim", dim).Uint32("precision", precision).
				Msg("encoded")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "path to the input GeoJSON file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path to the output Geobuf file")
	cmd.Flags().Uint32VarP(&dim, "dim", "d", 2, "number of dimensions in coordinates")
	cmd.Flags().Uint32VarP(&precision, "precision", "p", 6, "max number of digits after the decimal point in coordinates")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

func marshalData(data *schema.Data) []byte {
	return data.Marshal()
}
