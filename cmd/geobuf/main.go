//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

/*

Command geobuf is a thin CLI wrapper over the geobuf codec: encode
converts a GeoJSON file to its Geobuf binary form, decode does the
reverse. Both subcommands are pure file-in/file-out; all the codec
logic lives in the root package and is exercised identically by the
Go API and the CLI.
*/
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	root := &cobra.Command{
		Use:   "geobuf",
		Short: "A Geobuf encoder and decoder",
	}

	root.AddCommand(encodeCmd())
	root.AddCommand(decodeCmd())

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
