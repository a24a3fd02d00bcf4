// Copyright 2022-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/temporalib/tempora/calendar"
	"github.com/temporalib/tempora/common"
	"github.com/temporalib/tempora/extras"
	"github.com/temporalib/tempora/loader"
)

func init() {
	rootCmd.AddCommand(guessCmd)
	guessCmd.Flags().StringSlice("date-columns", nil, "Columns holding the date information")
	guessCmd.Flags().String("delimiter", ",", "Field delimiter")
	guessCmd.Flags().Int("skip-rows", 0, "Lines to skip at the top of the file")
}

var guessCmd = &cobra.Command{
	Use:   "guess [file]",
	Args:  cobra.ExactArgs(1),
	Short: "Estimate the sampling frequency of a file's date column",
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()

		// parse the dates at second resolution; the inference works
		// on the raw instants
		opts := loader.Options{Freq: calendar.Secondly}
		opts.DateColumns, _ = cmd.Flags().GetStringSlice("date-columns")
		opts.SkipRows, _ = cmd.Flags().GetInt("skip-rows")
		if delim, _ := cmd.Flags().GetString("delimiter"); delim != "" {
			opts.Delimiter = rune(delim[0])
		}

		rs, err := loader.LoadRecordsFromFile(args[0], opts)
		if err != nil {
			log.Fatal().Err(err).Str("File", args[0]).Msg("could not load records")
		}

		freq, err := extras.GuessFrequencyDates(rs.Dates)
		if err != nil {
			log.Fatal().Err(err).Msg("could not estimate frequency")
		}
		fmt.Println(freq)
	},
}
