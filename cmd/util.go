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
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/temporalib/tempora/calendar"
	"github.com/temporalib/tempora/loader"
	"github.com/temporalib/tempora/series"
)

// addLoadFlags registers the flags shared by every command that reads
// a series from a file.
func addLoadFlags(cmd *cobra.Command) {
	cmd.Flags().String("freq", "daily", "Frequency the date column is parsed at")
	cmd.Flags().StringSlice("date-columns", nil, "Columns holding the date information")
	cmd.Flags().String("delimiter", ",", "Field delimiter")
	cmd.Flags().Int("skip-rows", 0, "Lines to skip at the top of the file")
	cmd.Flags().StringSlice("missing", nil, "Strings treated as missing values")
	cmd.Flags().String("column", "", "Payload column to operate on (default: first)")
}

// loaderOptions assembles loader.Options from the shared flags.
func loaderOptions(cmd *cobra.Command) (loader.Options, error) {
	freqStr, _ := cmd.Flags().GetString("freq")
	freq, err := calendar.ParseFrequency(freqStr)
	if err != nil {
		return loader.Options{}, err
	}

	opts := loader.Options{Freq: freq}
	opts.DateColumns, _ = cmd.Flags().GetStringSlice("date-columns")
	opts.SkipRows, _ = cmd.Flags().GetInt("skip-rows")
	opts.MissingMarkers, _ = cmd.Flags().GetStringSlice("missing")
	if delim, _ := cmd.Flags().GetString("delimiter"); delim != "" {
		opts.Delimiter = rune(delim[0])
	}
	return opts, nil
}

// loadColumn loads the file and extracts the requested payload column
// as a 1-D series.
func loadColumn(cmd *cobra.Command, path string) *series.TimeSeries {
	opts, err := loaderOptions(cmd)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid options")
	}

	ts, err := loader.LoadFromFile(path, opts)
	if err != nil {
		log.Fatal().Err(err).Str("File", path).Msg("could not load series")
	}

	colName, _ := cmd.Flags().GetString("column")
	var col *series.TimeSeries
	if colName != "" {
		col, err = ts.ColumnByName(colName)
	} else {
		col, err = ts.Column(0)
	}
	if err != nil {
		log.Fatal().Err(err).Str("Column", colName).Msg("could not extract column")
	}
	return col
}
