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
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/temporalib/tempora/common"
	"github.com/temporalib/tempora/extras"
)

func init() {
	rootCmd.AddCommand(missingCmd)
	addLoadFlags(missingCmd)
}

var missingCmd = &cobra.Command{
	Use:   "missing [file]",
	Args:  cobra.ExactArgs(1),
	Short: "Count truly-missing observations per year",
	Long: `missing regroups the selected column into annual rows and prints
the number of missing observations per year, discarding slots that are
structural padding (Feb 29 in non-leap years).`,
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()

		col := loadColumn(cmd, args[0])
		annual, err := extras.ConvertToAnnual(col)
		if err != nil {
			log.Fatal().Err(err).Msg("annual conversion failed")
		}
		counts, err := extras.CountMissing(annual)
		if err != nil {
			log.Fatal().Err(err).Msg("could not count missing values")
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Year", "Missing"})
		table.SetBorder(false)
		for i, d := range annual.Dates() {
			table.Append([]string{d.String(), fmt.Sprintf("%d", counts[i])})
		}
		table.Render()
	},
}
