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

	"github.com/temporalib/tempora/common"
	"github.com/temporalib/tempora/extras"
)

func init() {
	rootCmd.AddCommand(annualCmd)
	addLoadFlags(annualCmd)
	annualCmd.Flags().Bool("json", false, "Emit the result as JSON")
}

var annualCmd = &cobra.Command{
	Use:   "annual [file]",
	Args:  cobra.ExactArgs(1),
	Short: "Regroup a series into annual rows with leap-day handling",
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()

		col := loadColumn(cmd, args[0])
		annual, err := extras.ConvertToAnnual(col)
		if err != nil {
			log.Fatal().Err(err).Msg("annual conversion failed")
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := renderJSON(annual)
			if err != nil {
				log.Fatal().Err(err).Msg("could not encode series")
			}
			fmt.Println(string(out))
			return
		}
		fmt.Println(annual)
	},
}
