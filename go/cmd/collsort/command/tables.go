/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package command

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"vitess.io/collate/go/collations"
)

// Tables prints the weight tables built into the binary.
var Tables = &cobra.Command{
	Use:   "tables",
	Short: "Prints the uca weight tables and their fingerprints.",
	Args:  cobra.NoArgs,
	RunE:  commandTables,
}

func commandTables(cmd *cobra.Command, args []string) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Tailoring", "Unicode", "Singles", "Contractions", "Weights", "Size", "Fingerprint")
	for _, info := range collations.Tables() {
		err := table.Append([]string{
			info.Tailoring.String(),
			info.UnicodeVersion,
			humanize.Comma(int64(info.Singles)),
			humanize.Comma(int64(info.Contractions)),
			humanize.Comma(int64(info.Weights)),
			humanize.Bytes(uint64(info.Weights) * 4),
			fmt.Sprintf("%016x", info.Fingerprint),
		})
		if err != nil {
			return err
		}
	}
	return table.Render()
}

func init() {
	Root.AddCommand(Tables)
}
