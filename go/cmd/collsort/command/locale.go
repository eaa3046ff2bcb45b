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

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"vitess.io/collate/go/collations"
	"vitess.io/collate/go/locale"
)

// Locale prints the selected locale.
var Locale = &cobra.Command{
	Use:   "locale",
	Short: "Prints the locale of every category and the collation LC_COLLATE selects.",
	Args:  cobra.NoArgs,
	RunE:  commandLocale,
}

func commandLocale(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	table := tablewriter.NewWriter(w)
	table.Header("Category", "Locale")
	for cat := locale.LC_CTYPE; cat < locale.LC_ALL; cat++ {
		if err := table.Append([]string{cat.String(), rootThread.CurrentFor(cat)}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	coll := rootThread.Collation()
	fmt.Fprintf(w, "collation: %s\n", coll.Name())
	if v, ok := coll.(collations.Versioned); ok {
		fmt.Fprintf(w, "version: %s\n", v.Version())
	}
	return nil
}

func init() {
	Root.AddCommand(Locale)
}
