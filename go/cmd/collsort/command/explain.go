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
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"vitess.io/collate/go/collations"
	"vitess.io/collate/go/locale"
)

// Explain prints the collation elements of a string.
var Explain = &cobra.Command{
	Use:   "explain <string>",
	Short: "Prints the collation elements the uca collation of the locale builds for <string>.",
	Args:  cobra.ExactArgs(1),
	RunE:  commandExplain,
}

func commandExplain(cmd *cobra.Command, args []string) error {
	coll := rootThread.Collation()
	uc, ok := coll.(*collations.Collation_uca)
	if !ok {
		return fmt.Errorf("collation %s of locale %s does not use the uca backend",
			coll.Name(), rootThread.CurrentFor(locale.LC_COLLATE))
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "collation: %s\nversion: %s\n", uc.Name(), uc.Version())

	table := tablewriter.NewWriter(w)
	table.Header("#", "Element", "Primary", "Secondary", "Tertiary", "Variable")
	for i, e := range uc.Elements([]rune(args[0])) {
		err := table.Append([]string{
			strconv.Itoa(i),
			e.String(),
			fmt.Sprintf("%04X", e.Primary()),
			fmt.Sprintf("%04X", e.Secondary()),
			fmt.Sprintf("%04X", e.Tertiary()),
			strconv.FormatBool(e.Variable()),
		})
		if err != nil {
			return err
		}
	}
	return table.Render()
}

func init() {
	Root.AddCommand(Explain)
}
