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

	"github.com/spf13/cobra"

	"vitess.io/collate/go/libc"
	"vitess.io/collate/go/utils"
)

var (
	cmpArgs = struct {
		Wide bool
	}{}

	// Cmp compares two strings.
	Cmp = &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Prints -1, 0 or 1 as <a> collates before, equal to or after <b>.",
		Args:  cobra.ExactArgs(2),
		RunE:  commandCmp,
	}
)

func commandCmp(cmd *cobra.Command, args []string) error {
	var res int
	if cmpArgs.Wide {
		res = libc.Wcscoll(rootThread, []rune(args[0]), []rune(args[1]))
	} else {
		res = libc.Strcoll(rootThread, args[0], args[1])
	}
	fmt.Fprintln(cmd.OutOrStdout(), res)
	return nil
}

func init() {
	utils.SetFlagBoolVar(Cmp.Flags(), &cmpArgs.Wide, "wide", false, "Compare as wide strings with wcscoll.")
	Root.AddCommand(Cmp)
}
