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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vitess.io/collate/go/libc"
	"vitess.io/collate/go/utils"
)

var (
	keyArgs = struct {
		Wide bool
	}{}

	// Key prints sort keys.
	Key = &cobra.Command{
		Use:   "key <string> [<string> ...]",
		Short: "Prints the strxfrm sort key of each argument in hex.",
		Long:  `Prints the strxfrm sort key of each argument in hex.

With --wide the wcsxfrm key is printed instead, one hex unit per key element.
Comparing two printed narrow keys as strings gives the strcoll order of their
arguments.`,
		Args: cobra.MinimumNArgs(1),
		RunE: commandKey,
	}
)

func commandKey(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		var key string
		if keyArgs.Wide {
			key = wideKey(arg)
		} else {
			key = narrowKey(arg)
		}
		fmt.Fprintln(cmd.OutOrStdout(), key)
	}
	return nil
}

// narrowKey sizes the buffer with a first strxfrm call, like C callers do.
func narrowKey(s string) string {
	n := libc.Strxfrm(rootThread, nil, s)
	buf := make([]byte, n+1)
	libc.Strxfrm(rootThread, buf, s)
	return hex.EncodeToString(buf[:n])
}

func wideKey(s string) string {
	src := []rune(s)
	n := libc.Wcsxfrm(rootThread, nil, src)
	buf := make([]rune, n+1)
	libc.Wcsxfrm(rootThread, buf, src)

	units := make([]string, n)
	for i, r := range buf[:n] {
		units[i] = fmt.Sprintf("%04x", r)
	}
	return strings.Join(units, " ")
}

func init() {
	utils.SetFlagBoolVar(Key.Flags(), &keyArgs.Wide, "wide", false, "Print the wcsxfrm key instead.")
	Root.AddCommand(Key)
}
