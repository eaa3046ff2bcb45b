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
	"bufio"
	"bytes"
	"context"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"vitess.io/collate/go/libc"
	"vitess.io/collate/go/locale"
	"vitess.io/collate/go/log"
	"vitess.io/collate/go/stats"
	"vitess.io/collate/go/utils"
)

var (
	sortArgs = struct {
		Parallel int
		Reverse  bool
		Unique   bool
	}{}

	linesSorted = stats.NewCounter("LinesSorted", "Number of lines sorted")
	sortTimings = stats.NewTimings("SortPhases", "Time spent in each phase of a sort", "Phase", "keys", "order")

	// Sort orders lines under the selected locale.
	Sort = &cobra.Command{
		Use:   "sort [<file> ...]",
		Short: "Sorts the lines of the input files, or stdin, in collation order.",
		Long:  `Sorts the lines of the input files, or stdin, in collation order.

The sort key of every line is computed once, by up to --parallel workers, and
the lines are ordered by their keys. The result is the order strcoll gives.`,
		RunE: commandSort,
	}
)

func commandSort(cmd *cobra.Command, args []string) error {
	lines, err := readLines(args)
	if err != nil {
		return err
	}

	sorted, err := sortLines(cmd.Context(), rootThread, lines, rootConfig.GetInt("parallel"), rootConfig.GetBool("reverse"))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	var prev *sortLine
	for i := range sorted {
		if rootConfig.GetBool("unique") && prev != nil && bytes.Equal(prev.key, sorted[i].key) {
			continue
		}
		prev = &sorted[i]
		w.WriteString(sorted[i].text)
		w.WriteByte('\n')
	}
	return w.Flush()
}

type sortLine struct {
	text string
	key  []byte
}

// sortLines orders lines by their sort keys under the thread's collation,
// descending when reverse is set. Lines with equal keys keep their input
// order either way.
func sortLines(ctx context.Context, t *locale.Thread, lines []string, parallel int, reverse bool) ([]sortLine, error) {
	parallel = max(parallel, 1)
	key := libc.KeyFunc(t)
	out := make([]sortLine, len(lines))

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	chunk := max((len(lines)+parallel-1)/parallel, 1)
	for lo := 0; lo < len(lines); lo += chunk {
		hi := min(lo+chunk, len(lines))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				out[i] = sortLine{text: lines[i], key: key(nil, lines[i])}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sortTimings.Record("keys", start)

	start = time.Now()
	slices.SortStableFunc(out, func(a, b sortLine) int {
		if reverse {
			return bytes.Compare(b.key, a.key)
		}
		return bytes.Compare(a.key, b.key)
	})
	sortTimings.Record("order", start)

	linesSorted.Add(int64(len(lines)))
	log.DebugS("sorted lines", "lines", len(lines), "workers", parallel, "collation", t.Collation().Name())
	return out, nil
}

func init() {
	utils.SetFlagIntVar(Sort.Flags(), &sortArgs.Parallel, "parallel", 1, "Number of workers computing sort keys.")
	utils.SetFlagBoolVar(Sort.Flags(), &sortArgs.Reverse, "reverse", false, "Write the lines in descending order.")
	utils.SetFlagBoolVar(Sort.Flags(), &sortArgs.Unique, "unique", false, "Write only the first of each run of lines that collate equal.")
	Root.AddCommand(Sort)
}
