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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const maxLineSize = 1 << 20

var errTerminalInput = errors.New("refusing to read from a terminal: pass input files or pipe the input")

// readLines returns the lines of the named files in order, or the lines of
// Stdin when no file is named. Line terminators are dropped.
func readLines(files []string) ([]string, error) {
	if len(files) == 0 {
		if f, ok := Stdin.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return nil, errTerminalInput
		}
		return scanLines(nil, Stdin)
	}

	var lines []string
	for _, name := range files {
		f, err := FS.Open(name)
		if err != nil {
			return nil, err
		}
		lines, err = scanLines(lines, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
	}
	return lines, nil
}

func scanLines(lines []string, r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
