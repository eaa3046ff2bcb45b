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

package uca

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dataset is the decoded contents of one weight data file in the
// allkeys.txt format:
//
//	@version 13.0.0
//	@implicitweights 17000..18AFF; FB00
//	@reorder Arabic
//	0061 ; [.1FA2.0020.0002]
//	006C 00B7 ; [.20D6.0020.0002][.0000.0118.0002]
type Dataset struct {
	version   string
	singles   map[rune][]Elem
	multis    contractions
	implicits []implicitRange
	reorder   []string
}

type implicitRange struct {
	lo, hi rune
	base   uint16
}

// Version returns the value of the @version directive, if any.
func (ds *Dataset) Version() string {
	return ds.version
}

// Len returns the number of single code point entries and the number of
// contractions in the dataset.
func (ds *Dataset) Len() (singles, multis int) {
	return len(ds.singles), ds.multis.len()
}

// ParseDataset decodes a weight data file. The name is only used to
// annotate errors.
func ParseDataset(name string, r io.Reader) (*Dataset, error) {
	ds := &Dataset{singles: make(map[rune][]Elem)}
	if err := ds.parse(name, r); err != nil {
		return nil, err
	}
	return ds, nil
}

func (ds *Dataset) parse(name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 64*1024)

	var lineno int
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var err error
		if line[0] == '@' {
			err = ds.parseDirective(line[1:])
		} else {
			err = ds.parseEntry(line)
		}
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineno, err)
		}
	}
	return scanner.Err()
}

func (ds *Dataset) parseDirective(line string) error {
	directive, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	switch directive {
	case "version":
		ds.version = args
	case "implicitweights":
		rng, base, ok := strings.Cut(args, ";")
		if !ok {
			return fmt.Errorf("malformed @implicitweights %q", args)
		}
		lo, hi, ok := strings.Cut(strings.TrimSpace(rng), "..")
		if !ok {
			return fmt.Errorf("malformed @implicitweights range %q", rng)
		}
		var ir implicitRange
		var err error
		if ir.lo, err = parseCodepoint(lo); err != nil {
			return err
		}
		if ir.hi, err = parseCodepoint(hi); err != nil {
			return err
		}
		b, err := strconv.ParseUint(strings.TrimSpace(base), 16, 16)
		if err != nil {
			return fmt.Errorf("malformed @implicitweights base %q: %w", base, err)
		}
		ir.base = uint16(b)
		ds.implicits = append(ds.implicits, ir)
	case "reorder":
		ds.reorder = append(ds.reorder, strings.Fields(args)...)
	default:
		return fmt.Errorf("unknown directive @%s", directive)
	}
	return nil
}

func (ds *Dataset) parseEntry(line string) error {
	keys, weights, ok := strings.Cut(line, ";")
	if !ok {
		return fmt.Errorf("missing ';' in entry %q", line)
	}

	var path []rune
	for _, field := range strings.Fields(keys) {
		cp, err := parseCodepoint(field)
		if err != nil {
			return err
		}
		path = append(path, cp)
	}

	row, err := parseWeights(strings.TrimSpace(weights))
	if err != nil {
		return err
	}

	switch len(path) {
	case 0:
		return fmt.Errorf("entry without code points")
	case 1:
		ds.singles[path[0]] = row
	default:
		ds.multis.insert(path, row)
	}
	return nil
}

// parseWeights decodes a sequence of collation elements such as
// "[*0209.0020.0002][.0000.002B.0002]". A fourth weight, as found in older
// allkeys.txt versions, is accepted and ignored.
func parseWeights(s string) ([]Elem, error) {
	var row []Elem
	for len(s) > 0 {
		if s[0] != '[' {
			return nil, fmt.Errorf("malformed weights %q", s)
		}
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, fmt.Errorf("unterminated weights %q", s)
		}
		elem := s[1:end]
		s = strings.TrimSpace(s[end+1:])

		if len(elem) < 1 || (elem[0] != '.' && elem[0] != '*') {
			return nil, fmt.Errorf("malformed collation element %q", elem)
		}
		variable := elem[0] == '*'

		fields := strings.Split(elem[1:], ".")
		if len(fields) < 3 || len(fields) > 4 {
			return nil, fmt.Errorf("collation element %q must have 3 weights", elem)
		}
		var w [3]uint16
		for i := range w {
			v, err := strconv.ParseUint(fields[i], 16, 16)
			if err != nil {
				return nil, fmt.Errorf("malformed weight in %q: %w", elem, err)
			}
			w[i] = uint16(v)
		}
		if w[1] > elemSecondaryMask || w[2] > elemTertiaryMask {
			return nil, fmt.Errorf("collation element %q does not fit in an Elem", elem)
		}
		row = append(row, MakeElem(variable, w[0], w[1], w[2]))
	}
	if len(row) == 0 {
		return nil, fmt.Errorf("entry without weights")
	}
	return row, nil
}

func parseCodepoint(s string) (rune, error) {
	cp, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil || cp > 0x10FFFF {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return rune(cp), nil
}
