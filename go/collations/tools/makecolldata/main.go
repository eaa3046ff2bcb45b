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

// makecolldata validates an allkeys.txt file from the Unicode Consortium and
// writes it, gzip compressed, as the DUCET data embedded by the uca package.
//
//	go run ./go/collations/tools/makecolldata --allkeys allkeys.txt
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/pgzip"
	"github.com/spf13/pflag"

	"vitess.io/collate/go/collations/internal/uca"
	"vitess.io/collate/go/ioutil2"
	"vitess.io/collate/go/log"
)

var (
	Allkeys = pflag.String("allkeys", "allkeys.txt", "allkeys.txt to import; a .gz suffix means it is compressed")
	Out     = pflag.String("out", "go/collations/internal/uca/data/allkeys.txt.gz", "destination of the compressed data")
	Version = pflag.String("version", "13.0.0", "Unicode version the data must declare")
	Level   = pflag.Int("level", gzip.BestCompression, "gzip compression level")
	Workers = pflag.Int("workers", 1, "compress blocks in parallel with this many workers; the output stays a single gzip stream")
)

const pgzipBlockSize = 256 << 10

// newWriter returns a gzip writer for dst. With more than one worker the
// stream is produced by pgzip, which decoders read like any gzip file.
func newWriter(dst io.Writer, level, workers int) (io.WriteCloser, error) {
	if workers <= 1 {
		gz, err := gzip.NewWriterLevel(dst, level)
		if err != nil {
			return nil, err
		}
		gz.Name = "allkeys.txt"
		return gz, nil
	}
	gz, err := pgzip.NewWriterLevel(dst, level)
	if err != nil {
		return nil, err
	}
	gz.Name = "allkeys.txt"
	if err := gz.SetConcurrency(pgzipBlockSize, workers); err != nil {
		return nil, err
	}
	return gz, nil
}

// compress copies the allkeys.txt data in src to dst, compressed at the
// given level, and returns the dataset it decodes to. Nothing is written
// when the data does not parse.
func compress(dst io.Writer, src io.Reader, level, workers int) (*uca.Dataset, error) {
	var raw bytes.Buffer
	ds, err := uca.ParseDataset(*Allkeys, io.TeeReader(src, &raw))
	if err != nil {
		return nil, err
	}

	gz, err := newWriter(dst, level, workers)
	if err != nil {
		return nil, err
	}
	if _, err := gz.Write(raw.Bytes()); err != nil {
		return nil, err
	}
	return ds, gz.Close()
}

func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return struct {
		io.Reader
		io.Closer
	}{gz, f}, nil
}

func main() {
	pflag.Parse()
	defer log.Flush()

	src, err := open(*Allkeys)
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	defer src.Close()

	var out bytes.Buffer
	ds, err := compress(&out, src, *Level, *Workers)
	if err != nil {
		log.Fatalf("invalid %s: %v", *Allkeys, err)
	}
	if ds.Version() != *Version {
		log.Fatalf("%s declares version %q, expected %q", *Allkeys, ds.Version(), *Version)
	}

	if err := ioutil2.WriteFileAtomic(*Out, out.Bytes(), 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", *Out, err)
	}

	singles, multis := ds.Len()
	log.Infof("wrote %s: Unicode %s, %d code points, %d contractions, %d bytes",
		*Out, ds.Version(), singles, multis, out.Len())
}
