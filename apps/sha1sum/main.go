//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"fortio.org/safecast"
	"github.com/markkurossi/digest/env"
	"github.com/markkurossi/digest/sha1"
	"github.com/markkurossi/digest/timing"
)

func main() {
	fString := flag.String("s", "", "Digest string")
	fRandom := flag.Int64("r", -1, "Digest `N` random bytes")
	fWorkers := flag.Int("j", runtime.GOMAXPROCS(0),
		"Schedule expansion workers")
	fBinary := flag.Bool("b", false, "Output raw binary digest")
	fTiming := flag.Bool("t", false, "Print timing report")
	fVerbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	log.SetFlags(0)

	config := &env.Config{
		Workers: *fWorkers,
		Verbose: *fVerbose,
		Out:     os.Stderr,
	}
	out := &output{
		w:      os.Stdout,
		binary: *fBinary,
		timing: *fTiming,
	}

	var inputs []*input

	if len(*fString) > 0 {
		inputs = append(inputs, &input{
			name: fmt.Sprintf("%q", *fString),
			data: []byte(*fString),
		})
	}
	if *fRandom >= 0 {
		n, err := safecast.Conv[int](*fRandom)
		if err != nil {
			log.Fatalf("invalid random input size %d: %s", *fRandom, err)
		}
		data, err := randomInput(config.GetRandom(), n)
		if err != nil {
			log.Fatalf("failed to generate random input: %s", err)
		}
		inputs = append(inputs, &input{
			name: fmt.Sprintf("random(%d)", n),
			data: data,
		})
	}
	for _, arg := range flag.Args() {
		inputs = append(inputs, &input{
			name: arg,
		})
	}
	if len(inputs) == 0 {
		inputs = append(inputs, &input{
			name: "-",
		})
	}

	for _, in := range inputs {
		if err := in.load(); err != nil {
			log.Fatalf("failed to read '%s': %s", in.name, err)
		}
		if err := out.digest(config, in); err != nil {
			log.Fatalf("%s: %s", in.name, err)
		}
	}
}

type input struct {
	name string
	data []byte
}

func (in *input) load() error {
	if in.data != nil {
		return nil
	}
	var err error
	if in.name == "-" {
		in.data, err = io.ReadAll(os.Stdin)
	} else {
		in.data, err = os.ReadFile(in.name)
	}
	return err
}

type output struct {
	w      io.Writer
	binary bool
	timing bool
}

func (out *output) digest(config *env.Config, in *input) error {
	h := sha1.NewHasher(config)
	if out.timing {
		h.Timing = timing.NewTiming()
	}
	d, err := h.Sum(in.data)
	if err != nil {
		return err
	}
	if out.binary {
		_, err = out.w.Write(d.Bytes())
	} else {
		_, err = fmt.Fprintf(out.w, "%s  %s\n", d, in.name)
	}
	if err != nil {
		return err
	}
	if h.Timing != nil {
		h.Timing.Print(os.Stderr, uint64(len(in.data)))
	}
	return nil
}
