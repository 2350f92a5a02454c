//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/digest/env"
	"github.com/markkurossi/digest/timing"
	"github.com/markkurossi/text/superscript"
	"golang.org/x/sync/errgroup"
)

// expandBatch is the number of blocks expanded ahead of the fold when
// running with multiple workers.
const expandBatch = 1024

// Hasher computes SHA-1 digests with configurable schedule expansion
// parallelism, tracing, and timing. The compression fold is always
// sequential; only the expansion of independent blocks runs
// concurrently.
type Hasher struct {
	Verbose bool
	Timing  *timing.Timing
	workers int
	out     io.Writer
}

// NewHasher creates a new hasher for the configuration. The nil
// config selects the defaults.
func NewHasher(config *env.Config) *Hasher {
	h := &Hasher{
		workers: config.GetWorkers(),
		out:     config.GetOutput(),
	}
	if config != nil {
		h.Verbose = config.Verbose
	}
	return h
}

// Debugf prints debugging message if Verbose is enabled.
func (h *Hasher) Debugf(format string, a ...interface{}) {
	if !h.Verbose {
		return
	}
	fmt.Fprintf(h.out, format, a...)
}

// Sum returns the SHA-1 digest of message.
func (h *Hasher) Sum(message []byte) (Digest, error) {
	padded, err := Pad(message)
	if err != nil {
		return Digest{}, err
	}
	if h.Timing != nil {
		h.Timing.Sample("Pad", []string{
			timing.FileSize(len(padded)).String(),
		})
	}
	blocks, err := Parse(padded)
	if err != nil {
		return Digest{}, err
	}
	if h.Timing != nil {
		h.Timing.Sample("Parse", []string{fmt.Sprintf("%d", len(blocks))})
	}
	h.Debugf("sha1: message=%dB, padded=%dB, blocks=%d, workers=%d\n",
		len(message), len(padded), len(blocks), h.workers)

	batch := 1
	if h.workers > 1 {
		batch = min(expandBatch, len(blocks))
	}
	schedules := make([]Schedule, batch)

	var expandTime, compressTime time.Duration
	var idx int

	state := Initial
	h.Debugf("H\u207d%s\u207e:\t%v\n", superscript.Itoa(idx), state)

	for len(blocks) > 0 {
		n := min(batch, len(blocks))

		start := time.Now()
		err = h.expand(blocks[:n], schedules[:n])
		if err != nil {
			return Digest{}, err
		}
		mid := time.Now()

		for i := 0; i < n; i++ {
			state = Compress(&schedules[i], state)
			idx++
			h.Debugf("H\u207d%s\u207e:\t%v\n", superscript.Itoa(idx), state)
		}
		end := time.Now()

		expandTime += mid.Sub(start)
		compressTime += end.Sub(mid)
		blocks = blocks[n:]
	}
	if h.Timing != nil {
		sample := h.Timing.Sample("Fold", nil)
		sample.AbsSubSample("Expand", expandTime)
		sample.AbsSubSample("Compress", compressTime)
	}

	return state.Digest(), nil
}

// expand computes the schedules of blocks into out. With multiple
// workers, the blocks are split into contiguous ranges, one per
// goroutine.
func (h *Hasher) expand(blocks []*Block, out []Schedule) error {
	if h.workers < 2 || len(blocks) < 2 {
		for i, b := range blocks {
			out[i] = Expand(b)
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(h.workers)

	per := (len(blocks) + h.workers - 1) / h.workers
	for from := 0; from < len(blocks); from += per {
		to := min(from+per, len(blocks))
		g.Go(func() error {
			for i := from; i < to; i++ {
				out[i] = Expand(blocks[i])
			}
			return nil
		})
	}
	return g.Wait()
}
