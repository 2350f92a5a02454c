//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package timing records phase timing samples and renders them as a
// profiling report.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// FileSize is a byte count, rendered with a decimal unit.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Timing records timing samples and renders a profiling report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample with label and data columns. The sample
// spans from the end of the previous sample until now.
func (t *Timing) Sample(label string, cols []string) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Cols:  cols,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Total returns the duration from start until the end of the last
// sample.
func (t *Timing) Total() time.Duration {
	if len(t.Samples) == 0 {
		return 0
	}
	return t.Samples[len(t.Samples)-1].End.Sub(t.Start)
}

// Print prints the profiling report to out. The processed argument is
// the number of input bytes the samples cover.
func (t *Timing) Print(out io.Writer, processed uint64) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Data").SetAlign(tabulate.MR)

	total := t.Total()
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.End.Sub(sample.Start)
		row.Column(duration.String())
		row.Column(percent(duration, total))

		for _, col := range sample.Cols {
			row.Column(col)
		}

		for idx, sub := range sample.Samples {
			row := tab.Row()

			var prefix string
			if idx+1 >= len(sample.Samples) {
				prefix = "\u2570\u2574"
			} else {
				prefix = "\u251C\u2574"
			}

			row.Column(prefix + sub.Label).SetFormat(tabulate.FmtItalic)

			var d time.Duration
			if sub.Abs > 0 {
				d = sub.Abs
			} else {
				d = sub.End.Sub(sub.Start)
			}
			row.Column(d.String()).SetFormat(tabulate.FmtItalic)
			row.Column(percent(d, duration)).SetFormat(tabulate.FmtItalic)
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(FileSize(processed).String()).SetFormat(tabulate.FmtBold)

	if total > 0 {
		row = tab.Row()
		row.Column("\u2570\u2574Rate").SetFormat(tabulate.FmtItalic)
		row.Column("")
		row.Column("")
		row.Column(fmt.Sprintf("%s/s",
			FileSize(float64(processed)/total.Seconds()))).
			SetFormat(tabulate.FmtItalic)
	}

	tab.Print(out)
}

func percent(d, total time.Duration) string {
	if total <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(d)/float64(total)*100)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label   string
	Start   time.Time
	End     time.Time
	Abs     time.Duration
	Cols    []string
	Samples []*Sample
}

// SubSample adds a sub-sample for a timing sample.
func (s *Sample) SubSample(label string, end time.Time) {
	start := s.Start
	if len(s.Samples) > 0 {
		start = s.Samples[len(s.Samples)-1].End
	}
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Start: start,
		End:   end,
	})
}

// AbsSubSample adds an absolute sub-sample for a timing sample.
func (s *Sample) AbsSubSample(label string, duration time.Duration) {
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Abs:   duration,
	})
}
