// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrUnknownFormat is returned by NewReporter for unrecognized formats.
var ErrUnknownFormat = errors.New("unknown report format")

// Report formats accepted by NewReporter.
const (
	FormatText    = "text"
	FormatGoBench = "gobench"
	FormatTable   = "table"
)

// Formats lists the accepted report formats.
func Formats() []string {
	return []string{FormatText, FormatGoBench, FormatTable}
}

// Reporter receives the progress of a run.
type Reporter interface {
	// Size is called before the first sample of each size.
	Size(n int)
	// Sample is called once per measured sort.
	Sample(s Sample)
	// Flush is called once when the run completes.
	Flush() error
}

type discard struct{}

func (discard) Size(int)      {}
func (discard) Sample(Sample) {}
func (discard) Flush() error  { return nil }

// Discard ignores everything it is given.
var Discard Reporter = discard{}

// NewReporter returns a Reporter writing format to w. cfg supplies the
// resolution and thread count shown in the output.
func NewReporter(format string, w io.Writer, cfg Config) (Reporter, error) {
	cfg = cfg.normalized()
	printer := message.NewPrinter(language.English)
	switch strings.ToLower(format) {
	case FormatText, "":
		return &textReporter{w: w, p: printer, resolution: cfg.Resolution}, nil
	case FormatGoBench:
		return &goBenchReporter{w: w, threads: cfg.MaxThreads}, nil
	case FormatTable:
		return &tableReporter{w: w, p: printer, resolution: cfg.Resolution}, nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
}

// formatDuration renders d as a whole number of resolution units when the
// resolution is a standard unit, and with Duration.String otherwise.
func formatDuration(d, resolution time.Duration) string {
	units := map[time.Duration]string{
		time.Nanosecond:  "ns",
		time.Microsecond: "µs",
		time.Millisecond: "ms",
		time.Second:      "s",
	}
	if unit, ok := units[resolution]; ok {
		return fmt.Sprintf("%d %s", d/resolution, unit)
	}
	return d.String()
}

// textReporter prints the plain console layout:
//
//	Array's size: 1,000
//	Bubble Sort (seq): 3 ms
type textReporter struct {
	w          io.Writer
	p          *message.Printer
	resolution time.Duration
	err        error
}

func (r *textReporter) printf(format string, args ...any) {
	if r.err == nil {
		_, r.err = r.p.Fprintf(r.w, format, args...)
	}
}

func (r *textReporter) Size(n int) {
	r.printf("\nArray's size: %d\n", n)
}

func (r *textReporter) Sample(s Sample) {
	r.printf("%s: %s\n", s.Variant, formatDuration(s.Elapsed, r.resolution))
}

func (r *textReporter) Flush() error {
	return r.err
}

// goBenchReporter prints samples as testing.B result lines so the output can
// be fed to benchstat or read back with ParseGoBench.
type goBenchReporter struct {
	w       io.Writer
	threads int
	header  bool
	err     error
}

func (r *goBenchReporter) printf(format string, args ...any) {
	if r.err == nil {
		_, r.err = fmt.Fprintf(r.w, format, args...)
	}
}

func (r *goBenchReporter) Size(int) {
	if r.header {
		return
	}
	r.header = true
	r.printf("goos: %s\ngoarch: %s\npkg: github.com/ajroetker/go-sortbench\nthreads: %d\n",
		runtime.GOOS, runtime.GOARCH, r.threads)
}

func (r *goBenchReporter) Sample(s Sample) {
	r.printf("%s\t%8d\t%12d ns/op\n", goBenchName(s, r.threads), 1, s.Elapsed.Nanoseconds())
}

func (r *goBenchReporter) Flush() error {
	return r.err
}

// tableReporter buffers the run and renders one row per size and algorithm.
type tableReporter struct {
	w          io.Writer
	p          *message.Printer
	resolution time.Duration
	samples    []Sample
}

func (r *tableReporter) Size(int) {}

func (r *tableReporter) Sample(s Sample) {
	r.samples = append(r.samples, s)
}

func (r *tableReporter) Flush() error {
	rows := make([][]string, 0, len(r.samples)/2)
	for _, sp := range Speedups(r.samples) {
		ratio := "n/a"
		if v, ok := sp.Ratio(); ok {
			ratio = fmt.Sprintf("%.2fx", v)
		}
		rows = append(rows, []string{
			r.p.Sprintf("%d", sp.Size),
			sp.Algorithm.Title(),
			formatDuration(sp.Seq, r.resolution),
			formatDuration(sp.Par, r.resolution),
			ratio,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SIZE", "ALGORITHM", "SEQ", "PAR", "SPEEDUP").
		Rows(rows...)
	_, err := fmt.Fprintln(r.w, t.Render())
	return err
}
