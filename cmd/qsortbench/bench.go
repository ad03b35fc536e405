// Copyright 2025 go-highway Authors
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

package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ajroetker/go-qsort/qsort"
	"github.com/ajroetker/go-qsort/workerpool"
	"github.com/ajroetker/go-qsort/xchg"
)

// maxPrint is the largest array --print will write out.
const maxPrint = 64

// Config holds the benchmark parameters.
type Config struct {
	Count   int
	Seed    uint64
	Compare string
	Signed  bool
	Jobs    int
	Workers int
	Print   bool
}

// Timing is the cost of one sort variant.
type Timing struct {
	Wall time.Duration
	// CPU is process user+system time, zero where unavailable.
	CPU time.Duration
}

// Report is the outcome of Run.
type Report struct {
	Count     int
	Seed      uint64
	Dispatch  string
	Generic   Timing
	Fast      Timing
	Identical bool
	Sorted    bool

	// Batch is set when Config.Jobs > 0.
	Batch *Timing
}

func comparator(name string) (qsort.Compare, error) {
	switch name {
	case "safe":
		return qsort.Int32, nil
	case "sub":
		return qsort.Int32Sub, nil
	default:
		return nil, errors.Errorf("unknown comparator %q (want safe or sub)", name)
	}
}

func (c Config) validate() error {
	if c.Count < 0 {
		return errors.Errorf("count must not be negative, got %d", c.Count)
	}
	if c.Jobs < 0 {
		return errors.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if c.Compare == "sub" && c.Signed {
		return errors.New("the sub comparator overflows on signed input; use --compare=safe")
	}
	return nil
}

// generate returns count pseudo-random int32 values. Without signed the
// values are non-negative, like C's rand().
func generate(count int, seed uint64, signed bool) []int32 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return lo.Times(count, func(int) int32 {
		if signed {
			return int32(rng.Uint32())
		}
		return rng.Int32()
	})
}

// measure runs fn and returns its wall and CPU time.
func measure(fn func()) Timing {
	cpuStart, cpuOK := cpuTime()
	start := time.Now()
	fn()
	t := Timing{Wall: time.Since(start)}
	if cpuEnd, ok := cpuTime(); ok && cpuOK {
		t.CPU = cpuEnd - cpuStart
	}
	return t
}

// Run generates the input, sorts one copy with qsort.Sort and another with
// qsort.SortFast, and checks both results agree.
func Run(cfg Config, log *zap.Logger, out io.Writer) (*Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cmp, err := comparator(cfg.Compare)
	if err != nil {
		return nil, err
	}

	log.Info("generating input",
		zap.String("count", humanize.Comma(int64(cfg.Count))),
		zap.Uint64("seed", cfg.Seed),
		zap.Bool("signed", cfg.Signed))

	generic := generate(cfg.Count, cfg.Seed, cfg.Signed)
	fast := slices.Clone(generic)
	if cfg.Print {
		printArray(out, "input", generic)
	}

	report := &Report{
		Count:    cfg.Count,
		Seed:     cfg.Seed,
		Dispatch: fmt.Sprintf("%s (%s)", xchg.CurrentLevel(), xchg.CurrentName()),
	}
	log.Debug("exchange dispatch", zap.String("level", report.Dispatch))

	report.Generic = measure(func() {
		qsort.Sort(qsort.Int32Bytes(generic), len(generic), 4, cmp, nil)
	})
	fmt.Fprintf(out, "Original quicksort time: %f seconds\n", report.Generic.Wall.Seconds())

	report.Fast = measure(func() {
		qsort.SortFast(qsort.Int32Bytes(fast), len(fast), 4, cmp, nil)
	})
	fmt.Fprintf(out, "Optimized quicksort time: %f seconds\n", report.Fast.Wall.Seconds())

	if cfg.Print {
		printArray(out, "sorted", fast)
	}

	report.Identical = bytes.Equal(qsort.Int32Bytes(generic), qsort.Int32Bytes(fast))
	report.Sorted = slices.IsSorted(fast)
	if !report.Identical {
		log.Error("sort variants disagree")
	}
	if !report.Sorted {
		log.Warn("output is not in ascending order", zap.String("compare", cfg.Compare))
	}

	if cfg.Jobs > 0 {
		batch, err := runBatch(cfg, cmp, log)
		if err != nil {
			return nil, err
		}
		report.Batch = batch
		fmt.Fprintf(out, "Batch quicksort time (%d jobs): %f seconds\n", cfg.Jobs, batch.Wall.Seconds())
	}

	log.Info("done",
		zap.Duration("generic_wall", report.Generic.Wall),
		zap.Duration("generic_cpu", report.Generic.CPU),
		zap.Duration("fast_wall", report.Fast.Wall),
		zap.Duration("fast_cpu", report.Fast.CPU),
		zap.Bool("identical", report.Identical))
	return report, nil
}

// runBatch sorts cfg.Jobs independent copies of the input on a worker pool.
func runBatch(cfg Config, cmp qsort.Compare, log *zap.Logger) (*Timing, error) {
	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	shards := lo.Times(cfg.Jobs, func(i int) []int32 {
		return generate(cfg.Count, cfg.Seed+uint64(i)+1, cfg.Signed)
	})
	jobs := lo.Map(shards, func(s []int32, _ int) qsort.Job {
		return qsort.Job{Buf: qsort.Int32Bytes(s), Count: len(s), Size: 4, Cmp: cmp, Fast: true}
	})
	log.Info("sorting batch",
		zap.Int("jobs", len(jobs)),
		zap.Int("workers", pool.NumWorkers()),
		zap.String("elements", humanize.Comma(int64(lo.SumBy(jobs, func(j qsort.Job) int { return j.Count })))))

	t := measure(func() {
		qsort.SortAll(pool, jobs)
	})

	for i, s := range shards {
		if !slices.IsSorted(s) {
			return nil, errors.Errorf("batch job %d produced unsorted output", i)
		}
	}
	return &t, nil
}

func printArray(out io.Writer, label string, data []int32) {
	if len(data) > maxPrint {
		fmt.Fprintf(out, "%s: %d elements (not printed, max %d)\n", label, len(data), maxPrint)
		return
	}
	fmt.Fprintf(out, "%s: %v\n", label, data)
}
