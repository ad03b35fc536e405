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
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Count: 5000, Seed: 42, Compare: "safe", Signed: true}

	report, err := Run(cfg, zaptest.NewLogger(t), &out)
	require.NoError(t, err)

	assert.Equal(t, 5000, report.Count)
	assert.True(t, report.Identical, "Sort and SortFast should agree")
	assert.True(t, report.Sorted)
	assert.Nil(t, report.Batch)
	assert.NotEmpty(t, report.Dispatch)
	assert.Contains(t, out.String(), "Original quicksort time:")
	assert.Contains(t, out.String(), "Optimized quicksort time:")
}

func TestRunSubComparatorOnNonNegativeInput(t *testing.T) {
	cfg := Config{Count: 2000, Seed: 7, Compare: "sub"}

	report, err := Run(cfg, zap.NewNop(), &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, report.Identical)
	assert.True(t, report.Sorted, "sub is safe when all values are non-negative")
}

func TestRunPrint(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{Count: 8, Seed: 1, Compare: "safe", Print: true}

	_, err := Run(cfg, zap.NewNop(), &out)
	require.NoError(t, err)

	lines := strings.Split(out.String(), "\n")
	require.True(t, strings.HasPrefix(lines[0], "input: ["), "got %q", lines[0])
	var sorted string
	for _, l := range lines {
		if strings.HasPrefix(l, "sorted: ") {
			sorted = l
		}
	}
	assert.NotEmpty(t, sorted)
}

func TestRunPrintTooLarge(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(Config{Count: maxPrint + 1, Compare: "safe", Print: true}, zap.NewNop(), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "not printed")
}

func TestRunBatch(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := Config{Count: 3000, Seed: 3, Compare: "safe", Jobs: 6, Workers: 3}

	report, err := Run(cfg, zap.New(core), &bytes.Buffer{})
	require.NoError(t, err)
	require.NotNil(t, report.Batch)

	entries := logs.FilterMessage("sorting batch").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 6, fields["jobs"])
	assert.EqualValues(t, 3, fields["workers"])
	assert.Equal(t, "18,000", fields["elements"])
	assert.Zero(t, logs.FilterMessage("sort variants disagree").Len())
}

func TestRunRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"negative count", Config{Count: -1, Compare: "safe"}, "count must not be negative"},
		{"negative jobs", Config{Count: 1, Jobs: -2, Compare: "safe"}, "jobs must not be negative"},
		{"unknown comparator", Config{Count: 1, Compare: "fuzzy"}, "unknown comparator"},
		{"sub on signed", Config{Count: 1, Compare: "sub", Signed: true}, "overflows"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.cfg, zap.NewNop(), &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := generate(100, 99, false)
	b := generate(100, 99, false)
	assert.Equal(t, a, b)
	assert.Len(t, generate(0, 1, true), 0)

	for _, v := range a {
		require.GreaterOrEqual(t, v, int32(0))
	}
	assert.True(t, slices.ContainsFunc(generate(1000, 5, true), func(v int32) bool { return v < 0 }))
}

func TestRootCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--count", "50", "--seed", "11", "--log-level", "error"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Optimized quicksort time:")
}

func TestRootCmdErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--log-level", "loud"},
		{"--compare", "sub", "--signed", "--log-level", "error"},
		{"extra-arg"},
	} {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), "args %v", args)
	}
}

func TestMeasure(t *testing.T) {
	called := false
	timing := measure(func() { called = true })
	assert.True(t, called)
	assert.GreaterOrEqual(t, int64(timing.Wall), int64(0))
	assert.GreaterOrEqual(t, int64(timing.CPU), int64(0))
}
