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

// Command xchggen generates the fixed-width exchange primitives of package xchg.
//
// Usage:
//
//	xchggen -output zxchg_widths.go -widths 2,4,8,16
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/xchggen -output zxchg_widths.go -widths 2,4,8,16
//
// For every requested width the generator emits a SwapN function that moves
// the element as one (or, above 8 bytes, several) machine words, plus the
// fixed() lookup used by xchg.For.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	outputFile = flag.String("output", "zxchg_widths.go", "Output Go source file")
	widthList  = flag.String("widths", "2,4,8,16", "Comma-separated element widths in bytes ("+strings.Join(availableWidths(), ",")+")")
	packageOut = flag.String("pkg", "xchg", "Output package name")
)

func main() {
	flag.Parse()

	widths, err := parseWidths(*widthList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Package: *packageOut,
		Widths:  widths,
	}

	src, err := gen.Generate(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated exchanges for widths: %s\n", *widthList)
}

func parseWidths(s string) ([]int, error) {
	var result []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		w, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid width %q: %w", p, err)
		}
		result = append(result, w)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no widths specified")
	}
	return result, nil
}
