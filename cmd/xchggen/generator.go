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
	"slices"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"
)

// wordTypes maps an element width to the Go type moved in one assignment.
// Widths above 8 bytes are moved as arrays of uint64, which the compiler
// lowers to consecutive 8-byte moves.
var wordTypes = map[int]string{
	1:  "uint8",
	2:  "uint16",
	4:  "uint32",
	8:  "uint64",
	16: "[2]uint64",
	32: "[4]uint64",
}

func availableWidths() []string {
	var ws []int
	for w := range wordTypes {
		ws = append(ws, w)
	}
	slices.Sort(ws)
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = strconv.Itoa(w)
	}
	return out
}

// Generator renders the fixed-width exchange file.
type Generator struct {
	Package string
	Widths  []int
}

type widthData struct {
	Width int
	Last  int
	Word  string
}

type fileData struct {
	Package string
	Widths  []widthData
}

// Generate returns the formatted source. filename is only used by the
// import fixer to resolve the package directory.
func (g *Generator) Generate(filename string) ([]byte, error) {
	data := fileData{Package: g.Package}
	seen := make(map[int]bool)
	for _, w := range g.Widths {
		word, ok := wordTypes[w]
		if !ok {
			return nil, fmt.Errorf("unsupported width %d (want one of %v)", w, availableWidths())
		}
		if seen[w] {
			return nil, fmt.Errorf("duplicate width %d", w)
		}
		seen[w] = true
		data.Widths = append(data.Widths, widthData{Width: w, Last: w - 1, Word: word})
	}
	slices.SortFunc(data.Widths, func(a, b widthData) int { return a.Width - b.Width })

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

var fileTemplate = template.Must(template.New("xchg").Parse(`// Code generated by xchggen. DO NOT EDIT.

package {{.Package}}

// fixedWidths lists the element sizes that have a fixed-width exchange.
var fixedWidths = []int{ {{- range $i, $w := .Widths}}{{if $i}}, {{end}}{{$w.Width}}{{end -}} }

// fixed returns the fixed-width exchange for size, or nil.
func fixed(size int) Func {
	switch size {
{{- range .Widths}}
	case {{.Width}}:
		return Swap{{.Width}}
{{- end}}
	}
	return nil
}
{{range .Widths}}
// Swap{{.Width}} exchanges two {{.Width}}-byte elements as {{.Word}} words.
// The CPU must permit unaligned access; use For to get a safe exchange.
func Swap{{.Width}}(a, b []byte) {
	_, _ = a[{{.Last}}], b[{{.Last}}]
	pa := (*{{.Word}})(unsafe.Pointer(unsafe.SliceData(a)))
	pb := (*{{.Word}})(unsafe.Pointer(unsafe.SliceData(b)))
	*pa, *pb = *pb, *pa
}
{{end}}`))
