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

// Package xchg provides element exchange primitives for type-erased sorting
// with runtime CPU dispatch.
//
// Bytes is the portable block exchange and accepts any element size. The
// fixed-width exchanges (Swap2, Swap4, Swap8, Swap16) move whole words
// through unaligned loads and stores and are only handed out by For when the
// running CPU permits that.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-qsort/xchg"
//
//	swap := xchg.For(4)
//	swap(buf[0:4], buf[8:12])
package xchg

//go:generate go run ../cmd/xchggen -output zxchg_widths.go -widths 2,4,8,16

// Func exchanges the contents of a and b. Both slices have the same length
// and must not overlap.
type Func func(a, b []byte)

// blockSize is the chunk Bytes moves through its stack buffer at a time.
const blockSize = 64

// Bytes exchanges a and b in blockSize chunks. It handles any length,
// including sizes that are not a power of two, and never allocates.
// len(b) must be at least len(a).
func Bytes(a, b []byte) {
	var tmp [blockSize]byte
	n := len(a)
	b = b[:n]
	for off := 0; off < n; off += blockSize {
		end := min(off+blockSize, n)
		t := tmp[:end-off]
		copy(t, a[off:end])
		copy(a[off:end], b[off:end])
		copy(b[off:end], t)
	}
}

// Supported reports whether a fixed-width exchange exists for size.
func Supported(size int) bool {
	return fixed(size) != nil
}

// For returns the fastest exchange for elements of size bytes.
// It returns a fixed-width exchange when one exists for size and the
// dispatch level is DispatchWord, and Bytes otherwise.
func For(size int) Func {
	if currentLevel == DispatchWord {
		if fn := fixed(size); fn != nil {
			return fn
		}
	}
	return Bytes
}

// Widths returns the element sizes that have a fixed-width exchange.
func Widths() []int {
	return append([]int(nil), fixedWidths...)
}
