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

package qsort

import (
	"fmt"

	"github.com/ajroetker/go-qsort/xchg"
)

// MaxThresh is the partition size, in elements past the first, at or below
// which quicksort stops and leaves the range to the final insertion pass.
const MaxThresh = 4

// Compare is a three-way comparator over two size-byte elements. It returns
// a negative number when a sorts before b, a positive number when b sorts
// before a and zero otherwise. ctx is the value given to Sort, unchanged.
//
// A Compare must be a total order and must not modify the buffer being
// sorted.
type Compare func(a, b []byte, ctx any) int

// Sort sorts the first count elements of buf, each size bytes long, in
// ascending order according to cmp. Elements are exchanged with the portable
// xchg.Bytes block exchange, so any size is accepted.
//
// Sort panics if size is not positive, count is negative, buf is shorter
// than count*size bytes or cmp is nil.
func Sort(buf []byte, count, size int, cmp Compare, ctx any) {
	checkArgs(buf, count, size, cmp)
	s := sorter{buf: buf, size: size, cmp: cmp, ctx: ctx, swap: xchg.Bytes}
	s.sort(count)
	if debugChecks {
		s.verify(count)
	}
}

// SortFast is Sort with a fixed-width exchange. size must be one of
// xchg.Widths (4 for int32 data is the common case); the exchange itself
// falls back to xchg.Bytes on CPUs without unaligned word access.
//
// Given an equivalent comparator, SortFast leaves buf byte-identical to what
// Sort would. When used with Int32Sub, the caller must guarantee that no two
// values differ by more than the int32 range.
//
// SortFast panics under the same conditions as Sort, and when size has no
// fixed-width exchange.
func SortFast(buf []byte, count, size int, cmp Compare, ctx any) {
	checkArgs(buf, count, size, cmp)
	if !xchg.Supported(size) {
		panic(contractError("no fixed-width exchange for %d-byte elements (have %v)", size, xchg.Widths()))
	}
	s := sorter{buf: buf, size: size, cmp: cmp, ctx: ctx, swap: xchg.For(size)}
	s.sort(count)
	if debugChecks {
		s.verify(count)
	}
}

// IsSorted reports whether the first count elements of buf are in
// ascending order according to cmp.
func IsSorted(buf []byte, count, size int, cmp Compare, ctx any) bool {
	checkArgs(buf, count, size, cmp)
	s := sorter{buf: buf, size: size, cmp: cmp, ctx: ctx}
	for i := 1; i < count; i++ {
		if s.less(i, i-1) {
			return false
		}
	}
	return true
}

func checkArgs(buf []byte, count, size int, cmp Compare) {
	switch {
	case size <= 0:
		panic(contractError("element size %d must be positive", size))
	case count < 0:
		panic(contractError("negative element count %d", count))
	case count > len(buf)/size:
		panic(contractError("buffer of %d bytes is too short for %d elements of %d bytes", len(buf), count, size))
	case cmp == nil:
		panic(contractError("nil comparator"))
	}
}

func contractError(format string, args ...any) string {
	return "qsort: " + fmt.Sprintf(format, args...)
}
