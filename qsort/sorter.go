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

import "github.com/ajroetker/go-qsort/xchg"

// scratchSize is the largest element the insertion pass moves through a
// stack buffer; bigger elements are rotated one byte column at a time.
const scratchSize = 64

// sorter holds the state shared by Sort and SortFast. Only the exchange
// differs between the two.
type sorter struct {
	buf  []byte
	size int
	cmp  Compare
	ctx  any
	swap xchg.Func

	// depth is the peak partition stack usage of the last sort, sentinel
	// included.
	depth int
}

// at returns element i as a size-byte slice of buf.
func (s *sorter) at(i int) []byte {
	off := i * s.size
	return s.buf[off : off+s.size : off+s.size]
}

func (s *sorter) less(i, j int) bool {
	return s.cmp(s.at(i), s.at(j), s.ctx) < 0
}

func (s *sorter) exchange(i, j int) {
	s.swap(s.at(i), s.at(j))
}

// sort sorts the first count elements of buf.
func (s *sorter) sort(count int) {
	if count <= 1 {
		return
	}
	if count > MaxThresh {
		s.partition(count)
	}
	s.insertion(count)
}

// partition splits [0, count) until every pending range holds at most
// MaxThresh+1 elements.
func (s *sorter) partition(count int) {
	var st stack
	lo, hi := 0, count-1

	// Sentinel; popping it ends the loop.
	st.push(0, 0)

	for !st.empty() {
		// Order lo, mid, hi so the median ends up at mid.
		mid := lo + (hi-lo)>>1
		if s.less(mid, lo) {
			s.exchange(mid, lo)
		}
		if s.less(hi, mid) {
			s.exchange(mid, hi)
			if s.less(mid, lo) {
				s.exchange(mid, lo)
			}
		}

		left, right := lo+1, hi-1
		for {
			for s.less(left, mid) {
				left++
			}
			for s.less(mid, right) {
				right--
			}

			if left < right {
				s.exchange(left, right)
				// mid is a position, follow the pivot if it moved.
				if mid == left {
					mid = right
				} else if mid == right {
					mid = left
				}
				left++
				right--
			} else if left == right {
				left++
				right--
				break
			}
			if left > right {
				break
			}
		}

		// Ranges of MaxThresh+1 elements or fewer are left for the
		// insertion pass. Of two large ranges, push the larger one.
		switch {
		case right-lo <= MaxThresh:
			if hi-left <= MaxThresh {
				lo, hi = st.pop()
			} else {
				lo = left
			}
		case hi-left <= MaxThresh:
			hi = right
		case right-lo > hi-left:
			st.push(lo, right)
			lo = left
		default:
			st.push(left, hi)
			hi = right
		}
	}
	s.depth = st.peak
}

// insertion finishes the sort. After partition no element is more than
// MaxThresh positions away from its place, so this pass is near linear.
func (s *sorter) insertion(count int) {
	end := count - 1

	// The smallest element is within the first MaxThresh+1 slots. Moving it
	// to the front lets the scan below run without a lower bound check.
	least := 0
	for run := 1; run <= min(end, MaxThresh); run++ {
		if s.less(run, least) {
			least = run
		}
	}
	if least != 0 {
		s.exchange(least, 0)
	}

	for run := 2; run <= end; run++ {
		pos := run - 1
		for s.less(run, pos) {
			pos--
		}
		pos++
		if pos != run {
			s.rotate(pos, run)
		}
	}
}

// rotate moves element run to slot pos and shifts [pos, run) up by one.
func (s *sorter) rotate(pos, run int) {
	size := s.size
	lo, hi := pos*size, run*size

	if size <= scratchSize {
		var tmp [scratchSize]byte
		t := tmp[:size]
		copy(t, s.buf[hi:hi+size])
		copy(s.buf[lo+size:hi+size], s.buf[lo:hi])
		copy(s.buf[lo:lo+size], t)
		return
	}

	for trav := hi + size - 1; trav >= hi; trav-- {
		c := s.buf[trav]
		h := trav
		for l := trav - size; l >= lo; l -= size {
			s.buf[h] = s.buf[l]
			h = l
		}
		s.buf[h] = c
	}
}

// verify panics if the first count elements are out of order. Only called
// in qsortdebug builds.
func (s *sorter) verify(count int) {
	for i := 1; i < count; i++ {
		if s.less(i, i-1) {
			panic(contractError("comparator is not a total order: element %d sorts before element %d after sorting", i, i-1))
		}
	}
}
