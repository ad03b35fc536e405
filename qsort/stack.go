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

import "math/bits"

// stackSize bounds the number of pending partitions. Because the larger side
// is always the one pushed, each entry covers at most half of the previous
// one, so a buffer indexable by a uint never needs more.
const stackSize = bits.UintSize

// span is a pending partition [lo, hi], inclusive element indices.
type span struct {
	lo, hi int
}

// stack is a fixed-capacity LIFO of pending partitions, held by value in
// the sorting call's frame.
type stack struct {
	entries [stackSize]span
	top     int
	peak    int
}

func (s *stack) push(lo, hi int) {
	s.entries[s.top] = span{lo, hi}
	s.top++
	if s.top > s.peak {
		s.peak = s.top
	}
}

func (s *stack) pop() (lo, hi int) {
	s.top--
	e := s.entries[s.top]
	return e.lo, e.hi
}

func (s *stack) empty() bool {
	return s.top == 0
}
