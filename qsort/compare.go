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
	"bytes"
	"encoding/binary"
	"unsafe"
)

// Int32 compares native-endian int32 elements. It never overflows.
func Int32(a, b []byte, _ any) int {
	x := int32(binary.NativeEndian.Uint32(a))
	y := int32(binary.NativeEndian.Uint32(b))
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Int32Sub compares native-endian int32 elements by subtraction.
//
// The difference wraps around when it does not fit in an int32, and the sign
// of the result is then wrong: Int32Sub reports math.MaxInt32 < -1. Only use
// it when every pair of values differs by at most math.MaxInt32, such as
// non-negative values. Int32 has no such restriction.
func Int32Sub(a, b []byte, _ any) int {
	x := int32(binary.NativeEndian.Uint32(a))
	y := int32(binary.NativeEndian.Uint32(b))
	return int(x - y)
}

// Uint32 compares native-endian uint32 elements.
func Uint32(a, b []byte, _ any) int {
	x := binary.NativeEndian.Uint32(a)
	y := binary.NativeEndian.Uint32(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Int64 compares native-endian int64 elements.
func Int64(a, b []byte, _ any) int {
	x := int64(binary.NativeEndian.Uint64(a))
	y := int64(binary.NativeEndian.Uint64(b))
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Lexical compares elements as unsigned byte strings.
func Lexical(a, b []byte, _ any) int {
	return bytes.Compare(a, b)
}

// Reverse returns a comparator with the opposite order of c.
func Reverse(c Compare) Compare {
	return func(a, b []byte, ctx any) int {
		return c(b, a, ctx)
	}
}

// Int32Bytes returns the memory of s as a byte slice, without copying.
// The result is valid to pass to Sort or SortFast with size 4 and Int32.
func Int32Bytes(s []int32) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*4)
}

// Int32s sorts s in ascending order using SortFast.
func Int32s(s []int32) {
	SortFast(Int32Bytes(s), len(s), 4, Int32, nil)
}
