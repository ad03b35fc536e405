// Package qsort provides a type-erased, in-place quicksort for contiguous
// buffers of fixed-size elements.
//
// # Algorithm
//
// The sort is a non-recursive hybrid of quicksort and insertion sort:
//   - Median-of-three pivot selection on the first, middle and last element
//   - Hoare partitioning that tracks the pivot's position through exchanges
//   - An explicit partition stack of bits.UintSize entries; the larger side
//     is pushed and the smaller side is processed next, bounding the depth
//     to log2(n)
//   - Partitions of MaxThresh+1 elements or fewer are left alone and finished
//     by a single insertion-sort pass over the whole buffer
//
// Equal elements may be reordered. The sort does not allocate.
//
// # Variants
//
// Sort exchanges elements with xchg.Bytes and works for any element size.
// SortFast uses the fixed-width exchange selected by xchg.For and accepts
// only the sizes listed by xchg.Widths. Given equivalent comparators both
// produce byte-identical output.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-qsort/qsort"
//
//	func SortIDs(ids []int32) {
//	    qsort.SortFast(qsort.Int32Bytes(ids), len(ids), 4, qsort.Int32, nil)
//	}
//
//	func SortRecords(buf []byte, n int) {
//	    qsort.Sort(buf, n, recordSize, compareRecords, nil)
//	}
//
// # Comparators
//
// Int32Sub is the classic "return a - b" comparator. It is only correct when
// no pair of values differs by more than math.MaxInt32; prefer Int32.
//
// # Debug Builds
//
// Building with -tags qsortdebug verifies the output order after every sort
// and panics if the comparator turned out not to be a total order.
package qsort
