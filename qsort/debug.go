//go:build qsortdebug

package qsort

// debugChecks enables the post-sort order check.
const debugChecks = true
