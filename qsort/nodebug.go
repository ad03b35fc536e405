//go:build !qsortdebug

package qsort

const debugChecks = false
