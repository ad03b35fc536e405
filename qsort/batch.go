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

import "github.com/ajroetker/go-qsort/workerpool"

// Job describes one independent sort for SortAll.
type Job struct {
	Buf   []byte
	Count int
	Size  int
	Cmp   Compare
	Ctx   any

	// Fast selects SortFast instead of Sort.
	Fast bool
}

func (j *Job) run() {
	if j.Fast {
		SortFast(j.Buf, j.Count, j.Size, j.Cmp, j.Ctx)
		return
	}
	Sort(j.Buf, j.Count, j.Size, j.Cmp, j.Ctx)
}

// SortAll runs every job, in parallel on pool when it is non-nil. Each
// individual sort stays single-threaded; only distinct jobs run concurrently,
// so jobs must not share buffers.
//
// Falls back to sequential execution when pool is nil or there is at most
// one job.
func SortAll(pool *workerpool.Pool, jobs []Job) {
	if pool == nil || len(jobs) <= 1 {
		for i := range jobs {
			jobs[i].run()
		}
		return
	}

	pool.ForEach(len(jobs), func(i int) {
		jobs[i].run()
	})
}
