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

package xchg

import (
	"bytes"
	"fmt"
	"testing"
)

// pattern returns n bytes starting at seed and counting up.
func pattern(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return b
}

func checkExchange(t *testing.T, name string, fn Func, size int) {
	t.Helper()
	a := pattern(size, 1)
	b := pattern(size, 101)
	wantA := bytes.Clone(b)
	wantB := bytes.Clone(a)

	fn(a, b)

	if !bytes.Equal(a, wantA) || !bytes.Equal(b, wantB) {
		t.Errorf("%s(size=%d): got a=%v b=%v, want a=%v b=%v", name, size, a, b, wantA, wantB)
	}
}

func TestBytes(t *testing.T) {
	sizes := []int{0, 1, 3, 4, 7, 8, 63, 64, 65, 100, 128, 200}
	for _, size := range sizes {
		checkExchange(t, "Bytes", Bytes, size)
	}
}

// TestBytesWithinBuffer exchanges two regions of one buffer and checks the
// bytes around them are untouched.
func TestBytesWithinBuffer(t *testing.T) {
	buf := pattern(30, 0)
	want := bytes.Clone(buf)
	copy(want[2:9], buf[20:27])
	copy(want[20:27], buf[2:9])

	Bytes(buf[2:9], buf[20:27])

	if !bytes.Equal(buf, want) {
		t.Errorf("Bytes within buffer = %v, want %v", buf, want)
	}
}

func TestFixedWidths(t *testing.T) {
	for _, fn := range []struct {
		size int
		fn   Func
	}{
		{2, Swap2},
		{4, Swap4},
		{8, Swap8},
		{16, Swap16},
	} {
		checkExchange(t, fmt.Sprintf("Swap%d", fn.size), fn.fn, fn.size)
	}
}

// TestFixedUnaligned exercises the word exchanges at odd offsets.
func TestFixedUnaligned(t *testing.T) {
	if CurrentLevel() != DispatchWord {
		t.Skipf("fixed-width exchange not enabled on %s", CurrentName())
	}
	for _, size := range Widths() {
		buf := pattern(3*size+3, 0)
		want := bytes.Clone(buf)
		copy(want[1:1+size], buf[1+size+1:1+2*size+1])
		copy(want[1+size+1:1+2*size+1], buf[1:1+size])

		For(size)(buf[1:1+size], buf[1+size+1:1+2*size+1])

		if !bytes.Equal(buf, want) {
			t.Errorf("For(%d) at odd offset = %v, want %v", size, buf, want)
		}
	}
}

func TestSupported(t *testing.T) {
	for _, size := range []int{2, 4, 8, 16} {
		if !Supported(size) {
			t.Errorf("Supported(%d) = false, want true", size)
		}
	}
	for _, size := range []int{0, 1, 3, 5, 12, 32} {
		if Supported(size) {
			t.Errorf("Supported(%d) = true, want false", size)
		}
	}
}

func TestForFallsBackToBytes(t *testing.T) {
	for _, size := range []int{1, 3, 12, 100} {
		checkExchange(t, fmt.Sprintf("For(%d)", size), For(size), size)
	}
	for _, size := range Widths() {
		checkExchange(t, fmt.Sprintf("For(%d)", size), For(size), size)
	}
}

func TestWidthsIsACopy(t *testing.T) {
	w := Widths()
	w[0] = 99
	if Widths()[0] == 99 {
		t.Errorf("Widths() exposes internal slice")
	}
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchPortable, "portable"},
		{DispatchWord, "word"},
		{DispatchLevel(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestNoFastEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("QSORT_NO_FAST", tt.val)
		if got := NoFastEnv(); got != tt.want {
			t.Errorf("NoFastEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func BenchmarkExchange4(b *testing.B) {
	buf := pattern(8, 0)
	for _, bc := range []struct {
		name string
		fn   Func
	}{
		{"Bytes", Bytes},
		{"For", For(4)},
	} {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				bc.fn(buf[0:4], buf[4:8])
			}
		})
	}
}
