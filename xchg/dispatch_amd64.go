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

//go:build amd64

package xchg

import "golang.org/x/sys/cpu"

func init() {
	// Check if the fast path is disabled via environment variable
	if NoFastEnv() {
		setPortableMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// SSE2 is part of the amd64 baseline, so this only fails on emulators
	// that report an empty CPUID. Unaligned 2/4/8-byte MOVs are legal on
	// every x86-64 core; the 16-byte exchange is done as two 8-byte moves.
	if cpu.X86.HasSSE2 {
		currentLevel = DispatchWord
		currentName = "amd64/sse2"
		return
	}
	setPortableMode()
}
