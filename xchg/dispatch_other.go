//go:build !amd64 && !arm64

package xchg

func init() {
	// Unaligned word access is not guaranteed on the remaining
	// architectures (mips, riscv64, wasm, ...), so always exchange bytes.
	setPortableMode()
}
