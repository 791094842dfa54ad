package fpenv

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// MXCSR exception mask bits: invalid, denormal, divide by zero, overflow,
// underflow, precision.
const mxcsrMasks = 0x1f80

func getcsr() uint32
func setcsr(csr uint32)

func trapping() bool {
	if !cpu.X86.HasSSE2 {
		return false
	}
	return getcsr()&mxcsrMasks != mxcsrMasks
}

func relax() func() {
	if !cpu.X86.HasSSE2 {
		return noop
	}
	// The register is per thread; read it only once pinned.
	runtime.LockOSThread()
	csr := getcsr()
	if csr&mxcsrMasks == mxcsrMasks {
		return runtime.UnlockOSThread
	}
	setcsr(csr | mxcsrMasks)
	return func() {
		setcsr(csr)
		runtime.UnlockOSThread()
	}
}
