// Package fpenv scopes changes to the floating point environment.
//
// The Go runtime runs with every floating point exception masked, so Relax is
// usually a thread pin and a register read. It matters when foreign code
// (cgo, a debugger, a test harness) has unmasked exceptions on the current
// thread.
package fpenv

func noop() {}

// Relax masks floating point exceptions on the current thread and returns a
// function that restores the previous state. Until restore runs, the calling
// goroutine is locked to its OS thread.
//
//	defer fpenv.Relax()()
func Relax() (restore func()) {
	return relax()
}

// Trapping reports whether any floating point exception is unmasked on the
// current thread.
func Trapping() bool {
	return trapping()
}
