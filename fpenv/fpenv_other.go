//go:build !amd64

package fpenv

func trapping() bool { return false }

func relax() func() { return noop }
