//go:build !debug

package topocheck

// logDebugf is a no-op unless built with -tags debug.
func logDebugf(format string, v ...interface{}) {}
