//go:build !boosterdebug

package list

// assertIndex is a no-op unless built with the boosterdebug tag.
func assertIndex(int, int) {}
