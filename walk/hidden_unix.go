//go:build !windows

package walk

// isHidden reports whether an entry is hidden on Unix-like platforms, where
// hidden means dot-prefixed.
func isHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}
