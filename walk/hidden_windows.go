//go:build windows

package walk

import "golang.org/x/sys/windows"

// isHidden reports whether an entry is hidden on Windows: either the
// FILE_ATTRIBUTE_HIDDEN attribute is set or, as on Unix, the name is
// dot-prefixed.
func isHidden(path string, name string) bool {
	if len(name) > 0 && name[0] == '.' {
		return true
	}

	ptr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}

	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return false
	}

	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
