package walk

import (
	"io/fs"
	"os"
)

// Type classifies a filesystem entry.
type Type uint8

const (
	// TypeUnknown is reported for sockets, devices and other special files.
	TypeUnknown Type = iota
	// TypeFile is a regular file.
	TypeFile
	// TypeDir is a directory.
	TypeDir
	// TypeSymlink is a symbolic link.
	TypeSymlink
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDir:
		return "dir"
	case TypeSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Entry is one filesystem node visited during a walk. An Entry is handed to
// exactly one visitor and must not be retained past the Visit call; only its
// Path may be copied out.
type Entry struct {
	// Path is the entry's path as produced by joining the root with the
	// walked components.
	Path string

	// Depth is the number of path segments between the entry and its root.
	// Roots themselves have depth 0.
	Depth int

	// Type is the entry's file type. When the walk follows symlinks, links
	// are reported with the type of their target.
	Type Type

	follow  bool
	statted bool
	info    fs.FileInfo
	infoErr error
}

// Metadata returns the entry's file info, fetching it lazily on first use.
// When the walk follows symlinks the target is stat'ed, otherwise the link
// itself is.
func (e *Entry) Metadata() (fs.FileInfo, error) {
	if !e.statted {
		e.statted = true
		if e.follow {
			e.info, e.infoErr = os.Stat(e.Path)
		} else {
			e.info, e.infoErr = os.Lstat(e.Path)
		}
	}

	return e.info, e.infoErr
}

func typeOfMode(mode fs.FileMode) Type {
	switch {
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode.IsDir():
		return TypeDir
	case mode.IsRegular():
		return TypeFile
	default:
		return TypeUnknown
	}
}
