package repo

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/raysuliteanu/gitgo/pkg/object"
)

// ErrUnsupportedFileType reports a working-tree entry that cannot be
// represented in a tree object (device, socket, fifo, ...).
var ErrUnsupportedFileType = errors.New("unsupported file type")

// treeMode collapses a platform file mode to one of the canonical tree
// mode strings. Anything that is not a directory, regular file, or
// symlink is rejected.
func treeMode(mode fs.FileMode) (string, error) {
	switch {
	case mode.IsDir():
		return object.ModeDir, nil
	case mode&fs.ModeSymlink != 0:
		return object.ModeSymlink, nil
	case mode.IsRegular():
		if mode&0o111 != 0 {
			return object.ModeExecutable, nil
		}
		return object.ModeFile, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mode)
	}
}
