package repo

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/raysuliteanu/gitgo/pkg/object"
)

// BuildTree walks the directory subtree rooted at dir, writing every
// regular file and symlink as a blob and every directory as a tree, and
// returns the root tree's hash. The repository metadata directory is
// skipped. Empty directories produce no entry in their parent; building
// an empty root still yields the (empty) tree object. Any failure aborts
// the whole build.
func (r *Repo) BuildTree(dir string) (object.Hash, error) {
	h, _, err := r.buildTree(dir)
	return h, err
}

// buildTree reports the number of entries alongside the hash so callers
// can drop empty subtrees.
func (r *Repo) buildTree(dir string) (object.Hash, int, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return "", 0, fmt.Errorf("build tree %s: %w", dir, err)
	}

	var entries []object.TreeEntry
	for _, de := range dirEntries {
		name := de.Name()
		if name == GitDirName {
			continue
		}
		full := filepath.Join(dir, name)

		info, err := de.Info()
		if err != nil {
			return "", 0, fmt.Errorf("build tree %s: %w", full, err)
		}
		mode, err := treeMode(info.Mode())
		if err != nil {
			return "", 0, fmt.Errorf("build tree %s: %w", full, err)
		}

		var h object.Hash
		switch mode {
		case object.ModeDir:
			sub, n, err := r.buildTree(full)
			if err != nil {
				return "", 0, err
			}
			if n == 0 {
				slog.Debug("skipping empty directory", "path", full)
				continue
			}
			h = sub
		case object.ModeSymlink:
			target, err := os.Readlink(full)
			if err != nil {
				return "", 0, fmt.Errorf("build tree %s: %w", full, err)
			}
			h, err = r.Store.Write(object.TypeBlob, []byte(target))
			if err != nil {
				return "", 0, err
			}
		default:
			data, err := os.ReadFile(full)
			if err != nil {
				return "", 0, fmt.Errorf("build tree %s: %w", full, err)
			}
			h, err = r.Store.Write(object.TypeBlob, data)
			if err != nil {
				return "", 0, err
			}
		}

		entries = append(entries, object.TreeEntry{Mode: mode, Name: name, Hash: h})
	}

	body, err := object.MarshalTree(entries)
	if err != nil {
		return "", 0, fmt.Errorf("build tree %s: %w", dir, err)
	}
	h, err := r.Store.Write(object.TypeTree, body)
	if err != nil {
		return "", 0, err
	}
	return h, len(entries), nil
}
