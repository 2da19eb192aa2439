package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/raysuliteanu/gitgo/pkg/object"
)

// GitDirName is the repository metadata directory. The tree assembler
// skips it when walking the working tree.
const GitDirName = ".git"

// Repo represents an opened repository. It resolves the directory layout
// (objects root, refs root) and hands those paths to the store and the
// tag resolver, which never compute them on their own.
type Repo struct {
	RootDir string        // working directory root
	GitDir  string        // .git/ directory
	Store   *object.Store // content-addressed object store
}

func newRepo(root, gitDir string) *Repo {
	return &Repo{
		RootDir: root,
		GitDir:  gitDir,
		Store:   object.NewStore(filepath.Join(gitDir, "objects")),
	}
}

// Open searches upward from path for a .git/ directory and opens the
// repository. Returns an error if none is found.
func Open(path string) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("open: abs path: %w", err)
	}

	cur := abs
	for {
		gitDir := filepath.Join(cur, GitDirName)
		info, err := os.Stat(gitDir)
		if err == nil && info.IsDir() {
			return newRepo(cur, gitDir), nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, fmt.Errorf("open: not a repository (or any parent up to /)")
		}
		cur = parent
	}
}

func (r *Repo) tagsDir() string {
	return filepath.Join(r.GitDir, "refs", "tags")
}
