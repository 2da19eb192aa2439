package repo

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBranch is the branch HEAD points at in a fresh repository when
// config supplies no init.defaultbranch.
const DefaultBranch = "master"

// Init creates a new repository at path: the .git/ directory with the
// objects fan-out root, refs/heads, refs/tags, and a HEAD symbolic
// pointer at the given branch (DefaultBranch when empty). Returns an
// error if a .git/ directory already exists.
func Init(path, branch string) (*Repo, error) {
	gitDir := filepath.Join(path, GitDirName)

	if _, err := os.Stat(gitDir); err == nil {
		return nil, fmt.Errorf("init: repository already exists at %s", gitDir)
	}

	dirs := []string{
		filepath.Join(gitDir, "objects", "info"),
		filepath.Join(gitDir, "objects", "pack"),
		filepath.Join(gitDir, "refs", "heads"),
		filepath.Join(gitDir, "refs", "tags"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("init: mkdir %s: %w", d, err)
		}
	}

	if branch == "" {
		branch = DefaultBranch
	}
	headPath := filepath.Join(gitDir, "HEAD")
	head := fmt.Sprintf("ref: refs/heads/%s\n", branch)
	if err := os.WriteFile(headPath, []byte(head), 0o644); err != nil {
		return nil, fmt.Errorf("init: write HEAD: %w", err)
	}

	return newRepo(path, gitDir), nil
}
