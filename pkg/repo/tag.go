package repo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/raysuliteanu/gitgo/pkg/object"
)

// ResolveTag looks up a tag by name under refs/tags. A tag is a flat
// file whose trimmed content is the referent's hash. A missing tag is
// not an error: ok reports whether the tag exists, and callers fall back
// to treating the original identifier as a direct object id.
func (r *Repo) ResolveTag(name string) (h object.Hash, ok bool, err error) {
	data, err := os.ReadFile(filepath.Join(r.tagsDir(), name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("resolve tag %q: %w", name, err)
	}
	return object.Hash(strings.TrimSpace(string(data))), true, nil
}
