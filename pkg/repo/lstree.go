package repo

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/raysuliteanu/gitgo/pkg/object"
)

// TreeRow is one row of a tree listing.
type TreeRow struct {
	Mode string
	Type object.ObjectType
	Hash object.Hash
	Size string // blob byte count in decimal; "-" for subtrees
	Name string // slash-joined path when listing recursively
}

// ListTree resolves treeish down to a tree object and returns its rows
// in stored order. In recursive mode subtree rows are replaced by the
// rows of their contents, with names prefixed by the subtree path.
func (r *Repo) ListTree(treeish string, recursive bool) ([]TreeRow, error) {
	tree, err := r.resolveTreeish(treeish)
	if err != nil {
		return nil, err
	}
	var rows []TreeRow
	if err := r.listTree(tree, "", recursive, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// resolveTreeish dereferences any tree-ish identifier: a tree hash is
// returned as-is, a commit yields its tree, and an identifier that fails
// direct resolution is retried as a tag name before giving up.
func (r *Repo) resolveTreeish(id string) (*object.Object, error) {
	obj, err := r.Store.Read(id)
	if err != nil {
		if !errors.Is(err, object.ErrInvalidObjectID) {
			return nil, err
		}
		h, ok, tagErr := r.ResolveTag(id)
		if tagErr != nil {
			return nil, tagErr
		}
		if !ok {
			return nil, err
		}
		if obj, err = r.Store.Read(string(h)); err != nil {
			return nil, fmt.Errorf("tag %q: %w", id, err)
		}
	}

	if obj.Type == object.TypeCommit {
		c, err := object.ParseCommit(obj.Body)
		if err != nil {
			return nil, fmt.Errorf("commit %s: %w", obj.Hash, err)
		}
		commitHash := obj.Hash
		if obj, err = r.Store.Read(string(c.Tree)); err != nil {
			return nil, fmt.Errorf("commit %s: tree: %w", commitHash, err)
		}
	}

	if obj.Type != object.TypeTree {
		return nil, fmt.Errorf("%w: %s is a %s, not a tree", object.ErrInvalidObjectID, obj.Hash, obj.Type)
	}
	return obj, nil
}

func (r *Repo) listTree(tree *object.Object, prefix string, recursive bool, rows *[]TreeRow) error {
	entries, err := object.UnmarshalTree(tree.Body)
	if err != nil {
		return fmt.Errorf("list tree %s: %w", tree.Hash, err)
	}

	for _, e := range entries {
		name := e.Name
		if prefix != "" {
			name = prefix + "/" + e.Name
		}

		child, err := r.Store.Read(string(e.Hash))
		if err != nil {
			return fmt.Errorf("list tree %s: entry %q: %w", tree.Hash, name, err)
		}

		if recursive && e.IsDir() {
			if err := r.listTree(child, name, recursive, rows); err != nil {
				return err
			}
			continue
		}

		size := "-"
		if child.Type == object.TypeBlob {
			size = strconv.Itoa(child.Size)
		}
		*rows = append(*rows, TreeRow{
			Mode: e.Mode,
			Type: child.Type,
			Hash: child.Hash,
			Size: size,
			Name: name,
		})
	}
	return nil
}
