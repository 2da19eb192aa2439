package object

import (
	"bytes"
	"fmt"
	"strings"
)

// Commit is a decoded commit object. This store supports at most one
// parent; Parent is empty for a root commit.
type Commit struct {
	Tree      Hash
	Parent    Hash
	Author    string // "Name <email> <epoch-seconds> <tz-offset>"
	Committer string
	Message   string
}

// MarshalCommit serializes a commit body:
//
//	tree <hash>
//	parent <hash>      (only when Parent is set)
//	author <author>
//	committer <committer>
//
//	<message>
func MarshalCommit(c *Commit) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "tree %s\n", c.Tree)
	if c.Parent != "" {
		fmt.Fprintf(&buf, "parent %s\n", c.Parent)
	}
	fmt.Fprintf(&buf, "author %s\n", c.Author)
	fmt.Fprintf(&buf, "committer %s\n", c.Committer)
	buf.WriteByte('\n')
	buf.WriteString(c.Message)
	return buf.Bytes()
}

// ParseCommit parses a commit body, enforcing the mandatory field order:
// tree, optional parent, author, committer, blank line, message. Any
// deviation is ErrInvalidCommitFormat. The message is taken verbatim
// with no further structure.
func ParseCommit(data []byte) (*Commit, error) {
	idx := bytes.Index(data, []byte("\n\n"))
	if idx < 0 {
		return nil, fmt.Errorf("parse commit: %w: missing blank line before message", ErrInvalidCommitFormat)
	}
	lines := strings.Split(string(data[:idx]), "\n")
	c := &Commit{Message: string(data[idx+2:])}

	i := 0
	next := func() string {
		if i >= len(lines) {
			return ""
		}
		line := lines[i]
		i++
		return line
	}

	tree, ok := fieldValue(next(), "tree")
	if !ok {
		return nil, fmt.Errorf("parse commit: %w: first header must be tree", ErrInvalidCommitFormat)
	}
	if len(tree) != 40 {
		return nil, fmt.Errorf("parse commit: %w: bad tree hash %q", ErrInvalidCommitFormat, tree)
	}
	c.Tree = Hash(tree)

	line := next()
	if parent, isParent := fieldValue(line, "parent"); isParent {
		if len(parent) != 40 {
			return nil, fmt.Errorf("parse commit: %w: bad parent hash %q", ErrInvalidCommitFormat, parent)
		}
		c.Parent = Hash(parent)
		line = next()
	}

	author, ok := fieldValue(line, "author")
	if !ok || author == "" {
		return nil, fmt.Errorf("parse commit: %w: expected author header", ErrInvalidCommitFormat)
	}
	c.Author = author

	committer, ok := fieldValue(next(), "committer")
	if !ok || committer == "" {
		return nil, fmt.Errorf("parse commit: %w: expected committer header", ErrInvalidCommitFormat)
	}
	c.Committer = committer

	if i != len(lines) {
		return nil, fmt.Errorf("parse commit: %w: unexpected header %q", ErrInvalidCommitFormat, lines[i])
	}
	return c, nil
}

func fieldValue(line, key string) (string, bool) {
	k, v, ok := strings.Cut(line, " ")
	if !ok || k != key {
		return "", false
	}
	return v, true
}
