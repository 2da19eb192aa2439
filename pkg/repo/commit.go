package repo

import (
	"fmt"
	"strings"
	"time"

	"github.com/raysuliteanu/gitgo/pkg/object"
)

// CommitTree creates a commit object referencing the given tree, with an
// optional single parent commit and a free-text message. Author and
// committer identity come from the repository config; a missing identity
// is a hard error here, not defaulted.
func (r *Repo) CommitTree(tree, parent, message string) (object.Hash, error) {
	treeObj, err := r.Store.ReadTyped(tree, object.TypeTree)
	if err != nil {
		return "", fmt.Errorf("commit tree: %w", err)
	}

	var parentHash object.Hash
	if parent != "" {
		parentObj, err := r.Store.ReadTyped(parent, object.TypeCommit)
		if err != nil {
			return "", fmt.Errorf("commit tree: parent: %w", err)
		}
		parentHash = parentObj.Hash
	}

	cfg, err := r.ReadConfig()
	if err != nil {
		return "", fmt.Errorf("commit tree: %w", err)
	}
	name, email, err := cfg.User()
	if err != nil {
		return "", fmt.Errorf("commit tree: %w", err)
	}

	now := time.Now()
	ident := fmt.Sprintf("%s <%s> %d %s", name, email, now.Unix(), formatTimezoneOffset(now))

	if message != "" && !strings.HasSuffix(message, "\n") {
		message += "\n"
	}

	body := object.MarshalCommit(&object.Commit{
		Tree:      treeObj.Hash,
		Parent:    parentHash,
		Author:    ident,
		Committer: ident,
		Message:   message,
	})
	return r.Store.Write(object.TypeCommit, body)
}

// formatTimezoneOffset renders t's zone as a +HHMM / -HHMM offset.
func formatTimezoneOffset(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	return fmt.Sprintf("%s%02d%02d", sign, hours, minutes)
}
