// Package commands is the typed command surface of the explorer. Every user
// action, whether it comes from a key press, a drag or a script, becomes a
// Command that is validated and then applied to a session by a Dispatcher.
package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/datatug/vfstug/pkg/items"
)

var ErrInvalidCommand = errors.New("invalid command")

type Command interface {
	Name() string
	Validate() error
}

func invalid(cmd Command, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", cmd.Name(), ErrInvalidCommand, fmt.Sprintf(format, args...))
}

func requireID(cmd Command, field, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid(cmd, "%s is required", field)
	}
	return nil
}

func requireIDs(cmd Command, ids []string) error {
	if len(ids) == 0 {
		return invalid(cmd, "at least one item id is required")
	}
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			return invalid(cmd, "item id #%d is empty", i+1)
		}
	}
	return nil
}

func requireName(cmd Command, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s: %w", cmd.Name(), items.ErrEmptyName)
	}
	return nil
}

type Navigate struct {
	FolderID string
}

func (Navigate) Name() string { return "navigate" }

func (c Navigate) Validate() error {
	return requireID(c, "folder id", c.FolderID)
}

// Select replaces the selection with ID, or toggles ID when Additive is set.
type Select struct {
	ID       string
	Additive bool
}

func (Select) Name() string { return "select" }

func (c Select) Validate() error {
	return requireID(c, "item id", c.ID)
}

type SelectAll struct{}

func (SelectAll) Name() string { return "select_all" }

func (SelectAll) Validate() error { return nil }

type ClearSelection struct{}

func (ClearSelection) Name() string { return "clear_selection" }

func (ClearSelection) Validate() error { return nil }

type Create struct {
	ItemName string
	Kind     items.Kind
	ParentID string
	Size     int64
}

func (Create) Name() string { return "create" }

func (c Create) Validate() error {
	if err := requireName(c, c.ItemName); err != nil {
		return err
	}
	if !c.Kind.Valid() {
		return invalid(c, "unknown kind %q", c.Kind)
	}
	if c.Size < 0 {
		return fmt.Errorf("%s: %w", c.Name(), items.ErrInvalidSize)
	}
	if c.Kind == items.KindFolder && c.Size != 0 {
		return invalid(c, "folders have no size")
	}
	return requireID(c, "parent id", c.ParentID)
}

type Rename struct {
	ID      string
	NewName string
}

func (Rename) Name() string { return "rename" }

func (c Rename) Validate() error {
	if err := requireID(c, "item id", c.ID); err != nil {
		return err
	}
	return requireName(c, c.NewName)
}

type Move struct {
	IDs            []string
	TargetFolderID string
}

func (Move) Name() string { return "move" }

func (c Move) Validate() error {
	if err := requireIDs(c, c.IDs); err != nil {
		return err
	}
	return requireID(c, "target folder id", c.TargetFolderID)
}

// CopyInto places shallow duplicates of IDs into a folder directly, bypassing the clipboard.
type CopyInto struct {
	IDs            []string
	TargetFolderID string
}

func (CopyInto) Name() string { return "copy_into" }

func (c CopyInto) Validate() error {
	if err := requireIDs(c, c.IDs); err != nil {
		return err
	}
	return requireID(c, "target folder id", c.TargetFolderID)
}

type Delete struct {
	IDs []string
}

func (Delete) Name() string { return "delete" }

func (c Delete) Validate() error {
	return requireIDs(c, c.IDs)
}

type Cut struct {
	IDs []string
}

func (Cut) Name() string { return "cut" }

func (c Cut) Validate() error {
	return requireIDs(c, c.IDs)
}

type CopyToClipboard struct {
	IDs []string
}

func (CopyToClipboard) Name() string { return "copy" }

func (c CopyToClipboard) Validate() error {
	return requireIDs(c, c.IDs)
}

type Paste struct{}

func (Paste) Name() string { return "paste" }

func (Paste) Validate() error { return nil }

type BeginRename struct {
	ID string
}

func (BeginRename) Name() string { return "begin_rename" }

func (c BeginRename) Validate() error {
	return requireID(c, "item id", c.ID)
}

// CommitRename finishes the rename started by BeginRename.
type CommitRename struct {
	NewName string
}

func (CommitRename) Name() string { return "commit_rename" }

func (c CommitRename) Validate() error {
	return requireName(c, c.NewName)
}

type CancelRename struct{}

func (CancelRename) Name() string { return "cancel_rename" }

func (CancelRename) Validate() error { return nil }
