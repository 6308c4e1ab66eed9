package items

import (
	"strings"
	"time"
)

// Kind tells files and folders apart. It never changes after creation.
type Kind string

const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

func (k Kind) Valid() bool {
	return k == KindFile || k == KindFolder
}

// Item is a node of the tree. ParentID is empty only for the root folder.
// Size and Extension are meaningful for files only; folders keep zero values.
type Item struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Kind         Kind      `json:"kind" yaml:"kind"`
	ParentID     string    `json:"parentId,omitempty" yaml:"parent_id,omitempty"`
	Size         int64     `json:"size,omitempty" yaml:"size,omitempty"`
	Extension    string    `json:"extension,omitempty" yaml:"extension,omitempty"`
	LastModified time.Time `json:"lastModified" yaml:"last_modified"`
}

func (i Item) IsFolder() bool { return i.Kind == KindFolder }
func (i Item) IsFile() bool   { return i.Kind == KindFile }
func (i Item) IsRoot() bool   { return i.ParentID == "" }

// Crumb is one step of a breadcrumb path.
type Crumb struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ExtensionOf returns the part of name after the last dot.
// Names without a dot, or ending with one, have no extension.
func ExtensionOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return name[i+1:]
}

func blank(name string) bool {
	return strings.TrimSpace(name) == ""
}

// ItemOption tweaks an item at creation time.
type ItemOption func(*Item)

// WithSize sets the stored size of a file. It is ignored for folders.
func WithSize(v int64) ItemOption {
	return func(item *Item) {
		if item.Kind == KindFile {
			item.Size = v
		}
	}
}

// WithModTime overrides the creation timestamp.
func WithModTime(v time.Time) ItemOption {
	return func(item *Item) {
		item.LastModified = v
	}
}
