package items

import (
	"errors"
	"fmt"
	"time"
)

var ErrDuplicateID = errors.New("duplicate item id")

// Seed describes an initial tree. Ids are optional and generated when empty.
// A seed without Kind is a folder when it has children and a file otherwise.
type Seed struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
	Kind Kind   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Size int64  `json:"size,omitempty" yaml:"size,omitempty"`
	// Modified is the item's last modification time. Zero means load time.
	Modified time.Time `json:"modified,omitempty" yaml:"modified,omitempty"`
	Children []Seed    `json:"children,omitempty" yaml:"children,omitempty"`
}

func (sd Seed) kind() Kind {
	if sd.Kind != "" {
		return sd.Kind
	}
	if len(sd.Children) > 0 {
		return KindFolder
	}
	return KindFile
}

// Load builds a store from a seed tree. The seed root becomes the root folder.
func Load(seed Seed, o ...StoreOption) (*Store, error) {
	s := newEmptyStore(o...)
	if seed.ID == "" {
		seed.ID = RootID
	}
	if seed.Name == "" {
		seed.Name = s.rootName
	}
	if seed.Kind == "" {
		seed.Kind = KindFolder
	}
	if seed.Kind != KindFolder {
		return nil, opError("load", seed.ID, ErrInvalidTarget)
	}
	if err := s.loadSeed(seed, ""); err != nil {
		return nil, err
	}
	s.rootID = seed.ID
	return s, nil
}

func (s *Store) loadSeed(seed Seed, parentID string) error {
	const op = "load"
	kind := seed.kind()
	if !kind.Valid() {
		return opError(op, seed.ID, fmt.Errorf("unknown item kind %q", seed.Kind))
	}
	if blank(seed.Name) {
		return opError(op, seed.ID, ErrEmptyName)
	}
	if seed.Size < 0 {
		return opError(op, seed.ID, ErrInvalidSize)
	}
	if kind == KindFile && len(seed.Children) > 0 {
		return opError(op, seed.ID, ErrInvalidTarget)
	}
	id := seed.ID
	if id == "" {
		var err error
		if id, err = s.issueIDLocked(kind); err != nil {
			return opError(op, seed.Name, err)
		}
	} else if _, taken := s.issued[id]; taken {
		return opError(op, id, ErrDuplicateID)
	}
	item := &Item{
		ID:           id,
		Name:         seed.Name,
		Kind:         kind,
		ParentID:     parentID,
		LastModified: s.now(),
	}
	if kind == KindFile {
		item.Extension = ExtensionOf(seed.Name)
	}
	WithSize(seed.Size)(item)
	if !seed.Modified.IsZero() {
		WithModTime(seed.Modified)(item)
	}
	s.insertLocked(item)
	for _, child := range seed.Children {
		if err := s.loadSeed(child, id); err != nil {
			return err
		}
	}
	return nil
}

// DemoSeed is the sample tree the explorer starts with when no seed file is configured.
func DemoSeed() Seed {
	return Seed{
		ID:   RootID,
		Name: DefaultRootName,
		Kind: KindFolder,
		Children: []Seed{
			{ID: "folder-1", Name: "Documents", Kind: KindFolder, Children: []Seed{
				{ID: "file-1", Name: "document.pdf", Kind: KindFile, Size: 1024},
				{ID: "file-3", Name: "notes.txt", Kind: KindFile, Size: 512},
				{ID: "folder-3", Name: "Projects", Kind: KindFolder, Children: []Seed{
					{ID: "file-4", Name: "project-plan.pdf", Kind: KindFile, Size: 3072},
				}},
			}},
			{ID: "folder-2", Name: "Images", Kind: KindFolder, Children: []Seed{
				{ID: "file-2", Name: "image.jpg", Kind: KindFile, Size: 2048},
				{ID: "file-5", Name: "background.png", Kind: KindFile, Size: 4096},
			}},
		},
	}
}
