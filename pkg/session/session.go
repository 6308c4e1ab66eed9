// Package session keeps the transient state of one explorer view: the open
// folder, the selected items, the clipboard and the item being renamed.
package session

import (
	"sync"

	"github.com/datatug/vfstug/pkg/items"
	"go.uber.org/zap"
)

// ClipboardMode tells how a paste applies the clipboard.
type ClipboardMode string

const (
	ModeCut  ClipboardMode = "cut"
	ModeCopy ClipboardMode = "copy"
)

// Clipboard holds the ids captured by the last cut or copy.
type Clipboard struct {
	ItemIDs        []string      `json:"itemIds" yaml:"item_ids"`
	Mode           ClipboardMode `json:"mode" yaml:"mode"`
	SourceFolderID string        `json:"sourceFolderId" yaml:"source_folder_id"`
}

// Session is the single writer in front of a store. All of its methods are
// safe to call from several goroutines; they are applied one at a time.
type Session struct {
	mu sync.Mutex

	store *items.Store

	currentFolderID string
	selection       *orderedSet
	clipboard       *Clipboard
	editingID       string

	clearSelectionOnNavigate bool
	logger                   *zap.Logger
}

type Option func(*Session)

// WithClearSelectionOnNavigate controls whether switching folders drops the selection.
func WithClearSelectionOnNavigate(v bool) Option {
	return func(s *Session) {
		s.clearSelectionOnNavigate = v
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New opens a session on the root folder of store.
func New(store *items.Store, o ...Option) *Session {
	s := &Session{
		store:                    store,
		currentFolderID:          store.RootID(),
		selection:                newOrderedSet(),
		clearSelectionOnNavigate: true,
		logger:                   zap.NewNop(),
	}
	for _, opt := range o {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

func (s *Session) Store() *items.Store {
	return s.store
}

func (s *Session) CurrentFolderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentFolderID
}

// SetCurrentFolder opens another folder. It always ends any rename in progress
// and drops the selection unless the session was told to keep it.
func (s *Session) SetCurrentFolder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.store.Get(id)
	if !ok {
		return &items.OpError{Op: "navigate", ID: id, Err: items.ErrNotFound}
	}
	if !item.IsFolder() {
		return &items.OpError{Op: "navigate", ID: id, Err: items.ErrInvalidTarget}
	}
	s.currentFolderID = id
	s.editingID = ""
	if s.clearSelectionOnNavigate {
		s.selection.clear()
	}
	s.logger.Debug("navigated", zap.String("folder", id))
	return nil
}

// Select makes id the only selected item, or toggles it when additive is set.
func (s *Session) Select(id string, additive bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.store.Get(id); !ok {
		return &items.OpError{Op: "select", ID: id, Err: items.ErrNotFound}
	}
	if !additive {
		s.selection.clear()
		s.selection.add(id)
		return nil
	}
	if !s.selection.remove(id) {
		s.selection.add(id)
	}
	return nil
}

// SelectAll selects every child of the current folder.
func (s *Session) SelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.clear()
	for _, child := range s.store.ListChildren(s.currentFolderID) {
		s.selection.add(child.ID)
	}
}

func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.clear()
}

// Selection returns the selected ids in the order they were selected.
func (s *Session) Selection() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.values()
}

func (s *Session) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.has(id)
}
