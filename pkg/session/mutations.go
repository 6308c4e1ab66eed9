package session

import (
	"errors"

	"github.com/datatug/vfstug/pkg/items"
	"go.uber.org/zap"
)

var ErrNotEditing = errors.New("no rename in progress")

var breadcrumbPath = (*items.Store).BreadcrumbPath

func (s *Session) Create(name string, kind items.Kind, parentID string, o ...items.ItemOption) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.CreateItem(name, kind, parentID, o...)
}

func (s *Session) Rename(id, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.RenameItem(id, newName)
}

// Move re-parents ids and clears the selection once the store accepted it.
func (s *Session) Move(ids []string, targetFolderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.MoveItems(ids, targetFolderID); err != nil {
		return err
	}
	s.selection.clear()
	return nil
}

func (s *Session) CopyInto(ids []string, targetFolderID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.CopyItemsInto(ids, targetFolderID)
}

// Delete removes ids with their descendants and clears the selection.
// Ids that vanished are dropped from the clipboard, and when the open folder
// went away the session falls back to its closest surviving ancestor.
func (s *Session) Delete(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	path, err := breadcrumbPath(s.store, s.currentFolderID)
	if err != nil {
		s.logger.Warn("failed to resolve open folder path", zap.String("folder", s.currentFolderID), zap.Error(err))
	}
	if err := s.store.DeleteItems(ids); err != nil {
		return err
	}
	s.selection.clear()
	if s.editingID != "" {
		if _, ok := s.store.Get(s.editingID); !ok {
			s.editingID = ""
		}
	}
	s.pruneClipboardLocked()
	if _, ok := s.store.Get(s.currentFolderID); !ok {
		s.currentFolderID = s.store.RootID()
		for i := len(path) - 1; i >= 0; i-- {
			if _, ok := s.store.Get(path[i].ID); ok {
				s.currentFolderID = path[i].ID
				break
			}
		}
		s.logger.Debug("open folder deleted", zap.String("fallback", s.currentFolderID))
	}
	return nil
}

func (s *Session) pruneClipboardLocked() {
	if s.clipboard == nil {
		return
	}
	kept := s.clipboard.ItemIDs[:0]
	for _, id := range s.clipboard.ItemIDs {
		if _, ok := s.store.Get(id); ok {
			kept = append(kept, id)
		}
	}
	if len(kept) == 0 {
		s.clipboard = nil
		return
	}
	s.clipboard.ItemIDs = kept
}

// BeginRename marks id as being renamed by the view.
func (s *Session) BeginRename(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.store.Get(id); !ok {
		return &items.OpError{Op: "rename", ID: id, Err: items.ErrNotFound}
	}
	s.editingID = id
	return nil
}

func (s *Session) EditingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

func (s *Session) CancelRename() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = ""
}

// CommitRename renames the item being edited. The edit ends whatever the outcome.
// Keeping the current name is not a change and does not reach the store.
func (s *Session) CommitRename(newName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.editingID
	if id == "" {
		return "", ErrNotEditing
	}
	s.editingID = ""
	if item, ok := s.store.Get(id); ok && item.Name == newName {
		return id, nil
	}
	return id, s.store.RenameItem(id, newName)
}
