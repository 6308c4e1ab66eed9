package session

import (
	"go.uber.org/zap"
)

// PasteResult reports what a paste did. Mode is empty when the clipboard was empty.
type PasteResult struct {
	Mode ClipboardMode
	IDs  []string
}

// Cut puts ids on the clipboard to be moved by the next paste.
func (s *Session) Cut(ids []string) {
	s.capture(ids, ModeCut)
}

// Copy puts ids on the clipboard to be duplicated by every following paste.
func (s *Session) Copy(ids []string) {
	s.capture(ids, ModeCopy)
}

func (s *Session) capture(ids []string, mode ClipboardMode) {
	if len(ids) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	captured := newOrderedSet()
	for _, id := range ids {
		captured.add(id)
	}
	s.clipboard = &Clipboard{
		ItemIDs:        captured.values(),
		Mode:           mode,
		SourceFolderID: s.currentFolderID,
	}
	s.logger.Debug("clipboard captured", zap.String("mode", string(mode)), zap.Strings("ids", s.clipboard.ItemIDs))
}

// Clipboard returns a copy of the clipboard and whether it holds anything.
func (s *Session) Clipboard() (Clipboard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clipboard == nil {
		return Clipboard{}, false
	}
	c := *s.clipboard
	c.ItemIDs = append([]string(nil), s.clipboard.ItemIDs...)
	return c, true
}

func (s *Session) ClearClipboard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipboard = nil
}

// Paste applies the clipboard to the current folder. A cut is moved and the
// clipboard emptied; a copy is duplicated and stays on the clipboard.
// A rejected cut leaves the clipboard as it was.
func (s *Session) Paste() (PasteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clipboard == nil {
		return PasteResult{}, nil
	}
	ids := append([]string(nil), s.clipboard.ItemIDs...)
	switch s.clipboard.Mode {
	case ModeCut:
		if err := s.store.MoveItems(ids, s.currentFolderID); err != nil {
			return PasteResult{}, err
		}
		s.clipboard = nil
		s.selection.clear()
		return PasteResult{Mode: ModeCut, IDs: ids}, nil
	default:
		newIDs, err := s.store.CopyItemsInto(ids, s.currentFolderID)
		if err != nil {
			return PasteResult{}, err
		}
		return PasteResult{Mode: ModeCopy, IDs: newIDs}, nil
	}
}
