package commands

import (
	"unicode"

	"github.com/datatug/vfstug/pkg/session"
	"github.com/gdamore/tcell/v2"
)

// SessionState is the part of a session the key map looks at.
type SessionState interface {
	Selection() []string
	Clipboard() (session.Clipboard, bool)
}

// KeyMap translates explorer shortcuts into commands.
type KeyMap struct{}

// CommandFor returns the command bound to ev, or nil when the key is not a
// shortcut or the shortcut does not apply to the current state.
func (KeyMap) CommandFor(ev *tcell.EventKey, state SessionState) Command {
	switch ev.Key() {
	case tcell.KeyCtrlA:
		return SelectAll{}
	case tcell.KeyEscape:
		if len(state.Selection()) > 0 {
			return ClearSelection{}
		}
		return nil
	case tcell.KeyCtrlX:
		return cutSelection(state)
	case tcell.KeyCtrlC:
		return copySelection(state)
	case tcell.KeyCtrlV:
		return pasteClipboard(state)
	case tcell.KeyDelete:
		if ids := state.Selection(); len(ids) > 0 {
			return Delete{IDs: ids}
		}
		return nil
	case tcell.KeyF2:
		if ids := state.Selection(); len(ids) == 1 {
			return BeginRename{ID: ids[0]}
		}
		return nil
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl == 0 {
			return nil
		}
		switch unicode.ToLower(ev.Rune()) {
		case 'a':
			return SelectAll{}
		case 'x':
			return cutSelection(state)
		case 'c':
			return copySelection(state)
		case 'v':
			return pasteClipboard(state)
		}
	}
	return nil
}

func cutSelection(state SessionState) Command {
	if ids := state.Selection(); len(ids) > 0 {
		return Cut{IDs: ids}
	}
	return nil
}

func copySelection(state SessionState) Command {
	if ids := state.Selection(); len(ids) > 0 {
		return CopyToClipboard{IDs: ids}
	}
	return nil
}

func pasteClipboard(state SessionState) Command {
	if _, ok := state.Clipboard(); ok {
		return Paste{}
	}
	return nil
}
