package commands

import (
	"testing"

	"github.com/datatug/vfstug/pkg/session"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

type stubState struct {
	selection []string
	clipboard *session.Clipboard
}

func (s stubState) Selection() []string {
	return s.selection
}

func (s stubState) Clipboard() (session.Clipboard, bool) {
	if s.clipboard == nil {
		return session.Clipboard{}, false
	}
	return *s.clipboard, true
}

func TestKeyMap_CommandFor(t *testing.T) {
	t.Parallel()
	one := stubState{selection: []string{"file-1"}}
	two := stubState{selection: []string{"file-1", "file-2"}}
	none := stubState{}
	withClipboard := stubState{clipboard: &session.Clipboard{ItemIDs: []string{"file-1"}, Mode: session.ModeCut}}

	for _, tt := range []struct {
		name  string
		ev    *tcell.EventKey
		state stubState
		want  Command
	}{
		{name: "ctrl_a", ev: tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), state: none, want: SelectAll{}},
		{name: "ctrl_x", ev: tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl), state: two, want: Cut{IDs: []string{"file-1", "file-2"}}},
		{name: "ctrl_x_nothing_selected", ev: tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl), state: none, want: nil},
		{name: "ctrl_c", ev: tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), state: one, want: CopyToClipboard{IDs: []string{"file-1"}}},
		{name: "ctrl_c_nothing_selected", ev: tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), state: none, want: nil},
		{name: "ctrl_v", ev: tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl), state: withClipboard, want: Paste{}},
		{name: "ctrl_v_empty_clipboard", ev: tcell.NewEventKey(tcell.KeyCtrlV, 0, tcell.ModCtrl), state: one, want: nil},
		{name: "ctrl_rune_x", ev: tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModCtrl), state: one, want: Cut{IDs: []string{"file-1"}}},
		{name: "plain_rune", ev: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), state: one, want: nil},
		{name: "delete", ev: tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), state: two, want: Delete{IDs: []string{"file-1", "file-2"}}},
		{name: "delete_nothing_selected", ev: tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), state: none, want: nil},
		{name: "f2_single", ev: tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone), state: one, want: BeginRename{ID: "file-1"}},
		{name: "f2_multiple", ev: tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone), state: two, want: nil},
		{name: "escape", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), state: two, want: ClearSelection{}},
		{name: "escape_nothing_selected", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), state: none, want: nil},
		{name: "enter", ev: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), state: one, want: nil},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyMap{}.CommandFor(tt.ev, tt.state))
		})
	}
}
