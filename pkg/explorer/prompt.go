package explorer

import (
	"github.com/datatug/vfstug/pkg/commands"
	"github.com/datatug/vfstug/pkg/items"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type promptMode int

const (
	promptClosed promptMode = iota
	promptCreate
	promptRename
)

// prompt is the one-line input shown above the status line while naming a new
// item or renaming an existing one.
type prompt struct {
	*tview.InputField
	ex   *Explorer
	mode promptMode
	kind items.Kind
}

func newPrompt(ex *Explorer) *prompt {
	p := &prompt{ex: ex, InputField: tview.NewInputField()}
	p.SetFieldBackgroundColor(tcell.ColorDefault)
	p.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			p.submit()
		case tcell.KeyEscape:
			p.cancel()
		}
	})
	return p
}

func (p *prompt) active() bool {
	return p.mode != promptClosed
}

func (p *prompt) create(kind items.Kind) {
	p.kind = kind
	p.show(promptCreate, "New "+string(kind)+": ", "")
}

// rename opens the prompt prefilled with the current name of id.
// The session must already be editing id.
func (p *prompt) rename(id string) {
	item, ok := p.ex.d.Session().Store().Get(id)
	if !ok {
		return
	}
	p.show(promptRename, "Rename: ", item.Name)
}

func (p *prompt) show(mode promptMode, label, text string) {
	p.mode = mode
	p.SetLabel(label)
	p.SetText(text)
	p.ex.layout(true)
	p.ex.app.SetFocus(p)
}

func (p *prompt) submit() {
	var cmd commands.Command
	switch p.mode {
	case promptCreate:
		cmd = commands.Create{
			ItemName: p.GetText(),
			Kind:     p.kind,
			ParentID: p.ex.d.Session().CurrentFolderID(),
		}
	case promptRename:
		cmd = commands.CommitRename{NewName: p.GetText()}
	default:
		return
	}
	outcome, err := p.ex.do(cmd)
	if err != nil {
		// A rejected name leaves the edit open for another try.
		if p.mode == promptCreate || p.ex.d.Session().EditingID() != "" {
			return
		}
	}
	p.close()
	if err == nil && len(outcome.IDs) > 0 {
		p.ex.listing.selectRow(outcome.IDs[0])
	}
}

func (p *prompt) cancel() {
	if p.mode == promptRename {
		_, _ = p.ex.do(commands.CancelRename{})
	}
	p.close()
}

func (p *prompt) close() {
	p.mode = promptClosed
	p.SetText("")
	p.ex.layout(false)
	p.ex.app.SetFocus(p.ex.listing)
}
