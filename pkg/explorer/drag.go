package explorer

import (
	"errors"
	"fmt"

	"github.com/datatug/vfstug/pkg/commands"
	"go.uber.org/zap"
)

var errNothingToDrop = errors.New("nothing to drop")

// grab picks up the selection, or the item under the cursor when nothing is
// selected, for a later drop.
func (ex *Explorer) grab(action commands.DragAction) {
	ids := ex.d.Session().Selection()
	if len(ids) == 0 {
		if item, ok := ex.listing.currentItem(); ok {
			ids = []string{item.ID}
		}
	}
	payload := commands.DragPayload{ItemIDs: ids, Action: action}
	if err := payload.Validate(); err != nil {
		ex.showError(err)
		return
	}
	data, err := payload.Marshal()
	if err != nil {
		ex.showError(err)
		return
	}
	ex.grabbed = data
	ex.o.logger.Debug("picked up items", zap.Strings("ids", ids), zap.String("action", string(action)))
	ex.showStatus(fmt.Sprintf("Picked up %d item(s) to %s", len(ids), action))
}

// drop releases the grabbed items onto targetID.
func (ex *Explorer) drop(targetID string) {
	if ex.grabbed == nil {
		ex.showError(errNothingToDrop)
		return
	}
	payload, err := commands.ParseDragPayload(ex.grabbed)
	if err != nil {
		ex.grabbed = nil
		ex.showError(err)
		return
	}
	if _, err = ex.do(payload.ToCommand(targetID)); err == nil {
		ex.grabbed = nil
	}
}

// goUp opens the parent of the current folder.
func (ex *Explorer) goUp() {
	parent, ok := ex.view.ParentOf(ex.d.Session().CurrentFolderID())
	if !ok {
		return
	}
	_, _ = ex.do(commands.Navigate{FolderID: parent.ID})
}
