package commands

import (
	"encoding/json"
	"fmt"
)

type DragAction string

const (
	DragMove DragAction = "move"
	DragCopy DragAction = "copy"
)

// DragPayload is what a drag carries from its source to the drop target.
type DragPayload struct {
	ItemIDs []string   `json:"itemIds"`
	Action  DragAction `json:"action"`
}

// ParseDragPayload decodes and validates a serialized drag payload.
// A payload without an action is treated as a move.
func ParseDragPayload(data []byte) (DragPayload, error) {
	var p DragPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return DragPayload{}, fmt.Errorf("drag payload: %w: %v", ErrInvalidCommand, err)
	}
	if p.Action == "" {
		p.Action = DragMove
	}
	if err := p.Validate(); err != nil {
		return DragPayload{}, err
	}
	return p, nil
}

func (p DragPayload) Validate() error {
	switch p.Action {
	case DragMove, DragCopy:
	default:
		return fmt.Errorf("drag payload: %w: unknown action %q", ErrInvalidCommand, p.Action)
	}
	if len(p.ItemIDs) == 0 {
		return fmt.Errorf("drag payload: %w: no items", ErrInvalidCommand)
	}
	return nil
}

func (p DragPayload) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// ToCommand turns a drop onto targetFolderID into a Move or CopyInto.
func (p DragPayload) ToCommand(targetFolderID string) Command {
	ids := append([]string(nil), p.ItemIDs...)
	if p.Action == DragCopy {
		return CopyInto{IDs: ids, TargetFolderID: targetFolderID}
	}
	return Move{IDs: ids, TargetFolderID: targetFolderID}
}
