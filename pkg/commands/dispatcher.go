package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/datatug/vfstug/pkg/items"
	"github.com/datatug/vfstug/pkg/session"
	"go.uber.org/zap"
)

const (
	StatusOK       = "ok"
	StatusRejected = "rejected"
	StatusCanceled = "canceled"
)

// Recorder receives the result of every dispatched command.
type Recorder interface {
	CommandDone(command, status string)
	Pasted(mode string)
}

type nopRecorder struct{}

func (nopRecorder) CommandDone(string, string) {}
func (nopRecorder) Pasted(string)              {}

// Outcome is what a command did. Message is a short notification for the user.
type Outcome struct {
	Command string
	IDs     []string
	Message string
}

type Dispatcher struct {
	session  *session.Session
	logger   *zap.Logger
	recorder Recorder
}

type DispatcherOption func(*Dispatcher)

func WithLogger(logger *zap.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

func WithRecorder(r Recorder) DispatcherOption {
	return func(d *Dispatcher) {
		d.recorder = r
	}
}

func NewDispatcher(s *session.Session, o ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		session:  s,
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
	}
	for _, opt := range o {
		opt(d)
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	if d.recorder == nil {
		d.recorder = nopRecorder{}
	}
	return d
}

func (d *Dispatcher) Session() *session.Session {
	return d.session
}

// Dispatch validates cmd and applies it to the session.
// A rejected command has no effect and its error wraps the reason.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		d.recorder.CommandDone(cmd.Name(), StatusCanceled)
		return Outcome{}, err
	}
	if err := cmd.Validate(); err != nil {
		d.reject(cmd, err)
		return Outcome{}, err
	}
	outcome, err := d.execute(cmd)
	if err != nil {
		d.reject(cmd, err)
		return Outcome{}, err
	}
	outcome.Command = cmd.Name()
	d.recorder.CommandDone(cmd.Name(), StatusOK)
	d.logger.Debug("command applied",
		zap.String("command", cmd.Name()),
		zap.Strings("ids", outcome.IDs),
		zap.String("message", outcome.Message))
	return outcome, nil
}

func (d *Dispatcher) reject(cmd Command, err error) {
	d.recorder.CommandDone(cmd.Name(), StatusRejected)
	d.logger.Info("command rejected", zap.String("command", cmd.Name()), zap.Error(err))
}

func (d *Dispatcher) execute(cmd Command) (Outcome, error) {
	s := d.session
	switch c := cmd.(type) {
	case Navigate:
		if err := s.SetCurrentFolder(c.FolderID); err != nil {
			return Outcome{}, err
		}
		folder, _ := s.Store().Get(c.FolderID)
		return Outcome{IDs: []string{c.FolderID}, Message: "Opened " + folder.Name}, nil
	case Select:
		if err := s.Select(c.ID, c.Additive); err != nil {
			return Outcome{}, err
		}
		return selected(s.Selection()), nil
	case SelectAll:
		s.SelectAll()
		return selected(s.Selection()), nil
	case ClearSelection:
		s.ClearSelection()
		return Outcome{Message: "Selection cleared"}, nil
	case Create:
		var opts []items.ItemOption
		if c.Size > 0 {
			opts = append(opts, items.WithSize(c.Size))
		}
		id, err := s.Create(c.ItemName, c.Kind, c.ParentID, opts...)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{IDs: []string{id}, Message: fmt.Sprintf("Created %s: %s", c.Kind, c.ItemName)}, nil
	case Rename:
		if err := s.Rename(c.ID, c.NewName); err != nil {
			return Outcome{}, err
		}
		return Outcome{IDs: []string{c.ID}, Message: "Renamed to: " + c.NewName}, nil
	case Move:
		if err := s.Move(c.IDs, c.TargetFolderID); err != nil {
			return Outcome{}, err
		}
		return Outcome{
			IDs:     c.IDs,
			Message: fmt.Sprintf("Moved items [%s] to folder: %s", strings.Join(c.IDs, ", "), c.TargetFolderID),
		}, nil
	case CopyInto:
		newIDs, err := s.CopyInto(c.IDs, c.TargetFolderID)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			IDs:     newIDs,
			Message: fmt.Sprintf("Copied %d item(s) to folder: %s", len(newIDs), c.TargetFolderID),
		}, nil
	case Delete:
		if err := s.Delete(c.IDs); err != nil {
			return Outcome{}, err
		}
		return Outcome{IDs: c.IDs, Message: fmt.Sprintf("Deleted %d item(s)", len(c.IDs))}, nil
	case Cut:
		s.Cut(c.IDs)
		clip, _ := s.Clipboard()
		return Outcome{IDs: clip.ItemIDs, Message: fmt.Sprintf("Cut %d item(s)", len(clip.ItemIDs))}, nil
	case CopyToClipboard:
		s.Copy(c.IDs)
		clip, _ := s.Clipboard()
		return Outcome{IDs: clip.ItemIDs, Message: fmt.Sprintf("Copied %d item(s)", len(clip.ItemIDs))}, nil
	case Paste:
		result, err := s.Paste()
		if err != nil {
			return Outcome{}, err
		}
		if result.Mode == "" {
			return Outcome{Message: "Nothing to paste"}, nil
		}
		d.recorder.Pasted(string(result.Mode))
		return Outcome{IDs: result.IDs, Message: "Items pasted successfully"}, nil
	case BeginRename:
		if err := s.BeginRename(c.ID); err != nil {
			return Outcome{}, err
		}
		item, _ := s.Store().Get(c.ID)
		return Outcome{IDs: []string{c.ID}, Message: "Renaming " + item.Name}, nil
	case CommitRename:
		id, err := s.CommitRename(c.NewName)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{IDs: []string{id}, Message: "Renamed to: " + c.NewName}, nil
	case CancelRename:
		s.CancelRename()
		return Outcome{}, nil
	default:
		return Outcome{}, invalid(cmd, "unsupported command type %T", cmd)
	}
}

func selected(ids []string) Outcome {
	return Outcome{IDs: ids, Message: fmt.Sprintf("Selected %d item(s)", len(ids))}
}
