// Package explorer is the terminal front end of vfstug: a breadcrumb bar,
// a folder tree, the listing of the open folder and a status line, all
// driving the tree through the command dispatcher.
package explorer

import (
	"context"
	"fmt"

	"github.com/datatug/vfstug/pkg/commands"
	"github.com/datatug/vfstug/pkg/navigation"
	"github.com/datatug/vfstug/pkg/session"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type options struct {
	sortByName      bool
	lang            language.Tag
	logger          *zap.Logger
	onFolderChanged func(folderID string)

	treeCursor          string
	onTreeCursorChanged func(folderID string)
}

type Option func(o *options)

// WithSortByName lists folders first and orders names by the collation rules of lang.
func WithSortByName(lang language.Tag) Option {
	return func(o *options) {
		o.sortByName = true
		o.lang = lang
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// OnFolderChanged registers a callback run after every successful navigation.
func OnFolderChanged(f func(folderID string)) Option {
	return func(o *options) {
		o.onFolderChanged = f
	}
}

// WithTreeCursor starts with folderID highlighted in the folder tree.
// Unknown folders are ignored.
func WithTreeCursor(folderID string) Option {
	return func(o *options) {
		o.treeCursor = folderID
	}
}

// OnTreeCursorChanged registers a callback run when the folder tree highlight
// moves to another folder.
func OnTreeCursorChanged(f func(folderID string)) Option {
	return func(o *options) {
		o.onTreeCursorChanged = f
	}
}

type Explorer struct {
	*tview.Flex

	app  *tview.Application
	o    options
	d    *commands.Dispatcher
	view navigation.View
	keys commands.KeyMap

	crumbs  *crumbsBar
	tree    *folderTree
	listing *listing
	prompt  *prompt
	status  *tview.TextView

	body *tview.Flex

	// grabbed holds a serialized drag payload between grab and drop.
	grabbed []byte
}

func New(app *tview.Application, d *commands.Dispatcher, o ...Option) *Explorer {
	ex := &Explorer{
		app:  app,
		d:    d,
		view: navigation.NewView(d.Session().Store()),
		o: options{
			lang:   language.English,
			logger: zap.NewNop(),
		},
	}
	for _, opt := range o {
		opt(&ex.o)
	}
	if ex.o.logger == nil {
		ex.o.logger = zap.NewNop()
	}

	ex.crumbs = newCrumbsBar(ex)
	ex.tree = newFolderTree(ex)
	ex.listing = newListing(ex)
	ex.prompt = newPrompt(ex)
	ex.status = tview.NewTextView().SetDynamicColors(true)

	ex.body = tview.NewFlex().
		AddItem(ex.tree, 0, 1, false).
		AddItem(ex.listing, 0, 3, true)

	ex.Flex = tview.NewFlex().SetDirection(tview.FlexRow)
	ex.layout(false)

	ex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if ex.prompt.active() {
			return event
		}
		if event.Key() == tcell.KeyTab || event.Key() == tcell.KeyBacktab {
			ex.toggleFocus()
			return nil
		}
		return event
	})

	ex.refresh()
	if ex.o.treeCursor != "" && !ex.tree.moveCursor(ex.o.treeCursor) {
		ex.o.logger.Debug("tree cursor folder is gone", zap.String("id", ex.o.treeCursor))
	}
	return ex
}

func (ex *Explorer) layout(withPrompt bool) {
	ex.Clear()
	ex.AddItem(ex.crumbs, 1, 0, false)
	ex.AddItem(ex.body, 0, 1, true)
	if withPrompt {
		ex.AddItem(ex.prompt, 1, 0, false)
	}
	ex.AddItem(ex.status, 1, 0, false)
}

func (ex *Explorer) toggleFocus() {
	if ex.tree.HasFocus() {
		ex.app.SetFocus(ex.listing)
	} else {
		ex.app.SetFocus(ex.tree)
	}
}

func (ex *Explorer) Session() *session.Session {
	return ex.d.Session()
}

// Focus hands focus to the listing.
func (ex *Explorer) Focus(delegate func(p tview.Primitive)) {
	delegate(ex.listing)
}

// do dispatches cmd, reports the outcome on the status line and redraws the panes.
func (ex *Explorer) do(cmd commands.Command) (commands.Outcome, error) {
	before := ex.d.Session().CurrentFolderID()
	outcome, err := ex.d.Dispatch(context.Background(), cmd)
	if err != nil {
		ex.showError(err)
		return outcome, err
	}
	if outcome.Message != "" {
		ex.showStatus(outcome.Message)
	}
	ex.refresh()
	if current := ex.d.Session().CurrentFolderID(); current != before && ex.o.onFolderChanged != nil {
		ex.o.onFolderChanged(current)
	}
	return outcome, nil
}

func (ex *Explorer) showStatus(message string) {
	ex.status.SetText(fmt.Sprintf("[%s]%s", Style.StatusColor.String(), tview.Escape(message)))
}

func (ex *Explorer) showError(err error) {
	ex.status.SetText(fmt.Sprintf("[%s]%s", Style.ErrorColor.String(), tview.Escape(err.Error())))
}

func (ex *Explorer) refresh() {
	folderID := ex.d.Session().CurrentFolderID()
	ex.crumbs.render(folderID)
	ex.tree.render(folderID)
	ex.listing.render(folderID)
}

// Run starts the terminal application with the explorer as its root.
func (ex *Explorer) Run() error {
	return ex.app.SetRoot(ex, true).EnableMouse(true).Run()
}
