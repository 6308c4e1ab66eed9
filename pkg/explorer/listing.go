package explorer

import (
	"fmt"

	"github.com/datatug/vfstug/pkg/commands"
	"github.com/datatug/vfstug/pkg/fsutils"
	"github.com/datatug/vfstug/pkg/items"
	"github.com/datatug/vfstug/pkg/navigation"
	"github.com/datatug/vfstug/pkg/session"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	colName = iota
	colType
	colSize
	colModified
)

const modifiedLayout = "2006-01-02 15:04"

// listing is the table of the open folder's children. Row 0 is the header.
type listing struct {
	*tview.Table
	ex       *Explorer
	folderID string
}

func newListing(ex *Explorer) *listing {
	l := &listing{ex: ex, Table: tview.NewTable()}
	l.SetSelectable(true, false).
		SetFixed(1, 0).
		SetBorder(true)
	l.SetBorderColor(Style.BlurBorderColor)
	l.SetFocusFunc(func() { l.SetBorderColor(Style.FocusedBorderColor) })
	l.SetBlurFunc(func() { l.SetBorderColor(Style.BlurBorderColor) })
	l.SetInputCapture(l.handleKey)
	return l
}

func (l *listing) render(folderID string) {
	s := l.ex.d.Session()
	folder, _ := s.Store().Get(folderID)
	children := l.ex.view.ChildrenOf(folderID)
	if l.ex.o.sortByName {
		children = navigation.SortedByName(children, l.ex.o.lang)
	}
	l.SetTitle(listingTitle(folder, children))

	cut := make(map[string]bool)
	if clip, ok := s.Clipboard(); ok && clip.Mode == session.ModeCut {
		for _, id := range clip.ItemIDs {
			cut[id] = true
		}
	}

	prevRow, _ := l.GetSelection()
	if folderID != l.folderID {
		prevRow = 0
		l.folderID = folderID
	}
	l.Clear()
	for col, title := range []string{"Name", "Type", "Size", "Modified"} {
		l.SetCell(0, col, tview.NewTableCell(title).
			SetTextColor(Style.TableHeaderColor).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}
	for i, item := range children {
		row := i + 1
		name := item.Name
		color := colorByExtension(item.Extension)
		if item.IsFolder() {
			name = "📁 " + name
			color = Style.FolderColor
		}
		marker := "  "
		switch {
		case s.IsSelected(item.ID):
			marker = "✓ "
			color = Style.SelectedColor
		case cut[item.ID]:
			color = Style.CutColor
		}
		size := ""
		if item.IsFile() {
			size = fsutils.FormatKiB(item.Size)
		}
		l.SetCell(row, colName, tview.NewTableCell(marker+tview.Escape(name)).
			SetReference(item.ID).
			SetTextColor(color).
			SetExpansion(1))
		l.SetCell(row, colType, tview.NewTableCell(tview.Escape(typeLabel(item))))
		l.SetCell(row, colSize, tview.NewTableCell(size).SetAlign(tview.AlignRight))
		l.SetCell(row, colModified, tview.NewTableCell(item.LastModified.Format(modifiedLayout)))
	}
	switch {
	case len(children) == 0:
		l.Select(0, 0)
	case prevRow < 1:
		l.Select(1, 0)
	case prevRow > len(children):
		l.Select(len(children), 0)
	default:
		l.Select(prevRow, 0)
	}
}

// listingTitle names the folder and sums the sizes of the files directly in it.
func listingTitle(folder items.Item, children []items.Item) string {
	var total int64
	for _, child := range children {
		total += child.Size
	}
	return fmt.Sprintf(" %s · %d items · %s ", tview.Escape(folder.Name), len(children), fsutils.GetSizeShortText(total))
}

// currentItem returns the item under the cursor.
func (l *listing) currentItem() (items.Item, bool) {
	row, _ := l.GetSelection()
	if row < 1 {
		return items.Item{}, false
	}
	cell := l.GetCell(row, colName)
	id, ok := cell.GetReference().(string)
	if !ok {
		return items.Item{}, false
	}
	return l.ex.d.Session().Store().Get(id)
}

// selectRow moves the cursor to the row of id.
func (l *listing) selectRow(id string) {
	for row := 1; row < l.GetRowCount(); row++ {
		if ref, ok := l.GetCell(row, colName).GetReference().(string); ok && ref == id {
			l.Select(row, 0)
			return
		}
	}
}

func (l *listing) handleKey(event *tcell.EventKey) *tcell.EventKey {
	ex := l.ex
	if cmd := ex.keys.CommandFor(event, ex.d.Session()); cmd != nil {
		if _, err := ex.do(cmd); err == nil {
			if begin, ok := cmd.(commands.BeginRename); ok {
				ex.prompt.rename(begin.ID)
			}
		}
		return nil
	}
	switch event.Key() {
	case tcell.KeyEnter:
		l.open()
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ex.goUp()
		return nil
	case tcell.KeyRune:
		if event.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return event
		}
		switch event.Rune() {
		case ' ':
			if item, ok := l.currentItem(); ok {
				_, _ = ex.do(commands.Select{ID: item.ID, Additive: true})
			}
			return nil
		case 'n':
			ex.prompt.create(items.KindFile)
			return nil
		case 'N':
			ex.prompt.create(items.KindFolder)
			return nil
		case 'g':
			ex.grab(commands.DragMove)
			return nil
		case 'G':
			ex.grab(commands.DragCopy)
			return nil
		case 'p', 'P':
			if item, ok := l.currentItem(); ok && item.IsFolder() {
				ex.drop(item.ID)
			} else {
				ex.drop(ex.d.Session().CurrentFolderID())
			}
			return nil
		}
	}
	return event
}

// open enters the folder under the cursor, or selects the file under it.
func (l *listing) open() {
	item, ok := l.currentItem()
	if !ok {
		return
	}
	if item.IsFolder() {
		_, _ = l.ex.do(commands.Navigate{FolderID: item.ID})
		return
	}
	_, _ = l.ex.do(commands.Select{ID: item.ID})
}
