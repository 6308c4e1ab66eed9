package explorer

import (
	"github.com/datatug/vfstug/pkg/commands"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// folderTree is the left pane: every folder of the store, with the open one current.
type folderTree struct {
	*tview.TreeView
	ex *Explorer

	// cursorID is the folder last reported to OnTreeCursorChanged.
	cursorID string
}

func newFolderTree(ex *Explorer) *folderTree {
	t := &folderTree{ex: ex, TreeView: tview.NewTreeView()}
	t.SetBorder(true).SetTitle(" Folders ")
	t.SetBorderColor(Style.BlurBorderColor)
	t.SetSelectedFunc(func(node *tview.TreeNode) {
		if id, ok := node.GetReference().(string); ok {
			_, _ = ex.do(commands.Navigate{FolderID: id})
		}
	})
	t.SetChangedFunc(func(node *tview.TreeNode) {
		id, ok := node.GetReference().(string)
		if !ok || id == t.cursorID {
			return
		}
		t.cursorID = id
		if ex.o.onTreeCursorChanged != nil {
			ex.o.onTreeCursorChanged(id)
		}
	})
	t.SetFocusFunc(func() { t.SetBorderColor(Style.FocusedBorderColor) })
	t.SetBlurFunc(func() { t.SetBorderColor(Style.BlurBorderColor) })
	t.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune {
			switch event.Rune() {
			case 'p', 'P':
				if node := t.GetCurrentNode(); node != nil {
					if id, ok := node.GetReference().(string); ok {
						ex.drop(id)
						return nil
					}
				}
			}
		}
		return event
	})
	return t
}

// render rebuilds the tree from the store and makes currentID the current node.
func (t *folderTree) render(currentID string) {
	rootID := t.ex.d.Session().Store().RootID()
	nodes := t.ex.view.FolderTree(rootID)
	if len(nodes) == 0 {
		t.SetRoot(nil)
		return
	}
	stack := make([]*tview.TreeNode, 0, 8)
	var root, current *tview.TreeNode
	for _, n := range nodes {
		node := tview.NewTreeNode("📁 " + n.Item.Name).
			SetReference(n.Item.ID).
			SetColor(Style.FolderColor)
		if n.Item.ID == currentID {
			current = node
		}
		stack = stack[:n.Depth]
		if n.Depth == 0 {
			root = node
		} else {
			stack[n.Depth-1].AddChild(node)
		}
		stack = append(stack, node)
	}
	t.SetRoot(root)
	if current == nil {
		current = root
	}
	t.SetCurrentNode(current)
}

// moveCursor highlights the node of folderID without opening it.
// It reports false when the folder is not in the tree.
func (t *folderTree) moveCursor(folderID string) bool {
	root := t.GetRoot()
	if root == nil {
		return false
	}
	var found *tview.TreeNode
	root.Walk(func(node, _ *tview.TreeNode) bool {
		if found == nil && node.GetReference() == folderID {
			found = node
		}
		return found == nil
	})
	if found == nil {
		return false
	}
	t.cursorID = folderID
	t.SetCurrentNode(found)
	return true
}
