// Package navigation derives what an explorer shows from the item store:
// folder listings, breadcrumbs and the folder tree. It holds no state of its own.
package navigation

import (
	"github.com/datatug/vfstug/pkg/items"
)

// ItemReader is the read side of items.Store.
type ItemReader interface {
	Get(id string) (items.Item, bool)
	ListChildren(folderID string) []items.Item
	BreadcrumbPath(folderID string) ([]items.Crumb, error)
}

var _ ItemReader = (*items.Store)(nil)

type View struct {
	reader ItemReader
}

func NewView(reader ItemReader) View {
	return View{reader: reader}
}

// ChildrenOf lists the items of a folder in store order.
func (v View) ChildrenOf(folderID string) []items.Item {
	return v.reader.ListChildren(folderID)
}

// BreadcrumbsFor returns the crumbs from the root to folderID.
func (v View) BreadcrumbsFor(folderID string) ([]items.Crumb, error) {
	return v.reader.BreadcrumbPath(folderID)
}

// TreeNode is a folder placed at a depth of the folder tree.
type TreeNode struct {
	Item  items.Item
	Depth int
}

// FolderTree flattens the folders below rootID, rootID included, depth first.
// Files are left out. The walk never visits a folder twice.
func (v View) FolderTree(rootID string) []TreeNode {
	root, ok := v.reader.Get(rootID)
	if !ok || !root.IsFolder() {
		return nil
	}
	var nodes []TreeNode
	visited := make(map[string]bool)
	var walk func(item items.Item, depth int)
	walk = func(item items.Item, depth int) {
		if visited[item.ID] {
			return
		}
		visited[item.ID] = true
		nodes = append(nodes, TreeNode{Item: item, Depth: depth})
		for _, child := range v.reader.ListChildren(item.ID) {
			if child.IsFolder() {
				walk(child, depth+1)
			}
		}
	}
	walk(root, 0)
	return nodes
}

// ParentOf returns the folder holding id, or false for the root and unknown ids.
func (v View) ParentOf(id string) (items.Item, bool) {
	item, ok := v.reader.Get(id)
	if !ok || item.IsRoot() {
		return items.Item{}, false
	}
	return v.reader.Get(item.ParentID)
}
