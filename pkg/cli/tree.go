package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/datatug/vfstug/pkg/fsutils"
	"github.com/datatug/vfstug/pkg/items"
	"github.com/datatug/vfstug/pkg/navigation"
	"github.com/spf13/cobra"
)

func newTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [folder-id]",
		Short: "Print the item tree, or the subtree of a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.load()
			if err != nil {
				return err
			}
			defer e.close()
			store := e.dispatcher.Session().Store()
			folderID := store.RootID()
			if len(args) == 1 {
				folderID = args[0]
			}
			return printTree(cmd.OutOrStdout(), e, folderID)
		},
	}
}

// printTree writes folderID and everything under it, one item per line,
// indented two spaces per level. Folders end with a slash; files show their size.
func printTree(w io.Writer, e *env, folderID string) error {
	store := e.dispatcher.Session().Store()
	folder, ok := store.Get(folderID)
	if !ok || !folder.IsFolder() {
		return fmt.Errorf("%w: %s", items.ErrInvalidTarget, folderID)
	}
	view := navigation.NewView(store)
	var walk func(item items.Item, depth int) error
	walk = func(item items.Item, depth int) error {
		indent := strings.Repeat("  ", depth)
		if item.IsFile() {
			_, err := fmt.Fprintf(w, "%s%s (%s)\n", indent, item.Name, fsutils.FormatKiB(item.Size))
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%s/\n", indent, item.Name); err != nil {
			return err
		}
		children := view.ChildrenOf(item.ID)
		if e.cfg.SortByName {
			children = navigation.SortedByName(children, e.cfg.LanguageTag())
		}
		for _, child := range children {
			if err := walk(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(folder, 0)
}
