package navigation

import (
	"sort"

	"github.com/datatug/vfstug/pkg/items"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortedByName returns a copy of list with folders first, each group ordered
// by name using the collation rules of lang. The input is left untouched.
func SortedByName(list []items.Item, lang language.Tag) []items.Item {
	sorted := make([]items.Item, len(list))
	copy(sorted, list)
	c := collate.New(lang, collate.IgnoreCase, collate.Numeric)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsFolder() != b.IsFolder() {
			return a.IsFolder()
		}
		return c.CompareString(a.Name, b.Name) < 0
	})
	return sorted
}
