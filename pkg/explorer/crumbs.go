package explorer

import (
	"strconv"
	"strings"

	"github.com/datatug/vfstug/pkg/commands"
	"github.com/datatug/vfstug/pkg/items"
	"github.com/rivo/tview"
)

const crumbSeparator = " > "

// crumbsBar shows the path of the open folder. Clicking a crumb opens it.
type crumbsBar struct {
	*tview.TextView
	ex    *Explorer
	trail []items.Crumb
}

func newCrumbsBar(ex *Explorer) *crumbsBar {
	c := &crumbsBar{ex: ex}
	c.TextView = tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWrap(false)
	c.SetHighlightedFunc(func(added, _, _ []string) {
		if len(added) == 0 {
			return
		}
		c.Highlight()
		if i, err := strconv.Atoi(strings.TrimPrefix(added[0], "crumb-")); err == nil {
			c.open(i)
		}
	})
	return c
}

func (c *crumbsBar) render(folderID string) {
	trail, err := c.ex.view.BreadcrumbsFor(folderID)
	if err != nil {
		c.ex.showError(err)
	}
	c.trail = trail
	var b strings.Builder
	for i, crumb := range trail {
		if i > 0 {
			b.WriteString(crumbSeparator)
		}
		b.WriteString(`["crumb-` + strconv.Itoa(i) + `"]`)
		b.WriteString(tview.Escape(crumb.Name))
		b.WriteString(`[""]`)
	}
	c.SetText(b.String())
}

// open navigates to the i-th crumb of the current trail.
func (c *crumbsBar) open(i int) {
	if i < 0 || i >= len(c.trail) {
		return
	}
	_, _ = c.ex.do(commands.Navigate{FolderID: c.trail[i].ID})
}
