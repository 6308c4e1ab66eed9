package explorer

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color

	TableHeaderColor tcell.Color
	FolderColor      tcell.Color
	SelectedColor    tcell.Color
	CutColor         tcell.Color

	StatusColor tcell.Color
	ErrorColor  tcell.Color
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,

	TableHeaderColor: tcell.ColorWhiteSmoke,
	FolderColor:      tcell.ColorCornflowerBlue,
	SelectedColor:    tcell.ColorYellow,
	CutColor:         tcell.ColorGray,

	StatusColor: tcell.ColorLightGreen,
	ErrorColor:  tcell.ColorRed,
}
