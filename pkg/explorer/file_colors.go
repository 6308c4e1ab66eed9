package explorer

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

var fileColors = map[string]tcell.Color{
	"exe":  tcell.ColorRed,
	"go":   tcell.ColorAqua,
	"cpp":  tcell.ColorDodgerBlue,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"sql":  tcell.ColorSpringGreen,
	"json": tcell.ColorGold,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"py":   tcell.ColorLightGreen,
	"sh":   tcell.ColorGreen,
	"txt":  tcell.ColorWhite,
	"csv":  tcell.ColorLightGreen,
	"pdf":  tcell.ColorTomato,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
	"webp": tcell.ColorMediumPurple,
	"mov":  tcell.ColorLightSalmon,
	"mp4":  tcell.ColorLightSalmon,
	"mp3":  tcell.ColorLightSalmon,
	"log":  tcell.ColorRosyBrown,
	"xls":  tcell.ColorGreen,
	"xlsx": tcell.ColorGreen,
	"doc":  tcell.ColorBlue,
	"docx": tcell.ColorBlue,
}

// colorByExtension picks the listing color of a file from its derived extension.
func colorByExtension(ext string) tcell.Color {
	if color, ok := fileColors[strings.ToLower(ext)]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}
