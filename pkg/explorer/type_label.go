package explorer

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/datatug/vfstug/pkg/items"
)

var imageExtensions = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {}, "bmp": {}, "svg": {},
}

// typeLabel names the type column of an item. Source and markup files get the
// name of the chroma lexer matching them.
func typeLabel(item items.Item) string {
	if item.IsFolder() {
		return "Folder"
	}
	ext := strings.ToLower(item.Extension)
	if _, ok := imageExtensions[ext]; ok {
		return "Image"
	}
	if lexer := lexers.Match(item.Name); lexer != nil {
		return lexer.Config().Name
	}
	if ext == "" {
		return "File"
	}
	return strings.ToUpper(ext) + " file"
}
