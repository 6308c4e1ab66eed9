package vfsconfig

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/datatug/vfstug/pkg/fsutils"
	"github.com/datatug/vfstug/pkg/items"
)

// DemoSeedName identifies the built-in demo tree in saved state.
const DemoSeedName = "demo"

// LoadSeed reads the seed tree named by path, YAML or JSON by extension.
// An empty path gives the demo tree. The returned name keys saved view state.
func LoadSeed(path string) (items.Seed, string, error) {
	if path == "" {
		return items.DemoSeed(), DemoSeedName, nil
	}
	path = fsutils.ExpandHome(path)
	read := fsutils.ReadYAMLFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		read = fsutils.ReadJSONFile
	}
	var seed items.Seed
	if err := read(path, true, &seed); err != nil {
		return items.Seed{}, "", fmt.Errorf("failed to load seed: %w", err)
	}
	return seed, path, nil
}
