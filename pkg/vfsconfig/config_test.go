package vfsconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/datatug/vfstug/pkg/items"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	orig := osUserHomeDir
	t.Cleanup(func() { osUserHomeDir = orig })
	osUserHomeDir = func() (string, error) {
		return home, nil
	}

	cfg, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.SeedFile)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "", cfg.Log.OutputPath)
	assert.Equal(t, filepath.Join(home, ".vfstug"), cfg.StateDir)
	assert.True(t, cfg.ClearSelectionOnNavigate)
	assert.False(t, cfg.TouchOnMutation)
	assert.Equal(t, language.English, cfg.LanguageTag())
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "config.yaml", `
seed_file: ~/trees/work.yaml
log:
  level: debug
  format: console
  output: /tmp/vfstug.log
metrics_addr: ":9090"
clear_selection_on_navigate: false
touch_on_mutation: true
sort_by_name: true
language: de
`)
	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, "~/trees/work.yaml", cfg.SeedFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "/tmp/vfstug.log", cfg.Log.OutputPath)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.False(t, cfg.ClearSelectionOnNavigate)
	assert.True(t, cfg.TouchOnMutation)
	assert.True(t, cfg.SortByName)
	assert.Equal(t, language.German, cfg.LanguageTag())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("VFSTUG_LOG_LEVEL", "warn")
	t.Setenv("VFSTUG_TOUCH_ON_MUTATION", "true")
	path := writeFile(t, "config.yaml", "log:\n  level: debug\n")
	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.TouchOnMutation)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit_file_missing", func(t *testing.T) {
		_, err := Load(New(filepath.Join(t.TempDir(), "nope.yaml")))
		assert.Error(t, err)
	})
	t.Run("invalid_yaml", func(t *testing.T) {
		_, err := Load(New(writeFile(t, "config.yaml", "log: [\n")))
		assert.Error(t, err)
	})
}

func TestLanguageTag_Invalid(t *testing.T) {
	assert.Equal(t, language.English, Config{Language: "not a tag!"}.LanguageTag())
}

func TestGetUserDir(t *testing.T) {
	orig := osUserHomeDir
	t.Cleanup(func() { osUserHomeDir = orig })

	osUserHomeDir = func() (string, error) {
		return "/tmp/home", nil
	}
	dir, err := GetUserDir()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/home", ".vfstug"), dir)

	wantErr := errors.New("home dir error")
	osUserHomeDir = func() (string, error) {
		return "", wantErr
	}
	dir, err = GetUserDir()
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, UserDir, dir)
}

func TestLoadSeed(t *testing.T) {
	t.Run("demo", func(t *testing.T) {
		seed, name, err := LoadSeed("")
		require.NoError(t, err)
		assert.Equal(t, DemoSeedName, name)
		assert.Equal(t, items.DemoSeed(), seed)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "tree.yaml", `
name: Home
children:
  - name: Music
    kind: folder
  - name: song.mp3
    size: 4096
    modified: 2021-03-14T09:26:53Z
`)
		seed, name, err := LoadSeed(path)
		require.NoError(t, err)
		assert.Equal(t, path, name)
		store, err := items.Load(seed)
		require.NoError(t, err)
		assert.Equal(t, "Home", store.Root().Name)
		children := store.ListChildren(store.RootID())
		require.Len(t, children, 2)
		assert.True(t, children[0].IsFolder())
		assert.Equal(t, "mp3", children[1].Extension)
		assert.Equal(t, int64(4096), children[1].Size)
		assert.Equal(t, time.Date(2021, 3, 14, 9, 26, 53, 0, time.UTC), children[1].LastModified.UTC())
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "tree.JSON", `{"name":"Home","children":[{"id":"f1","name":"a.txt","size":1,"modified":"2021-03-14T09:26:53Z"}]}`)
		seed, _, err := LoadSeed(path)
		require.NoError(t, err)
		require.Len(t, seed.Children, 1)
		assert.Equal(t, "f1", seed.Children[0].ID)
		assert.Equal(t, 2021, seed.Children[0].Modified.Year())
	})

	t.Run("missing", func(t *testing.T) {
		_, _, err := LoadSeed(filepath.Join(t.TempDir(), "none.yaml"))
		assert.Error(t, err)
	})
}
