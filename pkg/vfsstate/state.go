// Package vfsstate remembers where the explorer was between runs.
package vfsstate

import (
	"os"
	"path/filepath"

	"github.com/datatug/vfstug/pkg/fsutils"
	"go.uber.org/zap"
)

const defaultSettingsDir = "~/.vfstug"
const stateFileName = "vfstug-state.json"

var settingsDirPath = fsutils.ExpandHome(defaultSettingsDir)

// State is keyed by the seed the tree was loaded from: folder ids only mean
// something for the tree they came from.
type State struct {
	Seed             string `json:"seed,omitempty"`
	CurrentFolderID  string `json:"current_folder_id,omitempty"`
	SelectedFolderID string `json:"selected_folder_id,omitempty"`
}

// SetDir points the state file at another settings directory.
func SetDir(dir string) {
	settingsDirPath = fsutils.ExpandHome(dir)
}

func getStateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

var logger = zap.NewNop()

func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

var logErr = func(msg string, err error) {
	logger.Warn(msg, zap.Error(err))
}

// GetState returns what was saved for seed. State saved for another seed
// reads as empty.
func GetState(seed string) (*State, error) {
	var state State
	if err := readJSON(getStateFilePath(), false, &state); err != nil {
		return &State{Seed: seed}, err
	}
	if state.Seed != seed {
		return &State{Seed: seed}, nil
	}
	return &state, nil
}

func SaveCurrentFolder(seed, folderID string) {
	saveSettingValue(func(state *State) {
		if state.Seed != seed {
			*state = State{Seed: seed}
		}
		state.CurrentFolderID = folderID
	})
}

func SaveSelectedFolder(seed, folderID string) {
	saveSettingValue(func(state *State) {
		if state.Seed != seed {
			*state = State{Seed: seed}
		}
		state.SelectedFolderID = folderID
	})
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

func saveSettingValue(f func(state *State)) {
	filePath := getStateFilePath()
	var state State
	if err := readJSON(filePath, false, &state); err != nil {
		logErr("failed to read state file", err)
	}

	exists, err := fsutils.DirExists(settingsDirPath)
	if err != nil {
		logErr("failed to check settings directory", err)
		return
	}
	if !exists {
		// MkdirAll also fails when the path is a regular file.
		if err = os.MkdirAll(settingsDirPath, os.ModePerm); err != nil {
			logErr("failed to create settings directory", err)
			return
		}
	}

	f(&state)
	if err := writeJSON(filePath, state); err != nil {
		logErr("failed to write state file", err)
	}
}
