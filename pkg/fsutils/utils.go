package fsutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decoder decodes
type Decoder interface {
	Decode(o any) error
}

func JSONDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

func YAMLDecoder(r io.Reader) Decoder {
	return yaml.NewDecoder(r)
}

func ReadJSONFile(filePath string, required bool, o any) error {
	return ReadFile(filePath, required, o, JSONDecoder)
}

func ReadYAMLFile(filePath string, required bool, o any) error {
	return ReadFile(filePath, required, o, YAMLDecoder)
}

// ReadFile decodes filePath into o. A missing file is not an error unless required.
func ReadFile(filePath string, required bool, o any, newDecoder func(r io.Reader) Decoder) (err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close file %v: %w", filePath, closeErr))
		}
	}()
	if err = newDecoder(file).Decode(o); err != nil {
		return fmt.Errorf("failed to decode %v: %w", filePath, err)
	}
	return nil
}

// WriteJSONFile writes o as indented JSON, replacing the file atomically.
func WriteJSONFile(filePath string, o any) error {
	data, err := json.MarshalIndent(o, "", "\t")
	if err != nil {
		return err
	}
	tmp := filePath + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, filePath)
}

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}
