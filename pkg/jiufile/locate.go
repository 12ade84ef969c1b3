// SPDX-License-Identifier: MPL-2.0

package jiufile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PRO-2684/jiu/pkg/recipe"

	"github.com/spf13/afero"
)

// FileName is the recipe file looked up in the working directory and its parents.
const FileName = ".jiu.toml"

// Locate returns the path of the closest recipe file, searching start and then
// each parent directory up to the filesystem root.
func Locate(fsys afero.Fs, start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		info, err := fsys.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to stat %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w in %s or any parent directory", ErrConfigNotFound, start)
		}
		dir = parent
	}
}

// Load reads and parses the recipe file at path.
func Load(fsys afero.Fs, path string) (*recipe.Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := fsys.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%s: %w: %d bytes exceeds maximum %d bytes", abs, ErrFileTooLarge, info.Size(), MaxFileSize)
	}

	data, err := afero.ReadFile(fsys, abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}

	return Parse(data, abs)
}

// Discover locates the closest recipe file from start and loads it.
// It returns the loaded config and the path it was read from.
func Discover(fsys afero.Fs, start string) (*recipe.Config, string, error) {
	path, err := Locate(fsys, start)
	if err != nil {
		return nil, "", err
	}

	cfg, err := Load(fsys, path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func dirOf(filePath string) string {
	if filePath == "" {
		return ""
	}
	return filepath.Dir(filePath)
}
