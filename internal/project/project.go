// project decides whether a workspace gets path completion at all.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrNoFrameworkConfig is returned when none of the recognised config files exist.
	ErrNoFrameworkConfig = errors.New("no framework config file")

	// ErrNoPublicDir is returned when the public asset folder is missing.
	ErrNoPublicDir = errors.New("no public asset directory")
)

// Project is a detected workspace.
type Project struct {
	Root       string
	AssetRoot  string
	ConfigFile string
}

// Detect checks root for the public folder and one of configFiles.
func Detect(root, publicDir string, configFiles []string) (Project, error) {
	root = filepath.Clean(root)

	assetRoot := filepath.Join(root, publicDir)
	if info, err := os.Stat(assetRoot); err != nil || !info.IsDir() {
		return Project{}, fmt.Errorf("%w: %s", ErrNoPublicDir, assetRoot)
	}

	for _, name := range configFiles {
		candidate := filepath.Join(root, name)
		if _, err := os.Stat(candidate); err == nil {
			return Project{Root: root, AssetRoot: assetRoot, ConfigFile: candidate}, nil
		}
	}

	return Project{}, fmt.Errorf("%w in %s", ErrNoFrameworkConfig, root)
}
