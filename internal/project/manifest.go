// Package project locates and parses the tcad.toml manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file looked up when a command runs without
// explicit source arguments.
const ManifestName = "tcad.toml"

var (
	// ErrProjectSectionMissing indicates that [project] is missing.
	ErrProjectSectionMissing = errors.New("missing [project]")
	// ErrProjectNameMissing indicates that [project].name is missing.
	ErrProjectNameMissing = errors.New("missing [project].name")
)

// Manifest is the parsed tcad.toml.
//
//	[project]
//	name = "bracket"
//	sources = ["sketches/*.tcad"]
type Manifest struct {
	Name    string
	Sources []string // literal paths or globs, relative to Root
	Root    string   // directory the manifest was loaded from
}

type manifestFile struct {
	Project struct {
		Name    string   `toml:"name"`
		Sources []string `toml:"sources"`
	} `toml:"project"`
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("project") {
		return nil, fmt.Errorf("%s: %w", path, ErrProjectSectionMissing)
	}
	name := strings.TrimSpace(cfg.Project.Name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrProjectNameMissing)
	}
	return &Manifest{
		Name:    name,
		Sources: cfg.Project.Sources,
		Root:    filepath.Dir(path),
	}, nil
}

// Find walks up from startDir looking for tcad.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// SourceFiles expands the manifest's sources into a sorted, deduplicated
// list of file paths. An empty sources list means every *.tcad under Root.
func (m *Manifest) SourceFiles() ([]string, error) {
	if len(m.Sources) == 0 {
		return walkDefault(m.Root)
	}
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range m.Sources {
		full := pattern
		if !filepath.IsAbs(full) {
			full = filepath.Join(m.Root, pattern)
		}
		matches, err := filepath.Glob(full)
		if err != nil {
			return nil, fmt.Errorf("invalid source pattern %q: %w", pattern, err)
		}
		if matches == nil {
			// A literal path that matched nothing is an error, a glob
			// with no matches is not.
			if !strings.ContainsAny(pattern, "*?[") {
				return nil, fmt.Errorf("source %q: %w", pattern, os.ErrNotExist)
			}
			continue
		}
		for _, match := range matches {
			if _, dup := seen[match]; dup {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, match)
		}
	}
	sort.Strings(files)
	return files, nil
}

func walkDefault(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".tcad") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
