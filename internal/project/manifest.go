// Package project reads the on-disk ProjectManifest (§3.1, §6.1): a
// TOML document describing a compilation's inputs, grounded on the
// reference stack's own project-manifest loader (same directory-walk,
// same decode-then-validate shape), adapted to this compiler's fields.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"svcore/internal/langver"
)

const manifestFileName = "svcore.toml"

// Manifest is the parsed form of svcore.toml: an ordered source file
// list (or globs), include directories forwarded opaquely to the
// out-of-scope preprocessor, the target LanguageVersion, and top-module
// overrides feeding the §4.G TopInstanceStrategy.
type Manifest struct {
	Path string
	Root string

	Package packageConfig `toml:"package"`
	Build   buildConfig   `toml:"build"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type buildConfig struct {
	Sources     []string `toml:"sources"`
	IncludeDirs []string `toml:"include_dirs"`
	LanguageVer string   `toml:"language_version"`
	TopModules  []string `toml:"top_modules"`
}

// LanguageVersion resolves the manifest's configured edition, defaulting
// to langver.Latest when the field is absent.
func (m *Manifest) LanguageVersion() (langver.Version, error) {
	if strings.TrimSpace(m.Build.LanguageVer) == "" {
		return langver.Latest, nil
	}
	return langver.Parse(m.Build.LanguageVer)
}

// ResolvedSources expands m.Build.Sources glob patterns relative to the
// manifest's root directory, in the order the globs were declared.
func (m *Manifest) ResolvedSources() ([]string, error) {
	var files []string
	for _, pattern := range m.Build.Sources {
		full := filepath.Join(m.Root, filepath.FromSlash(pattern))
		matches, err := filepath.Glob(full)
		if err != nil {
			return nil, fmt.Errorf("%s: bad source pattern %q: %w", m.Path, pattern, err)
		}
		files = append(files, matches...)
	}
	return files, nil
}

// Find walks upward from startDir looking for svcore.toml, the way the
// reference CLI locates its own project manifest.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestFileName)
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

// Load finds and parses the nearest svcore.toml above startDir. ok is
// false (with a nil error) when no manifest exists anywhere above
// startDir, distinguishing "no project" from a malformed one.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := loadFile(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

func loadFile(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") || strings.TrimSpace(m.Package.Name) == "" {
		return nil, fmt.Errorf("%s: missing or empty [package].name", path)
	}
	if !meta.IsDefined("build") || len(m.Build.Sources) == 0 {
		return nil, fmt.Errorf("%s: [build].sources must list at least one file or glob", path)
	}
	if m.Build.LanguageVer != "" {
		if _, err := langver.Parse(m.Build.LanguageVer); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	m.Path = path
	m.Root = filepath.Dir(path)
	return &m, nil
}
