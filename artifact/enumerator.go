/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package artifact

import (
	"archive/zip"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Compiled-output markers used by the directory walk fallback.
const (
	markerBin     = "bin"
	markerClasses = "classes"
)

// Enumerator produces the candidate type names contained in one
// resolved code unit location. Packed units yield fully-qualified
// names directly; the directory fallback yields filesystem paths that
// the classifier reconstructs names from.
type Enumerator interface {
	Candidates() ([]string, error)
}

// ForPath selects the enumeration strategy for a location: a packed
// binary container when the location is a file, or the resource-root
// walk fallback when it is a directory (restricted and test
// environments run from unpacked output trees).
func ForPath(path string, resourceRoots []string) Enumerator {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return &walkEnumerator{roots: resourceRoots}
	}
	return &containerEnumerator{path: path}
}

// containerEnumerator reads a packed code unit as a zip container.
// Every entry is stored under its fully-qualified type name.
type containerEnumerator struct {
	path string
}

func (c *containerEnumerator) Candidates() ([]string, error) {
	r, err := zip.OpenReader(c.path)
	if err != nil {
		return nil, fmt.Errorf("opening code unit %s: %w", c.path, err)
	}
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names, nil
}

// walkEnumerator walks the execution environment's resource roots and
// collects file paths under compiled-output locations. A best-effort
// substitute for container introspection: unreadable subtrees
// contribute nothing rather than failing the walk.
type walkEnumerator struct {
	roots []string
}

func (w *walkEnumerator) Candidates() ([]string, error) {
	var candidates []string

	for _, root := range w.roots {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if strings.Contains(path, markerBin) || strings.Contains(path, markerClasses) {
				candidates = append(candidates, path)
			}
			return nil
		})
	}

	return candidates, nil
}
