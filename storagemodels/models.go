/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import "path/filepath"

// FileRef is a reference to a file on disk, persisted by its path.
// Models use it for fields that point at local resources; the built-in
// serializer stores the path string and never touches the filesystem.
type FileRef string

// NewFileRef creates a FileRef from a path.
func NewFileRef(path string) FileRef {
	return FileRef(path)
}

// Path returns the referenced path.
func (f FileRef) Path() string {
	return string(f)
}

// Base returns the last element of the referenced path.
func (f FileRef) Base() string {
	return filepath.Base(string(f))
}

// IsAbs reports whether the reference holds an absolute path.
func (f FileRef) IsAbs() bool {
	return filepath.IsAbs(string(f))
}
