/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/suparena/modelstore/errors"
)

// Deployment layout conventions for multi-part artifacts.
const (
	// PrefsFile is the preference store holding the unit counter.
	PrefsFile = "multidex.version"

	// KeyUnitCount is the counter key inside the preference store.
	KeyUnitCount = "dex.number"

	// extractedNameExt and extractedSuffix form the secondary unit
	// naming scheme: <primary-name>.classes<N>.zip.
	extractedNameExt = ".classes"
	extractedSuffix  = ".zip"

	prefsFileType = "yaml"
)

// SecondaryDir returns the fixed secondary-unit storage directory under
// the application's private data area.
func SecondaryDir(dataDir string) string {
	return filepath.Join(dataDir, "code_cache", "secondary-dexes")
}

// UnitCount reads the persisted secondary-unit counter from the
// preference store in dataDir. The counter is written by the
// multi-part deployment tooling; here it is only read. A missing
// store, or any value below 1, behaves as 1 (no secondary units).
func UnitCount(dataDir string) int {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dataDir, PrefsFile+"."+prefsFileType))
	v.SetConfigType(prefsFileType)
	v.SetDefault(KeyUnitCount, 1)

	if err := v.ReadInConfig(); err != nil {
		// No preference store means a single-unit deployment.
		return 1
	}

	count := v.GetInt(KeyUnitCount)
	if count < 1 {
		return 1
	}
	return count
}

// SourcePaths resolves the ordered list of compiled code unit locations
// for the deployment: the primary artifact first, then every expected
// secondary unit in ascending sequence number.
//
// A secondary unit that the counter promises but the disk lacks is a
// broken deployment: SourcePaths fails immediately with a
// MissingArtifactError naming the expected path. This is the one fatal
// error of the discovery pass.
func SourcePaths(sourceDir, dataDir string) ([]string, error) {
	paths := []string{sourceDir}

	count := UnitCount(dataDir)
	dexDir := SecondaryDir(dataDir)
	prefix := filepath.Base(sourceDir) + extractedNameExt

	for n := 2; n <= count; n++ {
		name := fmt.Sprintf("%s%d%s", prefix, n, extractedSuffix)
		path := filepath.Join(dexDir, name)

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return nil, errors.NewMissingArtifactError(path)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
