/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"fmt"
	"os"
	"strings"

	"github.com/suparena/modelstore/typeloader"
)

// Environment variable names for building a Context outside explicit
// configuration (development tools, integration tests).
const (
	// EnvPackage is the application package namespace, e.g. "com.acme.app".
	EnvPackage = "MODELSTORE_PACKAGE"

	// EnvSource is the path of the primary compiled artifact.
	EnvSource = "MODELSTORE_SOURCE"

	// EnvData is the application's private data directory.
	EnvData = "MODELSTORE_DATA"

	// EnvResourceRoots is a path-list of walk roots for the directory
	// fallback, separated by the platform list separator.
	EnvResourceRoots = "MODELSTORE_RESOURCE_ROOTS"
)

// Context describes the deployment a discovery pass runs against.
type Context struct {
	// PackageName is the application's package namespace. Fallback name
	// reconstruction keeps only the part of a candidate from this
	// namespace onward.
	PackageName string

	// SourceDir is the path of the primary compiled artifact.
	SourceDir string

	// DataDir is the application's private data area, holding the
	// preference store and the secondary unit directory.
	DataDir string

	// ResourceRoots are the walk roots used by the directory fallback
	// in restricted and test environments.
	ResourceRoots []string

	// Loader resolves candidate names to registered types.
	Loader *typeloader.Loader
}

// ContextFromEnv builds a Context from MODELSTORE_* environment
// variables. Callers that keep deployment settings in a .env file can
// load it first (godotenv) the way the integration tooling does.
func ContextFromEnv(loader *typeloader.Loader) (*Context, error) {
	pkg := os.Getenv(EnvPackage)
	if pkg == "" {
		return nil, fmt.Errorf("%s is not set", EnvPackage)
	}

	ctx := &Context{
		PackageName: pkg,
		SourceDir:   os.Getenv(EnvSource),
		DataDir:     os.Getenv(EnvData),
		Loader:      loader,
	}

	if roots := os.Getenv(EnvResourceRoots); roots != "" {
		ctx.ResourceRoots = strings.Split(roots, string(os.PathListSeparator))
	}

	return ctx, nil
}
