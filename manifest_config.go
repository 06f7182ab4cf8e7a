/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/suparena/modelstore/manifest"
)

// ConfigurationFromManifest resolves a build-time manifest into a
// valid Configuration, so startup skips artifact scanning entirely.
//
// Manifest model names are caller-declared: one that does not resolve
// through the context's loader is an error. Serializer names follow
// the declared-serializer policy instead, logged and skipped. Pass a
// nil logger to silence the skips.
func ConfigurationFromManifest(ctx *Context, path string, log *zap.Logger) (*Configuration, error) {
	if ctx == nil || ctx.Loader == nil {
		return nil, fmt.Errorf("manifest resolution requires a deployment context with a loader")
	}
	if log == nil {
		log = zap.NewNop()
	}

	man, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}

	cfg := &Configuration{Context: ctx, Valid: true}

	for _, name := range man.Models {
		ref, err := ctx.Loader.Load(name)
		if err != nil {
			return nil, fmt.Errorf("resolving manifest model: %w", err)
		}
		cfg.Models = append(cfg.Models, ref)
	}

	for _, name := range man.Serializers {
		ref, err := ctx.Loader.Load(name)
		if err != nil {
			log.Warn("skipping unresolved manifest serializer",
				zap.String("type", name), zap.Error(err))
			continue
		}
		cfg.Serializers = append(cfg.Serializers, ref)
	}

	return cfg, nil
}
