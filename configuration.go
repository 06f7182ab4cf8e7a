/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"go.uber.org/zap"

	"github.com/suparena/modelstore/schema"
	"github.com/suparena/modelstore/typeloader"
)

// Configuration is the caller-supplied input to registry construction.
// A valid configuration declares the full set of entity and serializer
// types and bypasses artifact scanning entirely; an invalid or absent
// one triggers the discovery pass instead. The subsystem only reads it.
type Configuration struct {
	// Context is the deployment discovery runs against when the
	// configuration is not valid.
	Context *Context

	// Valid reports whether the declared lists below are authoritative.
	Valid bool

	// Models are the declared entity type references, in order.
	Models []typeloader.TypeRef

	// Serializers are the declared serializer type references, in order.
	Serializers []typeloader.TypeRef
}

// loadFromConfiguration populates the registries from the declared
// lists. It returns false when the configuration is not valid, in
// which case nothing was touched and scanning should run instead.
//
// A declared entity type whose descriptor cannot be built is a caller
// error and surfaces directly; a declared serializer that cannot be
// instantiated is logged and skipped, and the rest of the list is
// still applied.
func (m *ModelInfo) loadFromConfiguration(cfg *Configuration) (bool, error) {
	if !cfg.Valid {
		return false, nil
	}

	for _, ref := range cfg.Models {
		ti, err := schema.NewTableInfo(ref)
		if err != nil {
			return true, err
		}
		m.tableInfos[ref.Type] = ti
	}

	for _, ref := range cfg.Serializers {
		if err := m.registerSerializer(ref); err != nil {
			m.log.Warn("could not instantiate declared serializer",
				zap.String("type", ref.Name), zap.Error(err))
		}
	}

	return true, nil
}
