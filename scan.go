/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/suparena/modelstore/artifact"
	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/model"
	"github.com/suparena/modelstore/schema"
	"github.com/suparena/modelstore/serializer"
)

// classSuffix marks a compiled unit file in the directory fallback.
const classSuffix = ".class"

// scan runs the discovery pass: locate code units, enumerate their
// candidates, classify each one. Locator failure is fatal; every later
// stage degrades per item.
func (m *ModelInfo) scan(ctx *Context) error {
	if ctx == nil || ctx.Loader == nil {
		m.log.Warn("no deployment context; nothing to scan")
		return nil
	}

	paths, err := artifact.SourcePaths(ctx.SourceDir, ctx.DataDir)
	if err != nil {
		return fmt.Errorf("locating code units: %w", err)
	}

	for _, path := range paths {
		en := artifact.ForPath(path, ctx.ResourceRoots)
		candidates, err := en.Candidates()
		if err != nil {
			m.log.Warn("skipping unreadable code unit",
				zap.String("path", path), zap.Error(err))
			continue
		}
		for _, candidate := range candidates {
			m.classify(ctx, candidate)
		}
	}

	return nil
}

// classify resolves one candidate and registers it if it carries the
// entity or serializer capability. No failure here aborts the pass.
func (m *ModelInfo) classify(ctx *Context, candidate string) {
	name, ok := canonicalName(candidate, ctx.PackageName)
	if !ok {
		m.log.Debug("candidate outside application namespace",
			zap.String("candidate", candidate))
		return
	}

	ref, err := ctx.Loader.Load(name)
	if err != nil {
		if errors.IsTypeNotFound(err) {
			// Most candidates in a real deployment are not registered
			// types; that is the expected case, not a fault.
			m.log.Debug("candidate not registered", zap.String("type", name))
		} else {
			m.log.Warn("could not load type", zap.String("type", name), zap.Error(err))
		}
		return
	}

	inst := ref.New()
	if _, isModel := inst.(model.Model); isModel && !ref.Abstract {
		if _, exists := m.tableInfos[ref.Type]; exists {
			return
		}
		ti, err := schema.NewTableInfo(ref)
		if err != nil {
			m.log.Warn("could not build table info", zap.String("type", name), zap.Error(err))
			return
		}
		m.tableInfos[ref.Type] = ti
	} else if ser, isSerializer := inst.(serializer.TypeSerializer); isSerializer {
		m.serializers[ser.DeserializedType()] = ser
	}
}

// canonicalName turns a candidate into a loadable fully-qualified
// name. Packed-unit entries are already such names. Fallback-mode
// candidates are filesystem paths: the compiled-unit suffix is
// stripped, separators become namespace dots, and only the part from
// the application's package name onward is kept. Candidates outside
// the namespace, or without the suffix, are not names at all.
func canonicalName(candidate, packageName string) (string, bool) {
	if !strings.ContainsRune(candidate, os.PathSeparator) && !strings.Contains(candidate, "/") {
		return candidate, true
	}

	if !strings.HasSuffix(candidate, classSuffix) {
		return "", false
	}

	name := strings.TrimSuffix(candidate, classSuffix)
	name = strings.ReplaceAll(name, string(os.PathSeparator), ".")
	name = strings.ReplaceAll(name, "/", ".")

	idx := strings.Index(name, packageName)
	if idx < 0 {
		return "", false
	}
	return name[idx:], true
}
