/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"reflect"
	"sort"

	"go.uber.org/zap"

	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/schema"
	"github.com/suparena/modelstore/serializer"
	"github.com/suparena/modelstore/typeloader"
)

// ModelInfo holds the two registries the persistence layer is built
// on: entity type to schema descriptor, and value type to serializer
// instance. Both are populated in a single pass by New and are
// read-only afterward, so any number of readers may use a ModelInfo
// concurrently without locking.
type ModelInfo struct {
	log *zap.Logger

	tableInfos  map[reflect.Type]*schema.TableInfo
	serializers map[reflect.Type]serializer.TypeSerializer
}

// New builds the registries from the given configuration.
//
// A valid configuration populates both registries directly from its
// declared lists. Otherwise the deployment's code units are located,
// enumerated and classified; per-candidate failures are logged and
// skipped, and only a missing expected secondary artifact fails the
// whole pass.
//
// The built-in serializers are present in either path before any
// declared or discovered serializer is applied.
func New(cfg *Configuration, opts ...Option) (*ModelInfo, error) {
	m := &ModelInfo{
		log:         zap.NewNop(),
		tableInfos:  make(map[reflect.Type]*schema.TableInfo),
		serializers: defaultSerializers(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if cfg == nil {
		cfg = &Configuration{}
	}

	loaded, err := m.loadFromConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	if !loaded {
		if err := m.scan(cfg.Context); err != nil {
			return nil, err
		}
	}

	m.log.Info("model info loaded",
		zap.Int("models", len(m.tableInfos)),
		zap.Int("serializers", len(m.serializers)))
	return m, nil
}

// defaultSerializers returns the built-in serializer set. Invoked once
// per construction so no mutable module-level state is shared between
// ModelInfo instances.
func defaultSerializers() map[reflect.Type]serializer.TypeSerializer {
	builtins := []serializer.TypeSerializer{
		serializer.TimeSerializer{},
		serializer.DateSerializer{},
		serializer.DateTimeSerializer{},
		serializer.FileRefSerializer{},
	}

	m := make(map[reflect.Type]serializer.TypeSerializer, len(builtins))
	for _, s := range builtins {
		m[s.DeserializedType()] = s
	}
	return m
}

// registerSerializer instantiates a serializer reference and registers
// it under the value type it declares it handles. A later registration
// for the same value type replaces the earlier one.
func (m *ModelInfo) registerSerializer(ref typeloader.TypeRef) error {
	if ref.New == nil {
		return errors.NewInvalidSerializerError(ref.Name, "reference has no constructor")
	}

	inst := ref.New()
	ser, ok := inst.(serializer.TypeSerializer)
	if !ok {
		return errors.NewInvalidSerializerError(ref.Name, "does not implement serializer.TypeSerializer")
	}

	m.serializers[ser.DeserializedType()] = ser
	return nil
}

// TableInfo returns the schema descriptor registered for the given
// entity type, or false when the type is not registered.
func (m *ModelInfo) TableInfo(t reflect.Type) (*schema.TableInfo, bool) {
	ti, ok := m.tableInfos[t]
	return ti, ok
}

// TableInfos returns all registered schema descriptors, ordered by
// type name.
func (m *ModelInfo) TableInfos() []*schema.TableInfo {
	infos := make([]*schema.TableInfo, 0, len(m.tableInfos))
	for _, ti := range m.tableInfos {
		infos = append(infos, ti)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].TypeName() < infos[j].TypeName()
	})
	return infos
}

// TypeSerializer returns the serializer registered for the given value
// type, or false when none handles it.
func (m *ModelInfo) TypeSerializer(t reflect.Type) (serializer.TypeSerializer, bool) {
	s, ok := m.serializers[t]
	return s, ok
}

// TableInfoFor is a convenience lookup by Go type parameter.
func TableInfoFor[T any](m *ModelInfo) (*schema.TableInfo, bool) {
	return m.TableInfo(reflect.TypeOf((*T)(nil)).Elem())
}

// SerializerFor is a convenience lookup by Go type parameter.
func SerializerFor[T any](m *ModelInfo) (serializer.TypeSerializer, bool) {
	return m.TypeSerializer(reflect.TypeOf((*T)(nil)).Elem())
}
