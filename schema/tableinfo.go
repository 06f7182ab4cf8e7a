/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"reflect"

	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/model"
	"github.com/suparena/modelstore/typeloader"
)

// DefaultIDColumn is the identity column used when a model does not
// declare its own.
const DefaultIDColumn = "Id"

// TableInfo is the schema descriptor for one registered entity type.
// It is built exactly once per distinct type and is immutable after
// construction. Column mapping beyond the identity column is resolved
// by the query layer, not here.
type TableInfo struct {
	typ       reflect.Type
	typeName  string
	tableName string
	idColumn  string
}

// IDColumnProvider lets a model override the identity column name.
type IDColumnProvider interface {
	IDColumn() string
}

// NewTableInfo builds a TableInfo from a type reference. The reference
// must construct a value implementing model.Model with a non-empty
// table name.
func NewTableInfo(ref typeloader.TypeRef) (*TableInfo, error) {
	if ref.New == nil {
		return nil, errors.NewInvalidModelError(ref.Name, "reference has no constructor")
	}

	inst := ref.New()
	m, ok := inst.(model.Model)
	if !ok {
		return nil, errors.NewInvalidModelError(ref.Name, "does not implement model.Model")
	}

	tableName := m.TableName()
	if tableName == "" {
		return nil, errors.NewInvalidModelError(ref.Name, "empty table name")
	}

	idColumn := DefaultIDColumn
	if p, ok := inst.(IDColumnProvider); ok && p.IDColumn() != "" {
		idColumn = p.IDColumn()
	}

	return &TableInfo{
		typ:       ref.Type,
		typeName:  ref.Name,
		tableName: tableName,
		idColumn:  idColumn,
	}, nil
}

// Type returns the entity's Go type.
func (t *TableInfo) Type() reflect.Type {
	return t.typ
}

// TypeName returns the entity's fully-qualified registered name.
func (t *TableInfo) TypeName() string {
	return t.typeName
}

// TableName returns the storage table backing the entity.
func (t *TableInfo) TableName() string {
	return t.tableName
}

// IDColumn returns the identity column name.
func (t *TableInfo) IDColumn() string {
	return t.idColumn
}
