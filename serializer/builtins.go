/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package serializer

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/modelstore/storagemodels"
)

// TimeSerializer handles time.Time values, stored as unix milliseconds.
type TimeSerializer struct{}

func (TimeSerializer) DeserializedType() reflect.Type {
	return reflect.TypeOf(time.Time{})
}

func (TimeSerializer) SerializedType() reflect.Type {
	return reflect.TypeOf(int64(0))
}

func (TimeSerializer) Serialize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return nil, fmt.Errorf("time serializer: expected time.Time, got %T", value)
	}
	return t.UnixMilli(), nil
}

func (TimeSerializer) Deserialize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	ms, ok := value.(int64)
	if !ok {
		return nil, fmt.Errorf("time serializer: expected int64, got %T", value)
	}
	return time.UnixMilli(ms).UTC(), nil
}

// DateSerializer handles strfmt.Date values, stored as RFC3339 full-date strings.
type DateSerializer struct{}

func (DateSerializer) DeserializedType() reflect.Type {
	return reflect.TypeOf(strfmt.Date{})
}

func (DateSerializer) SerializedType() reflect.Type {
	return reflect.TypeOf("")
}

func (DateSerializer) Serialize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	d, ok := value.(strfmt.Date)
	if !ok {
		return nil, fmt.Errorf("date serializer: expected strfmt.Date, got %T", value)
	}
	return d.String(), nil
}

func (DateSerializer) Deserialize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("date serializer: expected string, got %T", value)
	}
	var d strfmt.Date
	if err := d.UnmarshalText([]byte(s)); err != nil {
		return nil, fmt.Errorf("date serializer: %w", err)
	}
	return d, nil
}

// DateTimeSerializer handles strfmt.DateTime values, stored as RFC3339 strings.
type DateTimeSerializer struct{}

func (DateTimeSerializer) DeserializedType() reflect.Type {
	return reflect.TypeOf(strfmt.DateTime{})
}

func (DateTimeSerializer) SerializedType() reflect.Type {
	return reflect.TypeOf("")
}

func (DateTimeSerializer) Serialize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	dt, ok := value.(strfmt.DateTime)
	if !ok {
		return nil, fmt.Errorf("datetime serializer: expected strfmt.DateTime, got %T", value)
	}
	return dt.String(), nil
}

func (DateTimeSerializer) Deserialize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("datetime serializer: expected string, got %T", value)
	}
	dt, err := strfmt.ParseDateTime(s)
	if err != nil {
		return nil, fmt.Errorf("datetime serializer: %w", err)
	}
	return dt, nil
}

// FileRefSerializer handles storagemodels.FileRef values, stored as path strings.
type FileRefSerializer struct{}

func (FileRefSerializer) DeserializedType() reflect.Type {
	return reflect.TypeOf(storagemodels.FileRef(""))
}

func (FileRefSerializer) SerializedType() reflect.Type {
	return reflect.TypeOf("")
}

func (FileRefSerializer) Serialize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	ref, ok := value.(storagemodels.FileRef)
	if !ok {
		return nil, fmt.Errorf("fileref serializer: expected storagemodels.FileRef, got %T", value)
	}
	return ref.Path(), nil
}

func (FileRefSerializer) Deserialize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("fileref serializer: expected string, got %T", value)
	}
	return storagemodels.NewFileRef(s), nil
}
