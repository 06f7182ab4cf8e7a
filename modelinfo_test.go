/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"reflect"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/storagemodels"
	"github.com/suparena/modelstore/typeloader"
)

// Test fixtures shared across the package tests.

type testPlayer struct {
	ID string
}

func (testPlayer) TableName() string { return "players" }

type testMatch struct {
	ID string
}

func (testMatch) TableName() string { return "matches" }

// testBase is an embeddable base entity; always registered abstract.
type testBase struct{}

func (testBase) TableName() string { return "base" }

type testColor struct {
	R, G, B uint8
}

// colorSerializer handles testColor values.
type colorSerializer struct{}

func (colorSerializer) DeserializedType() reflect.Type { return reflect.TypeOf(testColor{}) }
func (colorSerializer) SerializedType() reflect.Type   { return reflect.TypeOf("") }
func (colorSerializer) Serialize(v any) (any, error)   { return "", nil }
func (colorSerializer) Deserialize(v any) (any, error) { return testColor{}, nil }

// altColorSerializer also handles testColor values.
type altColorSerializer struct{}

func (altColorSerializer) DeserializedType() reflect.Type { return reflect.TypeOf(testColor{}) }
func (altColorSerializer) SerializedType() reflect.Type   { return reflect.TypeOf(0) }
func (altColorSerializer) Serialize(v any) (any, error)   { return 0, nil }
func (altColorSerializer) Deserialize(v any) (any, error) { return testColor{}, nil }

// customTimeSerializer replaces the built-in time.Time handling.
type customTimeSerializer struct{}

func (customTimeSerializer) DeserializedType() reflect.Type { return reflect.TypeOf(time.Time{}) }
func (customTimeSerializer) SerializedType() reflect.Type   { return reflect.TypeOf("") }
func (customTimeSerializer) Serialize(v any) (any, error)   { return "", nil }
func (customTimeSerializer) Deserialize(v any) (any, error) { return time.Time{}, nil }

// plainType carries neither capability.
type plainType struct{}

func TestBuiltinsPresentWithEmptyConfiguration(t *testing.T) {
	info, err := New(&Configuration{})
	require.NoError(t, err)

	for _, typ := range []reflect.Type{
		reflect.TypeOf(time.Time{}),
		reflect.TypeOf(strfmt.Date{}),
		reflect.TypeOf(strfmt.DateTime{}),
		reflect.TypeOf(storagemodels.FileRef("")),
	} {
		_, ok := info.TypeSerializer(typ)
		assert.True(t, ok, "expected built-in serializer for %v", typ)
	}

	assert.Empty(t, info.TableInfos())
}

func TestNilConfiguration(t *testing.T) {
	info, err := New(nil)
	require.NoError(t, err)

	_, ok := SerializerFor[time.Time](info)
	assert.True(t, ok)
}

func TestValidConfigurationPopulatesModels(t *testing.T) {
	cfg := &Configuration{
		Valid: true,
		Models: []typeloader.TypeRef{
			typeloader.Ref[testPlayer]("com.acme.app.Player"),
			typeloader.Ref[testMatch]("com.acme.app.Match"),
		},
	}

	info, err := New(cfg)
	require.NoError(t, err)

	infos := info.TableInfos()
	require.Len(t, infos, 2)
	assert.Equal(t, "com.acme.app.Match", infos[0].TypeName())
	assert.Equal(t, "com.acme.app.Player", infos[1].TypeName())

	ti, ok := TableInfoFor[testPlayer](info)
	require.True(t, ok)
	assert.Equal(t, "players", ti.TableName())
}

func TestValidConfigurationModelErrorIsFatal(t *testing.T) {
	cfg := &Configuration{
		Valid: true,
		Models: []typeloader.TypeRef{
			typeloader.Ref[plainType]("com.acme.app.Plain"),
		},
	}

	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidModel(err))
}

func TestValidConfigurationSkipsBadSerializer(t *testing.T) {
	cfg := &Configuration{
		Valid: true,
		Serializers: []typeloader.TypeRef{
			typeloader.Ref[plainType]("com.acme.app.Plain"),
			typeloader.Ref[colorSerializer]("com.acme.app.ColorSerializer"),
		},
	}

	info, err := New(cfg)
	require.NoError(t, err)

	// The bad declaration is skipped, the good one still lands.
	_, ok := SerializerFor[testColor](info)
	assert.True(t, ok)
}

func TestSerializerLastWriterWins(t *testing.T) {
	cfg := &Configuration{
		Valid: true,
		Serializers: []typeloader.TypeRef{
			typeloader.Ref[colorSerializer]("com.acme.app.ColorSerializer"),
			typeloader.Ref[altColorSerializer]("com.acme.app.AltColorSerializer"),
		},
	}

	info, err := New(cfg)
	require.NoError(t, err)

	s, ok := SerializerFor[testColor](info)
	require.True(t, ok)
	assert.IsType(t, &altColorSerializer{}, s)
}

func TestDeclaredSerializerOverridesBuiltin(t *testing.T) {
	cfg := &Configuration{
		Valid: true,
		Serializers: []typeloader.TypeRef{
			typeloader.Ref[customTimeSerializer]("com.acme.app.TimeSerializer"),
		},
	}

	info, err := New(cfg)
	require.NoError(t, err)

	s, ok := SerializerFor[time.Time](info)
	require.True(t, ok)
	assert.IsType(t, &customTimeSerializer{}, s)
}

func TestRegistriesAreDisjoint(t *testing.T) {
	cfg := &Configuration{
		Valid: true,
		Models: []typeloader.TypeRef{
			typeloader.Ref[testPlayer]("com.acme.app.Player"),
		},
		Serializers: []typeloader.TypeRef{
			typeloader.Ref[colorSerializer]("com.acme.app.ColorSerializer"),
		},
	}

	info, err := New(cfg)
	require.NoError(t, err)

	_, ok := SerializerFor[testPlayer](info)
	assert.False(t, ok, "entity type must not appear in the serializer registry")
	_, ok = TableInfoFor[colorSerializer](info)
	assert.False(t, ok, "serializer type must not appear in the entity registry")
}
