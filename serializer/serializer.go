/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package serializer

import "reflect"

// TypeSerializer converts values of one model field type to and from
// their storage representation. Implementations declare the value type
// they handle; the serializer registry is keyed by that type, and a
// later registration for the same type replaces the earlier one.
type TypeSerializer interface {
	// DeserializedType returns the model-side value type this serializer handles.
	DeserializedType() reflect.Type

	// SerializedType returns the storage-side representation type.
	SerializedType() reflect.Type

	// Serialize converts a model value to its storage representation.
	Serialize(value any) (any, error)

	// Deserialize converts a storage representation back to the model value.
	Deserialize(value any) (any, error)
}
