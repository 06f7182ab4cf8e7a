/*
Package serializer declares the type serializer capability and the
built-in serializers.

A TypeSerializer converts one model field type to and from its storage
representation. Applications add their own by implementing the
interface and registering the type with the loader:

	type ColorSerializer struct{}

	func (ColorSerializer) DeserializedType() reflect.Type { return reflect.TypeOf(Color{}) }
	func (ColorSerializer) SerializedType() reflect.Type   { return reflect.TypeOf("") }
	func (ColorSerializer) Serialize(v any) (any, error)   { ... }
	func (ColorSerializer) Deserialize(v any) (any, error) { ... }

	loader.MustRegister(typeloader.Ref[ColorSerializer]("com.acme.app.ColorSerializer"))

Built-in serializers cover time.Time, strfmt.Date, strfmt.DateTime and
storagemodels.FileRef. They are present before any discovery runs; a
discovered or declared serializer for the same value type replaces the
built-in.
*/
package serializer
