/*
Package manifest parses build-time listings of discoverable types.

A manifest is the ahead-of-time alternative to scanning deployed code
units: build tooling emits the names of every entity and serializer
type, and startup resolves them through the type loader directly.

Format:

	models:
	  - com.acme.app.Player
	  - com.acme.app.Match
	serializers:
	  - com.acme.app.ColorSerializer

See modelstore.ConfigurationFromManifest for turning a manifest into a
valid Configuration.
*/
package manifest
