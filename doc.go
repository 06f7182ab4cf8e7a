/*
Package modelstore builds the type registries a persistence layer
starts from: which entity types exist and which serializer handles
each value type.

The registries come from one of two paths. A valid Configuration
declares both lists explicitly:

	cfg := &modelstore.Configuration{
	    Valid: true,
	    Models: []typeloader.TypeRef{
	        typeloader.Ref[Player]("com.acme.app.Player"),
	    },
	    Serializers: []typeloader.TypeRef{
	        typeloader.Ref[ColorSerializer]("com.acme.app.ColorSerializer"),
	    },
	}
	info, err := modelstore.New(cfg)

Without a valid configuration, the deployment's compiled code units
are located and scanned for registered types carrying the model or
serializer capability:

	cfg := &modelstore.Configuration{Context: &modelstore.Context{
	    PackageName: "com.acme.app",
	    SourceDir:   "/data/app/base.apk",
	    DataDir:     "/data/data/com.acme.app",
	    Loader:      loader,
	}}
	info, err := modelstore.New(cfg, modelstore.WithLogger(log))

Lookups are read-only after construction and safe for concurrent use:

	ti, ok := modelstore.TableInfoFor[Player](info)
	s, ok := modelstore.SerializerFor[time.Time](info)

A missing expected secondary artifact is the one fatal discovery
error; every other failure skips a single candidate or location and is
visible through the optional logger. Built-in serializers for
time.Time, strfmt.Date, strfmt.DateTime and storagemodels.FileRef are
present before either path runs.
*/
package modelstore
