/*
Package storagemodels defines value wrapper types used by persisted models.

Key Types:

FileRef:
A filesystem reference persisted as its path string:

	type Attachment struct {
	    ID   string
	    Data storagemodels.FileRef
	}

	ref := storagemodels.NewFileRef("/var/lib/app/uploads/1.png")
	ref.Path() // "/var/lib/app/uploads/1.png"
	ref.Base() // "1.png"

FileRef has a built-in serializer registered before discovery runs, so
model fields of this type round-trip without any application-provided
TypeSerializer.
*/
package storagemodels
