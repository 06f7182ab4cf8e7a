/*
Package errors provides semantic error types for the model discovery pass.

The package distinguishes the single fatal discovery error from the
recoverable, per-item kinds. Errors can be checked with the standard
errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrMissingArtifact   = errors.New("missing secondary artifact")
	    ErrTypeNotFound      = errors.New("type not found")
	    ErrInvalidModel      = errors.New("invalid model type")
	    ErrInvalidSerializer = errors.New("invalid serializer type")
	)

ErrMissingArtifact aborts the whole pass; the other kinds are absorbed
by the scanner, which logs and moves on to the next candidate.

Usage:

	info, err := modelstore.New(cfg)
	if err != nil {
	    if errors.IsMissingArtifact(err) {
	        // Broken multi-part deployment; do not start the persistence layer.
	        return err
	    }
	    return err
	}

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
