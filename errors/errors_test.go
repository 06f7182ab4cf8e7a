/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestMissingArtifactError(t *testing.T) {
	err := NewMissingArtifactError("/data/app/code_cache/secondary-dexes/base.apk.classes2.zip")

	// Test error message
	expected := `missing extracted secondary artifact "/data/app/code_cache/secondary-dexes/base.apk.classes2.zip"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrMissingArtifact) {
		t.Error("MissingArtifactError should match ErrMissingArtifact")
	}

	// Test helper function
	if !IsMissingArtifact(err) {
		t.Error("IsMissingArtifact should return true for MissingArtifactError")
	}
}

func TestUnknownTypeError(t *testing.T) {
	err := NewUnknownTypeError("com.acme.app.Player")

	expected := `no type registered for name "com.acme.app.Player"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrTypeNotFound) {
		t.Error("UnknownTypeError should match ErrTypeNotFound")
	}

	if !IsTypeNotFound(err) {
		t.Error("IsTypeNotFound should return true for UnknownTypeError")
	}
}

func TestInvalidModelError(t *testing.T) {
	err := NewInvalidModelError("com.acme.app.Widget", "no table name")

	expected := `type "com.acme.app.Widget" cannot be used as a model: no table name`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrInvalidModel) {
		t.Error("InvalidModelError should match ErrInvalidModel")
	}

	if !IsInvalidModel(err) {
		t.Error("IsInvalidModel should return true for InvalidModelError")
	}
}

func TestInvalidSerializerError(t *testing.T) {
	err := NewInvalidSerializerError("com.acme.app.ColorSerializer", "does not implement TypeSerializer")

	expected := `type "com.acme.app.ColorSerializer" cannot be used as a serializer: does not implement TypeSerializer`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrInvalidSerializer) {
		t.Error("InvalidSerializerError should match ErrInvalidSerializer")
	}

	if !IsInvalidSerializer(err) {
		t.Error("IsInvalidSerializer should return true for InvalidSerializerError")
	}
}

func TestErrorWrapping(t *testing.T) {
	base := NewMissingArtifactError("/tmp/app.classes3.zip")
	wrapped := fmt.Errorf("locating source paths: %w", base)

	if !IsMissingArtifact(wrapped) {
		t.Error("IsMissingArtifact should see through wrapping")
	}

	var mae *MissingArtifactError
	if !errors.As(wrapped, &mae) {
		t.Fatal("errors.As should recover the MissingArtifactError")
	}
	if mae.Path != "/tmp/app.classes3.zip" {
		t.Errorf("Expected path %q, got %q", "/tmp/app.classes3.zip", mae.Path)
	}
}

func TestHelpersRejectOtherErrors(t *testing.T) {
	plain := errors.New("some other failure")

	if IsMissingArtifact(plain) {
		t.Error("IsMissingArtifact should be false for unrelated errors")
	}
	if IsTypeNotFound(plain) {
		t.Error("IsTypeNotFound should be false for unrelated errors")
	}
	if IsInvalidModel(plain) {
		t.Error("IsInvalidModel should be false for unrelated errors")
	}
	if IsInvalidSerializer(plain) {
		t.Error("IsInvalidSerializer should be false for unrelated errors")
	}
}
