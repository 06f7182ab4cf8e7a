/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrMissingArtifact is returned when an expected secondary artifact is absent.
	// It is the one fatal error of the discovery pass: a missing unit means a
	// broken multi-part deployment, not a recoverable anomaly.
	ErrMissingArtifact = errors.New("missing secondary artifact")

	// ErrTypeNotFound is returned when a type name is not registered with the loader
	ErrTypeNotFound = errors.New("type not found")

	// ErrInvalidModel is returned when a table info cannot be built from a type reference
	ErrInvalidModel = errors.New("invalid model type")

	// ErrInvalidSerializer is returned when a declared serializer cannot be instantiated
	ErrInvalidSerializer = errors.New("invalid serializer type")
)

// MissingArtifactError reports an expected secondary artifact that is not on disk
type MissingArtifactError struct {
	Path string
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("missing extracted secondary artifact %q", e.Path)
}

func (e *MissingArtifactError) Is(target error) bool {
	return target == ErrMissingArtifact
}

// UnknownTypeError reports a type name with no registered reference
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("no type registered for name %q", e.Name)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrTypeNotFound
}

// InvalidModelError reports a type reference that cannot back a table info
type InvalidModelError struct {
	Name   string
	Reason string
}

func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("type %q cannot be used as a model: %s", e.Name, e.Reason)
}

func (e *InvalidModelError) Is(target error) bool {
	return target == ErrInvalidModel
}

// InvalidSerializerError reports a type reference that does not produce a TypeSerializer
type InvalidSerializerError struct {
	Name   string
	Reason string
}

func (e *InvalidSerializerError) Error() string {
	return fmt.Sprintf("type %q cannot be used as a serializer: %s", e.Name, e.Reason)
}

func (e *InvalidSerializerError) Is(target error) bool {
	return target == ErrInvalidSerializer
}

// Helper functions for creating errors

// NewMissingArtifactError creates a new MissingArtifactError
func NewMissingArtifactError(path string) error {
	return &MissingArtifactError{Path: path}
}

// NewUnknownTypeError creates a new UnknownTypeError
func NewUnknownTypeError(name string) error {
	return &UnknownTypeError{Name: name}
}

// NewInvalidModelError creates a new InvalidModelError
func NewInvalidModelError(name, reason string) error {
	return &InvalidModelError{Name: name, Reason: reason}
}

// NewInvalidSerializerError creates a new InvalidSerializerError
func NewInvalidSerializerError(name, reason string) error {
	return &InvalidSerializerError{Name: name, Reason: reason}
}

// IsMissingArtifact checks if an error is a missing artifact error
func IsMissingArtifact(err error) bool {
	return errors.Is(err, ErrMissingArtifact)
}

// IsTypeNotFound checks if an error is a type not found error
func IsTypeNotFound(err error) bool {
	return errors.Is(err, ErrTypeNotFound)
}

// IsInvalidModel checks if an error is an invalid model error
func IsInvalidModel(err error) bool {
	return errors.Is(err, ErrInvalidModel)
}

// IsInvalidSerializer checks if an error is an invalid serializer error
func IsInvalidSerializer(err error) bool {
	return errors.Is(err, ErrInvalidSerializer)
}
