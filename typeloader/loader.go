/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package typeloader

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/suparena/modelstore/errors"
)

// TypeRef is a loadable reference to a registered type. It carries
// everything discovery needs without forcing instantiation: the
// fully-qualified name candidates resolve to, the Go type keying the
// registries, and a constructor used only once a candidate is
// classified.
type TypeRef struct {
	// Name is the fully-qualified type name, e.g. "com.acme.app.Player".
	Name string
	// Type is the value type backing the reference.
	Type reflect.Type
	// New constructs a fresh instance (a pointer to the value type).
	New func() any
	// Abstract marks embeddable base types that are never registered
	// as entities themselves.
	Abstract bool
}

// Ref builds a TypeRef for T under the given fully-qualified name.
func Ref[T any](name string) TypeRef {
	return TypeRef{
		Name: name,
		Type: reflect.TypeOf((*T)(nil)).Elem(),
		New:  func() any { return new(T) },
	}
}

// AbstractRef builds a TypeRef for an embeddable base type. Abstract
// references are loadable but never inserted into the entity registry.
func AbstractRef[T any](name string) TypeRef {
	ref := Ref[T](name)
	ref.Abstract = true
	return ref
}

// Loader resolves fully-qualified type names to registered TypeRefs.
// It is the deployment's type loading facility: applications register
// their types at init time (or through generated code), and discovery
// asks the loader for each candidate name it finds. Load performs a
// lookup only; no initialization side effects run.
type Loader struct {
	mu   sync.RWMutex
	refs map[string]TypeRef
}

// NewLoader creates an empty Loader.
func NewLoader() *Loader {
	return &Loader{refs: make(map[string]TypeRef)}
}

// Register adds a type reference under its name.
// Registering a name twice is an error to prevent accidental overrides.
func (l *Loader) Register(ref TypeRef) error {
	if ref.Name == "" {
		return fmt.Errorf("type loader: reference has no name")
	}
	if ref.New == nil || ref.Type == nil {
		return fmt.Errorf("type loader: reference %q has no constructor", ref.Name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.refs[ref.Name]; exists {
		return fmt.Errorf("type loader: type %q already registered", ref.Name)
	}
	l.refs[ref.Name] = ref
	return nil
}

// MustRegister registers a type reference and panics on failure.
// Intended for init-time and generated registration code.
func (l *Loader) MustRegister(ref TypeRef) {
	if err := l.Register(ref); err != nil {
		panic(err)
	}
}

// Load returns the reference registered under name.
// Returns an UnknownTypeError when the name is not registered.
func (l *Loader) Load(name string) (TypeRef, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ref, ok := l.refs[name]
	if !ok {
		return TypeRef{}, errors.NewUnknownTypeError(name)
	}
	return ref, nil
}

// Names returns the sorted list of registered type names.
func (l *Loader) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.refs))
	for name := range l.refs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered references.
func (l *Loader) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.refs)
}
