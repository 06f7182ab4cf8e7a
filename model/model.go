/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

// Model is the capability that marks a type as a persisted entity.
// Discovery registers every concrete registered type implementing it;
// the rest of the persistence layer keys its behavior off the table
// name the type declares for itself.
type Model interface {
	// TableName returns the storage table backing this entity type.
	TableName() string
}
