/*
Package model declares the entity capability.

A type becomes discoverable as an entity by implementing Model and
registering a type reference with a typeloader.Loader:

	type Player struct {
	    ID   string
	    Name string
	}

	func (Player) TableName() string { return "players" }

	loader.MustRegister(typeloader.Ref[Player]("com.acme.app.Player"))

Embeddable base types that must never be registered themselves are
marked abstract on their reference (typeloader.AbstractRef).
*/
package model
