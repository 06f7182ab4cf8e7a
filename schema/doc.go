/*
Package schema builds schema descriptors for registered entity types.

A TableInfo captures what the registry needs about one entity: its Go
type, its registered name, the backing table, and the identity column.
It is constructed from a typeloader.TypeRef exactly once per type
during the discovery pass and never mutated afterward.
*/
package schema
