/*
Package artifact resolves and enumerates the compiled code units of a
deployed application.

A deployment consists of a primary artifact plus zero or more secondary
units extracted next to the application's private data. The number of
units is read from a persisted counter:

	<dataDir>/multidex.version.yaml    key "dex.number", default 1

Secondary units follow a deterministic naming scheme under the fixed
secondary storage directory:

	<dataDir>/code_cache/secondary-dexes/<primary-name>.classes<N>.zip    N = 2..counter

SourcePaths resolves the ordered location list and fails fast when an
expected secondary unit is missing; every later stage of discovery
degrades per item instead.

Enumeration has two strategies behind one interface: packed units are
read as zip containers whose entry names are fully-qualified type
names, and directory locations fall back to walking resource roots for
compiled-output paths (test and restricted environments).
*/
package artifact
