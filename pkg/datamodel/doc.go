// Package datamodel normalizes pluggable data providers into a fully populated
// Model the grid can call without checking for missing capabilities.
//
// # Binding
//
// A provider may implement any subset of the capability interfaces declared in
// this package (SchemaGetter, RowCounter, Clicker, ...). NewModel captures the
// methods the provider has into the corresponding Model slots. The grid then:
//
//  1. InjectFallbacks fills the remaining slots from the Fallbacks bundle and
//     wires DispatchEvent to a Bridge over the host's event sink.
//  2. InstallHooks fills GetCell and GetCellEditorAt with registry lookups.
//  3. InstallDeprecations and InstallCharMapAliases add compatibility shims.
//
// Every step is additive: a slot that already holds a function is never
// replaced. Bind is the primitive all three steps share.
//
// # Events
//
// Providers notify the host through Model.DispatchEvent. Only the names listed
// in EventNames are accepted; anything else is a provider bug and returns an
// error wrapping ErrUnknownEvent. Accepted events reach the sink as
// EventPrefix + name.
//
// # Warnings
//
// Deprecated usage is reported through a WarnedSet, which logs each key at most
// once for the life of the process. DefaultWarned is shared by all grids; tests
// call Reset or pass their own set.
package datamodel
