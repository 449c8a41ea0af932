// Package models defines the wire models returned by the exchange API
// and registers their field specs with the schema registry.
//
// Each model file registers its spec in an init function, so importing
// this package (directly or through the api package) is enough to make
// every model name resolvable in return type descriptors such as
// "Array<Instrument>" or "Map<String,Commission>".
//
// Field values are populated by the response deserializer. Payload
// values that are null, false, zero, or the empty string leave the
// corresponding field at its Go zero value; empty arrays and objects
// are assigned as-is.
package models
