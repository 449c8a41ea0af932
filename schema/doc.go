// Package schema describes the wire shape of API responses.
//
// Endpoint wrappers declare what an endpoint returns with a type
// expression such as "Order", "Array<Instrument>" or
// "Map<String,Commission>". Parse turns the expression into a
// Descriptor once, at package init; the deserializer then walks the
// Descriptor, never the string.
//
// Model types register a ModelSpec (constructor plus wire-field list)
// in a Registry at init. The deserializer looks models up by name when
// it meets a model Descriptor.
package schema
