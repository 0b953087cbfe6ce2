// Package tree holds the generic input value tree consumed by the
// converter, and decoders that build it from JSON or YAML text.
//
// A [Value] is one of [Null], [Bool], [Number], [String], [Array] or
// [*Object]. Objects keep their keys in document order and numbers keep
// their literal text, so later stages can tell 42 from 42.0 and can emit
// properties in the order they were written.
package tree
