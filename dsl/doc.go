// Package dsl provides the validation schema nodes and builders: primitives
// (String/Number/Bool/Null), Enum, Array, the Object builder, and the generic
// Optional and Describe wrappers. Every node implements skemora.Schema and is
// immutable once built.
package dsl
