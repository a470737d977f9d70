package skemora

// Package skemora compiles a restricted JSON Schema (draft-07 subset) into a
// runtime validation schema and checks decoded JSON values against it.
//
// - A stable error model via Issues (JSON Pointer, code, message)
// - Validation nodes under dsl/ (object/array/enum/optional and primitives)
// - The JSON Schema input model under jsonschema/
// - The compiler under convert/ (one-way: JSON Schema -> validator)
//
// Design policy:
// - Keep only public APIs in the root package; node implementations live in dsl/.
// - The compiler is pure: same input tree, same output tree, no I/O.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s, _, err := convert.JSON(schemaBytes, convert.Options{})
//	if err != nil { ... }
//	err = skemora.ValidateJSON(ctx, s, payload)
