//
// Copyright (C) 2021 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/geobuf
//

/*

Package schema defines the Geobuf wire message (Data, FeatureCollection,
Feature, Geometry, Value) and its Protocol Buffers wire encoding. The
layout follows the stable Geobuf schema: field numbers are chosen to
match the reference schema wherever it is unambiguous, and one literal
field-number collision in the reference (Feature.int_id and
Feature.values both claim 13) is resolved by moving int_id to 14 — see
the module's DESIGN.md for the rationale.

The codec is hand-written on top of google.golang.org/protobuf's
low-level protowire primitives rather than generated by protoc: the
schema is small and stable, and protowire gives wire-format fidelity
without a code generation step.
*/
package schema
