// File: schema/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package schema is the pluggable boundary between the wire codec and
// application payload interpretation. The core only needs a yes/no
// answer per message kind; schema.Validator supplies that answer, and
// schema.JSONValidator is the default, swappable implementation this
// repo ships with. A production deployment speaking RLBot's real
// flatbuffers wire format swaps in its own Validator without touching
// any other package.
package schema
