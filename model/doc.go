// Package model holds the in-memory representation of DLS vehicle
// configuration files for both schema generations, and the loss report
// produced when converting between them.
//
// Models are plain values. Absent optional data is represented explicitly:
// zero values for scalars and nil for lists and optional blocks, never an
// empty non-nil slice, so that a parsed model compares equal to the model
// it was written from.
package model
