// Package convert maps vehicle configurations between the v1 and v2
// schema generations.
//
// Each direction returns a freshly allocated model that shares no mutable
// state with its source, together with a model.LossReport listing every
// source feature the target cannot represent. A loss is not an error: the
// conversion always succeeds and it is up to the caller to decide whether
// the result is acceptable.
package convert
