// Package analyzer summarises parsed vehicle configurations.
//
// Summaries are plain values, computed without side effects, and carry
// json and yaml tags so that command line tools can render them
// directly. The v2 summary also pre-computes which features a conversion
// to v1 would drop, so a caller can warn before converting.
package analyzer
