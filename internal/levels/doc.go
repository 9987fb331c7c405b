// Package levels computes per-channel quality metrics over a normalized
// channel buffer: noise floor, clipping, and dynamic range.
//
// Degenerate input (empty buffers, pure silence) never fails; each metric
// defines a neutral result so a complete report can always be produced.
package levels
