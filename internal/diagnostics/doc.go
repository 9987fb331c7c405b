// Package diagnostics runs the full stereo capture analysis and assembles
// the resulting metrics into a single immutable report.
//
// Analyze is a pure function of its input buffers and parameters: the left
// and right channels are measured independently (levels, noise floor,
// clipping, dynamic range), then the cross-channel pass measures echo lag
// and leakage on decimated copies so the lag search stays bounded. Every
// degenerate input produces neutral metric values rather than an error, so
// a report is always complete.
//
// The report carries heuristic hints derived from the metrics (high noise
// floor, strong leakage, measurable echo delay, clipping, DC offset) for
// the rendering layer to surface.
package diagnostics
