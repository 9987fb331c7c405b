// Package pcm decodes raw stereo PCM payloads into normalized channel
// buffers.
//
// The decoder accepts the format tuple a container reader reports (channel
// count, sample rate, sample width, float tag) plus the raw data-chunk
// bytes, and produces two equal-length float64 buffers normalized to
// [-1, 1]. 16-bit payloads are signed little-endian integers; 32-bit
// payloads are IEEE-754 floats, with a magnitude heuristic falling back to
// signed 32-bit integers when the container did not assert a float encoding
// (some encoders mislabel integer PCM as 4-byte width without a float
// format tag). The heuristic is best effort and can misread adversarial
// input; captures whose 32-bit float samples legitimately exceed ±10 will
// be reinterpreted as integers.
//
// The package also carries the decimation helpers used to bound the cost of
// lag-search analysis. Decimation keeps every Nth sample with no anti-alias
// filtering, which is a deliberate fidelity trade-off.
package pcm
