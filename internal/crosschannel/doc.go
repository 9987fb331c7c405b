// Package crosschannel measures how two channel buffers relate: normalized
// cross-correlation at a time lag, a bounded exhaustive search for the lag
// of maximum correlation, and a least-squares estimate of the gain at which
// one channel's signal leaks into the other.
//
// The lag search costs O(search window × buffer length) per call. Callers
// are expected to decimate both buffers to a low analysis rate first (see
// pcm.Decimate); the search itself applies no cost bound of its own.
package crosschannel
