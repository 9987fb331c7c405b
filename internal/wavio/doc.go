// Package wavio reads WAV captures off disk and hands the analysis core
// the exact tuple it consumes: the container's format descriptor plus the
// raw data-chunk bytes.
//
// Container parsing is delegated to github.com/go-audio/wav; this package
// performs all file I/O so the core never touches the filesystem.
// Truncated data chunks are returned as-is rather than rejected, since the
// analyzer is expected to produce a report even for damaged captures.
package wavio
