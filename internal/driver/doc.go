// Package driver orchestrates the formatting pipeline: file
// discovery, parallel per-file runs, the on-disk format cache, and
// writing results back. The CLI layer stays thin; everything
// testable lives here.
package driver
