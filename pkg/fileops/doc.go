// Package fileops provides the filesystem primitives used during name
// reconciliation: symlink-safe path canonicalization and directory
// renames with collision detection.
//
// All functions are synchronous and perform no retries. Errors wrap the
// underlying OS error so callers can distinguish "not found" from
// "permission denied" without re-statting.
package fileops
