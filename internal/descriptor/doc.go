// Package descriptor reads, writes and validates the project descriptor
// (python-package.json). The working directory is the descriptor's only
// identity: one file per project, no central registry, no locking.
package descriptor
