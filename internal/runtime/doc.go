// Package runtime finds the Python interpreter used by shims and by
// `betterpip start`, and runs a project's main file with it.
package runtime
