// Package linker writes and removes the launcher shims that expose a
// project's main file as a global command. Every shim carries a marker
// comment so that only shims written by this tool are ever deleted.
package linker
