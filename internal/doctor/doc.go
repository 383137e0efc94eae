// Package doctor checks that the tools betterpip shells out to are
// installed, and prepares the shim directory.
package doctor
