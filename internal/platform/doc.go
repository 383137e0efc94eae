// Package platform holds the operating-system specific bits: where shims
// live, how they are named, file permissions, and how to open a file with
// the desktop's default application.
package platform
