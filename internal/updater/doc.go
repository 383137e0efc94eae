// Package updater tells the user when a newer release is published. The
// check runs at most once a day in the background and its result is shown
// on the next invocation.
package updater
