// Package cli implements the betterpip command tree.
//
// Every subcommand lives in its own file and registers itself with rootCmd
// from init(). Commands obtain their collaborators (settings, prompter,
// installer, GitHub client, linker) from an app value built per invocation,
// which tests replace through newApp.
package cli
