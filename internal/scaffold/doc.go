// Package scaffold generates the installer scripts written by
// `betterpip build`: a Windows batch file and a Unix shell script that
// install the project with betterpip when available, or with git and pip
// otherwise.
package scaffold
