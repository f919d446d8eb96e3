// Package app contains the example program's logic: its configuration, its
// logger, and the commands that exercise the stdinarg wrappers, decoupled from
// the process entrypoint.
package app
