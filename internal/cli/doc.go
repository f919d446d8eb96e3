// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes and error
// output. It translates global flags and the command name into the
// application's configuration.
package cli
