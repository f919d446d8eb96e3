// Package stdinarg provides command-line argument values that read their
// content from the argument itself, from a file, or from standard input when
// the argument is "-", plus an output argument that writes to a file or to
// standard output.
//
// Standard input is a single stream shared by the whole process, so it is
// handed out at most once. A program that accepts two arguments which may
// both be "-" gets the real content for the first and ErrRepeatedStdinUse
// for the second, rather than an empty or blocked read.
//
// The wrappers implement flag.Value and encoding.TextUnmarshaler:
//
//	count := stdinarg.NewMaybeStdin(stdinarg.Int)
//	input := stdinarg.NewFileOrStdin(stdinarg.String)
//	output := stdinarg.NewFileOrStdout(stdinarg.Append)
//	fs.Var(count, "count", `count ("-" reads it from stdin)`)
//	fs.Var(input, "in", `input file ("-" for stdin)`)
//	fs.Var(output, "out", `output file ("-" for stdout)`)
//
// MaybeStdin and FileOrStdinValue resolve their content while the flag is
// set. FileOrStdin and FileOrStdout only record the name; the stream is
// opened by Contents, Reader or Writer and owned by the caller from then on.
package stdinarg
