package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/stdinarg"
	"github.com/specialistvlad/stdinarg/decode"
	"github.com/specialistvlad/stdinarg/internal/ctxlog"
	"github.com/specialistvlad/stdinarg/internal/fsutil"
)

// Command is a named sub-command of the program.
type Command struct {
	Name    string
	Usage   string
	Summary string
	Run     func(ctx context.Context, a *App, args []string) error
}

var commands = []*Command{
	{
		Name:    "cp",
		Usage:   "cp SOURCE DEST",
		Summary: `copy SOURCE to DEST; SOURCE "-" reads the source path from stdin`,
		Run:     runCp,
	},
	{
		Name:    "user",
		Usage:   "user [-format json|hcl] [FILE]",
		Summary: `decode a user from FILE, or from stdin when FILE is "-" or omitted`,
		Run:     runUser,
	},
	{
		Name:    "pair",
		Usage:   "pair [-second N] FIRST [SECOND]",
		Summary: `print a string and an optional number; either may be "-" for stdin`,
		Run:     runPair,
	},
	{
		Name:    "write",
		Usage:   "write -value V [-output FILE]",
		Summary: `write V to FILE, replacing its content ("-" for stdout)`,
		Run:     writeRunner("write", stdinarg.Truncate),
	},
	{
		Name:    "append",
		Usage:   "append -value V [-output FILE]",
		Summary: `append V to FILE ("-" for stdout)`,
		Run:     writeRunner("append", stdinarg.Append),
	},
	{
		Name:    "cat",
		Usage:   "cat [-output FILE] [-mode truncate|append] [FILE]",
		Summary: `copy FILE, or stdin, to FILE or stdout`,
		Run:     runCat,
	},
}

// Commands lists the available commands in display order.
func Commands() []*Command {
	return commands
}

func lookupCommand(name string) (*Command, bool) {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return nil, false
}

func (a *App) newFlagSet(cmd string) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// parseFlags returns flag.ErrHelp untouched so the caller can exit cleanly.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

func helpOrErr(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func runCp(ctx context.Context, a *App, args []string) error {
	logger := ctxlog.FromContext(ctx)

	fs := a.newFlagSet("cp")
	if err := parseFlags(fs, args); err != nil {
		return helpOrErr(err)
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: cp requires SOURCE and DEST", ErrUsage)
	}

	source, err := stdinarg.ParseMaybeStdin(fs.Arg(0), stdinarg.Path, a.argOpts()...)
	if err != nil {
		return fmt.Errorf("SOURCE: %w", err)
	}
	dest := fs.Arg(1)

	logger.Info("Copying file.", "from", source.Value(), "to", dest, "source_from_stdin", source.IsStdin())
	n, err := fsutil.CopyFile(source.IntoInner(), dest)
	if err != nil {
		return err
	}
	logger.Debug("File copied.", "bytes", n)
	return nil
}

// User is the document decoded by the user command.
type User struct {
	Name string `json:"name" hcl:"name"`
	Age  int    `json:"age" hcl:"age"`
}

func runUser(ctx context.Context, a *App, args []string) error {
	fs := a.newFlagSet("user")
	format := fs.String("format", "json", "Input format. Options: 'json' or 'hcl'.")
	if err := parseFlags(fs, args); err != nil {
		return helpOrErr(err)
	}

	var parse stdinarg.ParseFunc[User]
	switch strings.ToLower(*format) {
	case "json":
		parse = decode.JSON[User]()
	case "hcl":
		parse = decode.HCL[User]("user.hcl", decode.EnvVariables())
	default:
		return fmt.Errorf("%w: invalid format %q: must be 'json' or 'hcl'", ErrUsage, *format)
	}

	token := stdinarg.Sentinel
	if fs.NArg() > 0 {
		token = fs.Arg(0)
	}
	input, err := stdinarg.ParseFileOrStdin(token, parse, a.argOpts()...)
	if err != nil {
		return err
	}

	ctxlog.FromContext(ctx).Debug("Decoding user.", "file", input.Filename(), "format", *format)
	user, err := input.ContentsContext(ctx)
	if err != nil {
		return fmt.Errorf("reading user from %s: %w", input.Filename(), err)
	}

	_, err = fmt.Fprintf(a.stdout, "name=%s age=%d\n", user.Name, user.Age)
	return err
}

func runPair(ctx context.Context, a *App, args []string) error {
	first := stdinarg.NewMaybeStdin(stdinarg.String, a.argOpts()...)
	second := stdinarg.NewMaybeStdin(stdinarg.Uint32, a.argOpts()...)

	fs := a.newFlagSet("pair")
	fs.Var(second, "second", `A number ("-" reads it from stdin).`)
	if err := parseFlags(fs, args); err != nil {
		return helpOrErr(err)
	}

	secondSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "second" {
			secondSet = true
		}
	})

	switch {
	case fs.NArg() == 0:
		return fmt.Errorf("%w: pair requires FIRST", ErrUsage)
	case fs.NArg() > 2:
		return fmt.Errorf("%w: pair takes at most two arguments", ErrUsage)
	case fs.NArg() == 2 && secondSet:
		return fmt.Errorf("%w: SECOND given both as -second and as an argument", ErrUsage)
	}

	if err := first.Set(fs.Arg(0)); err != nil {
		return fmt.Errorf("FIRST: %w", err)
	}
	if fs.NArg() == 2 {
		if err := second.Set(fs.Arg(1)); err != nil {
			return fmt.Errorf("SECOND: %w", err)
		}
		secondSet = true
	}

	ctxlog.FromContext(ctx).Debug("Arguments resolved.",
		"first_from_stdin", first.IsStdin(),
		"second_from_stdin", second.IsStdin(),
	)

	secondText := "none"
	if secondSet {
		secondText = second.String()
	}
	_, err := fmt.Fprintf(a.stdout, "first=%q second=%s\n", first.Value(), secondText)
	return err
}

func writeRunner(name string, mode stdinarg.WriteMode) func(ctx context.Context, a *App, args []string) error {
	return func(ctx context.Context, a *App, args []string) error {
		output := stdinarg.NewFileOrStdout(mode, a.argOpts()...)
		_ = output.Set(stdinarg.Sentinel)

		fs := a.newFlagSet(name)
		value := fs.String("value", "", "The value to write (required).")
		fs.Var(output, "output", `Output file ("-" for stdout).`)
		if err := parseFlags(fs, args); err != nil {
			return helpOrErr(err)
		}
		if *value == "" {
			return fmt.Errorf("%w: -value is required", ErrUsage)
		}

		ctxlog.FromContext(ctx).Debug("Writing value.", "output", output.Filename(), "mode", output.Mode())
		w, err := output.WriterContext(ctx)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, *value); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	}
}

func runCat(ctx context.Context, a *App, args []string) error {
	fs := a.newFlagSet("cat")
	outputFlag := fs.String("output", stdinarg.Sentinel, `Output file ("-" for stdout).`)
	modeFlag := fs.String("mode", stdinarg.Truncate.String(), "How to open the output file. Options: 'truncate' or 'append'.")
	if err := parseFlags(fs, args); err != nil {
		return helpOrErr(err)
	}

	mode, err := stdinarg.ParseWriteMode(*modeFlag)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	token := stdinarg.Sentinel
	if fs.NArg() > 0 {
		token = fs.Arg(0)
	}
	input, err := stdinarg.ParseFileOrStdin(token, stdinarg.String, a.argOpts()...)
	if err != nil {
		return err
	}
	output, err := stdinarg.ParseFileOrStdout(*outputFlag, mode, a.argOpts()...)
	if err != nil {
		return err
	}

	r, err := input.ReaderContext(ctx)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := output.WriterContext(ctx)
	if err != nil {
		return err
	}

	n, err := io.Copy(w, r)
	if err != nil {
		w.Close()
		return err
	}
	ctxlog.FromContext(ctx).Debug("Stream copied.", "from", input.Filename(), "to", output.Filename(), "bytes", n)
	return w.Close()
}
