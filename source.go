package stdinarg

// Sentinel is the argument value that selects standard input (for sources)
// or standard output (for destinations).
const Sentinel = "-"

// Source is where an argument's content comes from: standard input, or a
// named value that is either used literally or treated as a file path,
// depending on the wrapper.
type Source struct {
	stdin bool
	value string
}

// ParseSource classifies a raw argument token. It never fails and performs
// no I/O; the claim on standard input happens later, when content is read.
func ParseSource(token string) Source {
	if token == Sentinel {
		return Source{stdin: true}
	}
	return Source{value: token}
}

// IsStdin reports whether the content comes from standard input.
func (s Source) IsStdin() bool {
	return s.stdin
}

// IsNamed reports whether the content comes from the argument value itself.
func (s Source) IsNamed() bool {
	return !s.stdin
}

// Value returns the token the source was parsed from.
func (s Source) Value() string {
	if s.stdin {
		return Sentinel
	}
	return s.value
}

func (s Source) String() string {
	if s.stdin {
		return "stdin"
	}
	return s.value
}

// Dest is where output goes: standard output or a named file path.
type Dest struct {
	stdout bool
	path   string
}

// ParseDest classifies a raw argument token for output. Like ParseSource it
// is total and performs no I/O.
func ParseDest(token string) Dest {
	if token == Sentinel {
		return Dest{stdout: true}
	}
	return Dest{path: token}
}

// IsStdout reports whether output goes to standard output.
func (d Dest) IsStdout() bool {
	return d.stdout
}

// IsNamed reports whether output goes to a file path.
func (d Dest) IsNamed() bool {
	return !d.stdout
}

// Value returns the token the destination was parsed from.
func (d Dest) Value() string {
	if d.stdout {
		return Sentinel
	}
	return d.path
}

func (d Dest) String() string {
	if d.stdout {
		return "stdout"
	}
	return d.path
}
