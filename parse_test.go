package stdinarg_test

import (
	"io"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/stdinarg"
	"github.com/stretchr/testify/require"
)

func TestBuiltinParsers(t *testing.T) {
	t.Parallel()

	i64, err := stdinarg.Int64("-9000000000")
	require.NoError(t, err)
	require.Equal(t, int64(-9000000000), i64)

	u, err := stdinarg.Uint("12")
	require.NoError(t, err)
	require.Equal(t, uint(12), u)

	_, err = stdinarg.Uint32("4294967296")
	require.Error(t, err, "value overflows uint32")

	b, err := stdinarg.Bool("true")
	require.NoError(t, err)
	require.True(t, b)

	d, err := stdinarg.Duration("1m30s")
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, d)

	p, err := stdinarg.Path("./a/../b/c.txt")
	require.NoError(t, err)
	require.Equal(t, "b/c.txt", p)
}

func TestText(t *testing.T) {
	t.Parallel()

	parse := stdinarg.Text[netip.Addr]()

	addr, err := parse("192.0.2.1")
	require.NoError(t, err)
	require.Equal(t, netip.MustParseAddr("192.0.2.1"), addr)

	_, err = parse("not-an-ip")
	require.Error(t, err)
}

func TestText_WithMaybeStdin(t *testing.T) {
	t.Parallel()

	guard := stdinarg.NewGuard(strings.NewReader("2001:db8::1\n"), io.Discard)

	m, err := stdinarg.ParseMaybeStdin("-", stdinarg.Text[netip.Addr](), stdinarg.WithGuard(guard))
	require.NoError(t, err)
	require.Equal(t, "2001:db8::1", m.String())
}
