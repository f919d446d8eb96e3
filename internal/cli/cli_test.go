package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/stdinarg/internal/app"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"--log-level=debug",
				"--log-format=json",
				"--log-file", "/tmp/stdinarg.log",
				"pair", "FILE", "-",
			},
			expectedConfig: &app.Config{
				Command:   "pair",
				Args:      []string{"FILE", "-"},
				LogFormat: "json",
				LogLevel:  "debug",
				LogFile:   "/tmp/stdinarg.log",
			},
		},
		{
			name: "Defaults",
			args: []string{"cat"},
			expectedConfig: &app.Config{
				Command:   "cat",
				LogFormat: "text",
				LogLevel:  "warn",
			},
		},
		{
			name: "Command flags are left to the command",
			args: []string{"write", "-value", "x", "-output", "-"},
			expectedConfig: &app.Config{
				Command:   "write",
				Args:      []string{"-value", "x", "-output", "-"},
				LogFormat: "text",
				LogLevel:  "warn",
			},
		},
		{
			name: "Level and format are case-insensitive",
			args: []string{"--log-level=DEBUG", "--log-format=JSON", "user"},
			expectedConfig: &app.Config{
				Command:   "user",
				LogFormat: "json",
				LogLevel:  "debug",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
				for _, cmd := range app.Commands() {
					require.Contains(t, output, cmd.Usage)
				}
			},
		},
		{
			name:       "No command triggers clean exit with usage",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:      "Unknown command returns an error",
			args:      []string{"frobnicate"},
			expectErr: true,
		},
		{
			name:      "Invalid log level returns an error",
			args:      []string{"--log-level=foo", "cat"},
			expectErr: true,
		},
		{
			name:      "Invalid log format returns an error",
			args:      []string{"--log-format=yaml", "cat"},
			expectErr: true,
		},
		{
			name:      "Unknown flag returns an error",
			args:      []string{"--nope", "cat"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			appConfig, shouldExit, err := Parse(tc.args, out)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr, "Expected error to be of type ExitError")
				require.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)

			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, appConfig, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
			}

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}

func TestAsExitError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "Usage error", err: fmt.Errorf("%w: pair requires FIRST", app.ErrUsage), wantCode: 2},
		{name: "Runtime error", err: errors.New("open missing.txt: no such file or directory"), wantCode: 1},
		{name: "Existing exit error", err: fmt.Errorf("wrapped: %w", &ExitError{Code: 3, Message: "custom"}), wantCode: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.wantCode, AsExitError(tc.err).Code)
		})
	}
}

func TestPrintError(t *testing.T) {
	// Not parallel: toggles the global color switch.
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	out := &bytes.Buffer{}
	PrintError(out, &ExitError{Code: 1, Message: "SECOND: stdinarg: stdin read from more than once"})

	require.Equal(t, "error: SECOND: stdinarg: stdin read from more than once\n", out.String())
}
