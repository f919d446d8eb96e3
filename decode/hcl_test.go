package decode_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/stdinarg"
	"github.com/specialistvlad/stdinarg/decode"
	"github.com/specialistvlad/stdinarg/internal/testutil"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type service struct {
	Name  string   `hcl:"name"`
	Port  int      `hcl:"port"`
	Token string   `hcl:"token,optional"`
	Tags  []string `hcl:"tags,optional"`
}

func TestHCL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		filename string
		input    string
		vars     []decode.Variables
		want     service
		errSub   string
	}{
		{
			name:     "Native syntax",
			filename: "svc.hcl",
			input: `
				name = "api"
				port = 8080
				tags = ["a", "b"]
			`,
			want: service{Name: "api", Port: 8080, Tags: []string{"a", "b"}},
		},
		{
			name:     "JSON syntax",
			filename: "svc.json",
			input:    `{"name": "api", "port": 9090}`,
			want:     service{Name: "api", Port: 9090},
		},
		{
			name:     "Expressions use variables",
			filename: "svc.hcl",
			input: `
				name  = "api-${region}"
				port  = base_port + 1
			`,
			vars: []decode.Variables{
				{"region": cty.StringVal("eu")},
				{"base_port": cty.NumberIntVal(7000)},
			},
			want: service{Name: "api-eu", Port: 7001},
		},
		{
			name:     "Syntax error",
			filename: "svc.hcl",
			input:    `name = `,
			errSub:   "failed to parse HCL svc.hcl",
		},
		{
			name:     "Missing required attribute",
			filename: "svc.hcl",
			input:    `name = "api"`,
			errSub:   "failed to decode HCL svc.hcl",
		},
		{
			name:     "Unknown variable",
			filename: "svc.hcl",
			input: `
				name = region
				port = 1
			`,
			errSub: "failed to decode HCL svc.hcl",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			got, err := decode.HCL[service](tc.filename, tc.vars...)(tc.input)

			// --- Assert ---
			if tc.errSub != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errSub)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("decoded service mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHCL_EnvVariables(t *testing.T) {
	// --- Arrange ---
	t.Setenv("STDINARG_TEST_TOKEN", "s3cret")
	parse := decode.HCL[service]("svc.hcl", decode.EnvVariables())

	// --- Act ---
	got, err := parse(`
		name  = "api"
		port  = 1
		token = env.STDINARG_TEST_TOKEN
	`)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "s3cret", got.Token)
}

func TestHCL_ThroughMaybeStdin(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	stdio := testutil.NewStdio("name = \"Trinity\"\nage = 30\n")

	// --- Act ---
	arg, err := stdinarg.ParseFileOrStdinValue("-", decode.HCL[user]("user.hcl"), stdio.Opts()...)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, user{Name: "Trinity", Age: 30}, arg.Value())
}
