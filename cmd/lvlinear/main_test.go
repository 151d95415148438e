package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run(append([]string{"lvlinear"}, args...))

	return out.String(), errOut.String(), err
}

func TestVectorCommands(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "add", args: []string{"vector", "add", "--a", "1,1,1,1", "--b", "2,2,2,2"}, want: "[3, 3, 3, 3]\n"},
		{name: "sub", args: []string{"vector", "sub", "--a", "3,3,3,3", "--b", "2,2,2,2"}, want: "[1, 1, 1, 1]\n"},
		{name: "dot", args: []string{"vector", "dot", "--a", "1,1,1,1", "--b", "0,0,0,0"}, want: "0\n"},
		{name: "equal", args: []string{"v", "equal", "--a", "1,2", "--b", "1,2"}, want: "true\n"},
		{name: "add scalar", args: []string{"vector", "add-scalar", "--a", "1,1,1,1", "--scalar", "2"}, want: "[3, 3, 3, 3]\n"},
		{name: "sub scalar", args: []string{"vector", "sub-scalar", "--a", "3,3", "-s", "2"}, want: "[1, 1]\n"},
		{name: "mul scalar with start", args: []string{"vector", "mul-scalar", "--a", "1,1,1,1", "--scalar", "2", "--start", "3"}, want: "[2, 2, 2, 2]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestVectorCommand_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "size mismatch", args: []string{"vector", "add", "--a", "1,1,1,1", "--b", "2,2,2,2,2"}},
		{name: "missing b", args: []string{"vector", "dot", "--a", "1,1"}},
		{name: "negative start", args: []string{"vector", "mul-scalar", "--a", "1", "--start", "-2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut, err := run(t, tc.args...)
			require.Error(t, err)
			var ec cli.ExitCoder
			require.ErrorAs(t, err, &ec)
			require.Equal(t, 1, ec.ExitCode())
			require.Empty(t, out)
			require.Contains(t, errOut, "operation failed")
		})
	}
}

func TestMatrixCommands(t *testing.T) {
	out, _, err := run(t, "matrix", "add", "--size", "3", "--a-fill", "1", "--b-fill", "2")
	require.NoError(t, err)
	require.Equal(t, "[3, 3, 3]\n[-, 3, 3]\n[-, -, 3]\n", out)

	out, _, err = run(t, "m", "sub", "-n", "2", "--a-fill", "3", "--b-fill", "2")
	require.NoError(t, err)
	require.Equal(t, "[1, 1]\n[-, 1]\n", out)

	out, _, err = run(t, "matrix", "equal", "--size", "4", "--b-size", "5")
	require.NoError(t, err)
	require.Equal(t, "false\n", out)
}

func TestMatrixCommand_SizeMismatch(t *testing.T) {
	out, errOut, err := run(t, "matrix", "add", "--size", "4", "--b-size", "5")
	require.Error(t, err)
	require.Empty(t, out)
	require.Contains(t, errOut, "size mismatch")
}

// TestConfigLimits: environment limits are enforced by the constructors.
func TestConfigLimits(t *testing.T) {
	t.Setenv("LVLINEAR_LIMITS_MAXVECTORSIZE", "2")
	t.Setenv("LVLINEAR_LIMITS_MAXMATRIXSIZE", "3")

	_, errOut, err := run(t, "vector", "add", "--a", "1,1,1", "--b", "1,1,1")
	require.Error(t, err)
	require.Contains(t, errOut, "invalid argument")

	_, _, err = run(t, "matrix", "add", "--size", "4")
	require.Error(t, err)

	out, _, err := run(t, "matrix", "add", "--size", "3")
	require.NoError(t, err)
	require.Equal(t, "[0, 0, 0]\n[-, 0, 0]\n[-, -, 0]\n", out)
}

func TestBadConfig(t *testing.T) {
	t.Setenv("LVLINEAR_LOG_LEVEL", "loud")
	_, _, err := run(t, "vector", "add-scalar", "--a", "1")
	var ec cli.ExitCoder
	require.ErrorAs(t, err, &ec)
	require.Equal(t, 2, ec.ExitCode())
}

func TestLogLevelFlag(t *testing.T) {
	_, errOut, err := run(t, "--log-level", "debug", "vector", "add-scalar", "--a", "1", "-s", "1")
	require.NoError(t, err)
	require.Contains(t, errOut, "running")
	require.Contains(t, errOut, "op=\"vector add-scalar\"")
}
