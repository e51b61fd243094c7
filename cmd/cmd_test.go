package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/ecadlabs/xbuf"
)

func newTestRoot() *cobra.Command {
	root := NewRootCommand()
	root.AddCommand(
		NewConvertCommand(),
		NewRandomCommand(),
		NewXorCommand(),
		NewConcatCommand(),
		NewEqualCommand(),
		NewVersionCommand(),
	)
	return root
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newTestRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--log-level", "none"))
	err := root.Execute()
	return out.String(), err
}

func TestConvert(t *testing.T) {
	tst := []struct {
		args   []string
		stdin  string
		expect string
		err    error
	}{
		{
			args:   []string{"convert", "Input string for buffer"},
			expect: "496e70757420737472696e6720666f7220627566666572\n",
		},
		{
			args:   []string{"convert", "--to", "base64", "Input string for buffer"},
			expect: "SW5wdXQgc3RyaW5nIGZvciBidWZmZXI=\n",
		},
		{
			args:   []string{"convert", "-t", "base64url", "Input string for buffer"},
			expect: "SW5wdXQgc3RyaW5nIGZvciBidWZmZXI\n",
		},
		{
			args:   []string{"convert", "-t", "base64url", "-w", "Input string for buffer"},
			expect: "SW5wdXQgc3RyaW5nIGZvciBidWZmZXI=\n",
		},
		{
			args:   []string{"convert", "-f", "hex", "-t", "utf8", "0x496e707574"},
			expect: "Input\n",
		},
		{
			args:   []string{"convert", "-f", "base64url", "-t", "hex", "--with"},
			stdin:  "-_8\n",
			expect: "0xfbff\n",
		},
		{
			args: []string{"convert", "-f", "hex", "0xabc"},
			err:  xbuf.ErrInvalidEncoding,
		},
		{
			args: []string{"convert", "-f", "ebcdic", "abc"},
			err:  xbuf.ErrUnknownEncoding,
		},
	}
	for _, tt := range tst {
		out, err := execute(t, tt.stdin, tt.args...)
		if tt.err != nil {
			require.ErrorIs(t, err, tt.err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.expect, out)
	}
}

func TestXor(t *testing.T) {
	out, err := execute(t, "", "xor", "00FF00", "FF00FF")
	require.NoError(t, err)
	require.Equal(t, "ffffff\n", out)

	_, err = execute(t, "", "xor", "00FF00FF", "FF00FF")
	require.ErrorIs(t, err, xbuf.ErrLengthMismatch)

	_, err = execute(t, "", "xor", "00")
	require.Error(t, err)
}

func TestConcat(t *testing.T) {
	out, err := execute(t, "", "concat", "-f", "utf8", "-t", "utf8", "foo", "bar", "baz")
	require.NoError(t, err)
	require.Equal(t, "foobarbaz\n", out)

	out, err = execute(t, "", "concat", "0x0011", "2233")
	require.NoError(t, err)
	require.Equal(t, "00112233\n", out)
}

func TestEqual(t *testing.T) {
	out, err := execute(t, "", "equal", "0x001122", "001122")
	require.NoError(t, err)
	require.Equal(t, "true\n", out)

	out, err = execute(t, "", "equal", "0x001122", "0011")
	require.NoError(t, err)
	require.Equal(t, "false\n", out)
}

func TestRandom(t *testing.T) {
	out, err := execute(t, "", "random", "16")
	require.NoError(t, err)
	require.Len(t, strings.TrimSpace(out), 32)

	out, err = execute(t, "", "random", "0", "-t", "base64")
	require.NoError(t, err)
	require.Equal(t, "\n", out)

	_, err = execute(t, "", "random", "-1")
	require.Error(t, err)

	_, err = execute(t, "", "random", "many")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "xbuf version dev"))
}
