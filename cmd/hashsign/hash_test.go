package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/spf13/cobra"
	"github.com/storacha/go-hashsign/hash"
	"github.com/storacha/go-hashsign/hash/sha256"
	"github.com/stretchr/testify/require"
)

const sha256abc = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func runCommand(t *testing.T, cmdArgs []string, newCmd func(context.Context) *cobra.Command) (string, error) {
	t.Helper()
	b := new(bytes.Buffer)
	stdout = b
	t.Cleanup(func() { stdout = os.Stdout })
	cmd := newCmd(context.Background())
	cmd.SetArgs(cmdArgs)
	err := cmd.Execute()
	return b.String(), err
}

func TestHashCommand(t *testing.T) {
	dir := t.TempDir()
	abc := writeFile(t, dir, "abc.txt", "abc")
	empty := writeFile(t, dir, "empty.txt", "")

	for _, provider := range []string{"script", "native"} {
		t.Run(provider, func(t *testing.T) {
			out, err := runCommand(t, []string{"-p", provider, abc, empty}, newHashCommand)
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, 2)
			require.Equal(t, sha256abc+"  "+abc, lines[0])
			require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855  "+empty, lines[1])
		})
	}

	t.Run("text with codec", func(t *testing.T) {
		out, err := runCommand(t, []string{"-p", "script", "-a", "md5", "-t", "YWJj", "--codec", "base64"}, newHashCommand)
		require.NoError(t, err)
		require.Equal(t, "900150983cd24fb0d6963f7d28e17f72\n", out)
	})

	t.Run("cid output", func(t *testing.T) {
		out, err := runCommand(t, []string{"-p", "script", "-f", "cid", "-t", "abc"}, newHashCommand)
		require.NoError(t, err)

		c, err := cid.Decode(strings.TrimSpace(out))
		require.NoError(t, err)
		require.Equal(t, uint64(cid.Raw), c.Type())
		d, err := hash.Decode(c.Hash())
		require.NoError(t, err)
		require.Equal(t, sha256.SHA256.Code(), d.Code())
		require.Equal(t, sha256.Sum256([]byte("abc")), d.Digest())
	})

	t.Run("multihash output", func(t *testing.T) {
		out, err := runCommand(t, []string{"-p", "script", "-f", "multihash", "-b", "base16", "-t", "abc"}, newHashCommand)
		require.NoError(t, err)
		require.Equal(t, "f1220"+sha256abc+"\n", out)
	})

	t.Run("missing files are collected", func(t *testing.T) {
		out, err := runCommand(t, []string{"-p", "script", filepath.Join(dir, "nope"), abc, filepath.Join(dir, "gone")}, newHashCommand)
		require.Error(t, err)
		require.Contains(t, err.Error(), "2 errors occurred")
		require.Equal(t, sha256abc+"  "+abc+"\n", out)
	})

	t.Run("link output", func(t *testing.T) {
		out, err := runCommand(t, []string{"-p", "native", "-f", "link", "-t", "abc"}, newHashCommand)
		require.NoError(t, err)
		cidOut, err := runCommand(t, []string{"-p", "native", "-f", "cid", "-t", "abc"}, newHashCommand)
		require.NoError(t, err)
		require.Equal(t, `{"/":"`+strings.TrimSpace(cidOut)+`"}`+"\n", out)
	})

	t.Run("invalid algorithm", func(t *testing.T) {
		_, err := runCommand(t, []string{"-a", "sha3", "-t", "abc"}, newHashCommand)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid algorithm")
	})

	t.Run("no input", func(t *testing.T) {
		_, err := runCommand(t, []string{}, newHashCommand)
		require.Error(t, err)
	})
}
