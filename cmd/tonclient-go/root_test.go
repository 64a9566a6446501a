package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/tonclient-go/pkg/tonclient"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSuffixCommand(t *testing.T) {
	out, err := run(t, "suffix", "windows")
	require.NoError(t, err)
	assert.Contains(t, out, "suffix: .dll")
	assert.Contains(t, out, "ton_client: library ton_client.dll, resource ton_client.dll")

	out, err = run(t, "suffix", "darwin")
	require.NoError(t, err)
	assert.Contains(t, out, "tonclientjni: library libtonclientjni.dylib, resource tonclientjni.dylib")
}

func TestErrorsCommand(t *testing.T) {
	out, err := run(t, "errors", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "3 (generic): invalid context handle")

	out, err = run(t, "errors")
	require.NoError(t, err)
	assert.Contains(t, out, "5000 (wallet)")

	_, err = run(t, "errors", "abc")
	assert.ErrorContains(t, err, "invalid code")
}

func TestVersionWithoutModule(t *testing.T) {
	out, err := run(t, "version", "--candidate", "definitely_not_a_module", "--temp-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "tonclient-go version: "+tonclient.WrapperVersion())
	assert.Contains(t, out, "native module unavailable")
}

func TestSettingsFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("library:\n  candidates: [a]\n  temp_dir: /x\nnetwork:\n  endpoint: dev\n"), 0o600))

	opts := &options{configPath: path, candidates: []string{"b"}}
	cfg, network, err := opts.settings()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, cfg.Candidates)
	assert.Equal(t, "/x", cfg.TempDir)
	assert.Equal(t, "dev", network.EndpointURL)
}
