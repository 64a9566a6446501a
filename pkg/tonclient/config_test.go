package tonclient_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/tonclient-go/pkg/tonclient"
)

const sampleConfig = `
library:
  candidates: [ton_client]
  search_dirs: [/opt/ton/lib]
  temp_dir: /var/tmp
network:
  endpoint: dev
  access_key: secret
  timeouts:
    message_retries_count: 3
    message_expiration_timeout_grow_factor: 1.5
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tonclient.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := tonclient.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ton_client"}, cfg.Library.Candidates)
	assert.Equal(t, tonclient.GraphQLDev, cfg.Network.ResolvedEndpoint())
	assert.Equal(t, 3, cfg.Network.Timeouts.MessageRetriesCount)
	assert.InDelta(t, 1.5, cfg.Network.Timeouts.MessageExpirationTimeoutGrowFactor, 1e-6)

	lc := cfg.Library.Apply(tonclient.Config{Candidates: []string{"x"}, OS: "linux"})
	assert.Equal(t, []string{"ton_client"}, lc.Candidates)
	assert.Equal(t, []string{"/opt/ton/lib"}, lc.SearchDirs)
	assert.Equal(t, "/var/tmp", lc.TempDir)
	assert.Equal(t, "linux", lc.OS)
}

func TestDecodeStrictRejectsUnknownFields(t *testing.T) {
	var cfg tonclient.FileConfig
	err := tonclient.DecodeStrict(strings.NewReader("network:\n  endpiont: dev\n"), &cfg)
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := tonclient.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolvedEndpointPassesURLs(t *testing.T) {
	cfg := tonclient.ClientConfig{EndpointURL: "https://example.org/graphql"}
	assert.Equal(t, "https://example.org/graphql", cfg.ResolvedEndpoint())

	params, err := tonclient.ClientConfig{}.SetupParams()
	require.NoError(t, err)
	assert.Equal(t, "{}", params)
}
