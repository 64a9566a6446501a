package tonclient

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Timeouts are the network tuning values of the setup method. The bridge
// never interprets them; zero values are left out of the setup JSON so the
// native defaults apply.
type Timeouts struct {
	MessageRetriesCount                int     `yaml:"message_retries_count" json:"messageRetriesCount,omitempty"`
	MessageExpirationTimeout           uint32  `yaml:"message_expiration_timeout" json:"messageExpirationTimeout,omitempty"`
	MessageExpirationTimeoutGrowFactor float32 `yaml:"message_expiration_timeout_grow_factor" json:"messageExpirationTimeoutGrowFactor,omitempty"`
	MessageProcessingTimeout           uint32  `yaml:"message_processing_timeout" json:"messageProcessingTimeout,omitempty"`
	WaitForTimeout                     uint32  `yaml:"wait_for_timeout" json:"waitForTimeout,omitempty"`
	OutOfSyncThreshold                 int64   `yaml:"out_of_sync_threshold" json:"outOfSyncThreshold,omitempty"`
}

// ClientConfig is the network side of a client: where to connect and how
// patient to be.
type ClientConfig struct {
	// EndpointURL is a GraphQL URL or one of the Endpoints short names.
	EndpointURL string   `yaml:"endpoint"`
	AccessKey   string   `yaml:"access_key"`
	Timeouts    Timeouts `yaml:"timeouts"`
}

// ResolvedEndpoint expands a short endpoint name ("dev", "main", ...) to its
// URL and returns anything else unchanged.
func (c ClientConfig) ResolvedEndpoint() string {
	if url, ok := Endpoints[strings.ToLower(c.EndpointURL)]; ok {
		return url
	}
	return c.EndpointURL
}

type setupParams struct {
	Servers   []string `json:"servers,omitempty"`
	AccessKey string   `json:"accessKey,omitempty"`
	Timeouts
}

// SetupParams serializes the parameter JSON of the setup method.
func (c ClientConfig) SetupParams() (string, error) {
	p := setupParams{AccessKey: c.AccessKey, Timeouts: c.Timeouts}
	if url := c.ResolvedEndpoint(); url != "" {
		p.Servers = []string{url}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode setup params: %w", err)
	}
	return string(data), nil
}

// LibraryConfig is the file form of the loader settings in Config.
type LibraryConfig struct {
	Candidates []string `yaml:"candidates"`
	SearchDirs []string `yaml:"search_dirs"`
	TempDir    string   `yaml:"temp_dir"`
}

// Apply copies the file settings onto cfg, leaving unset fields alone.
func (l LibraryConfig) Apply(cfg Config) Config {
	if len(l.Candidates) > 0 {
		cfg.Candidates = l.Candidates
	}
	if len(l.SearchDirs) > 0 {
		cfg.SearchDirs = l.SearchDirs
	}
	if l.TempDir != "" {
		cfg.TempDir = l.TempDir
	}
	return cfg
}

// FileConfig is the layout of a YAML configuration file.
type FileConfig struct {
	Library LibraryConfig `yaml:"library"`
	Network ClientConfig  `yaml:"network"`
}

// DecodeStrict decodes YAML from r and rejects unknown fields.
func DecodeStrict(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*FileConfig, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var cfg FileConfig
	if err := DecodeStrict(f, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
