package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{name: "valid config", modify: func(c *Config) {}},
		{name: "missing server listen", modify: func(c *Config) { c.Server.Listen = "" }, wantErr: true,
			errMsg: "server.listen is required"},
		{name: "missing fetch timeout", modify: func(c *Config) { c.Fetch.Timeout = 0 }, wantErr: true,
			errMsg: "fetch.timeout is required"},
		{name: "schedule enabled without workers", modify: func(c *Config) {
			c.Schedule.Enabled = true
			c.Schedule.MaxWorkers = 0
		}, wantErr: true, errMsg: "schedule.max_workers"},
		{name: "extraction enabled without timeout", modify: func(c *Config) {
			c.Extraction.Enabled = true
			c.Extraction.Timeout = 0
		}, wantErr: true, errMsg: "extraction.timeout is required when extraction is enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LLM: LLMConfig{Endpoint: "http://localhost:8080", APIKey: "test-key", Model: "test-model"}}
			cfg.setDefaults()
			tt.modify(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestEmbeddedSchemaMatchesConfig(t *testing.T) {
	var embedded struct {
		Defs map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"$defs"`
	}
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &embedded))

	data, err := json.Marshal(GenerateSchema())
	require.NoError(t, err)
	var generated struct {
		Defs map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"$defs"`
	}
	require.NoError(t, json.Unmarshal(data, &generated))

	for _, def := range []string{"Config", "LLMConfig", "DigestConfig", "ScheduleConfig", "PapersConfig", "ExtractionConfig"} {
		require.Contains(t, generated.Defs, def)
		require.Contains(t, embedded.Defs, def)
		for prop := range generated.Defs[def].Properties {
			assert.Contains(t, embedded.Defs[def].Properties, prop, "%s.%s missing from schema.json", def, prop)
		}
	}
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.Fetch.Timeout = time.Second
	cfg.Papers.TTL = time.Hour
	require.NoError(t, validateRequiredFields(cfg))

	cfg.Papers.TTL = 0
	err := validateRequiredFields(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "papers.ttl")
}
