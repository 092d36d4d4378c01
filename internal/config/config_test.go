package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"sources": [
			{"name": "HN August", "type": "hackernews", "url": "https://news.ycombinator.com/item?id=1", "active": true},
			{"name": "RemoteOK", "type": "remoteok", "active": false}
		],
		"output": "out/jobs.json",
		"strategy": "exact",
		"verbose": true
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.Sources, 2)
	assert.Equal(t, "out/jobs.json", cfg.Output)
	assert.Equal(t, "exact", cfg.Strategy)
	assert.True(t, cfg.Verbose)

	active := cfg.ActiveSources()
	require.Len(t, active, 1)
	assert.Equal(t, "HN August", active[0].Name)
}

func TestLoadDefaultsOutput(t *testing.T) {
	path := writeConfig(t, `{"sources": [{"name": "ROK", "type": "remoteok", "active": true}]}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.Output)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{sources`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsUnknownType(t *testing.T) {
	cfg := &Config{Sources: []SourceConfig{{Name: "X", Type: "linkedin", Active: true}}}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsEmptySources(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadStrategy(t *testing.T) {
	cfg := Default()
	cfg.Strategy = "phonetic"
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresThreadURL(t *testing.T) {
	cfg := &Config{Sources: []SourceConfig{{Name: "HN", Type: TypeHackerNews, Active: true}}}
	assert.Error(t, cfg.Validate())
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	active := cfg.ActiveSources()
	assert.Len(t, active, 4)
	assert.Equal(t, DefaultOutput, cfg.Output)
}
