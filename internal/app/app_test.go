package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/unidict-shared/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Log:   config.LogConfig{Level: "info", Format: "json"},
		Build: config.BuildConfig{Environment: "test", Features: []string{"dictionary"}},
		Doc:   config.DocConfig{Title: "Test API", Format: config.FormatJSON},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRender_JSONToStdout(t *testing.T) {
	var out bytes.Buffer
	err := Render(context.Background(), discardLogger(), testConfig(), Options{Stdout: &out})
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title  string `json:"title"`
			System struct {
				Version     string   `json:"version"`
				Environment string   `json:"environment"`
				Features    []string `json:"features"`
			} `json:"system"`
		} `json:"info"`
		Endpoints []json.RawMessage `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))

	assert.Equal(t, "Test API", doc.Info.Title)
	assert.Equal(t, Version, doc.Info.System.Version)
	assert.Equal(t, "test", doc.Info.System.Environment)
	assert.Equal(t, []string{"dictionary"}, doc.Info.System.Features)
	assert.NotEmpty(t, doc.Endpoints)
}

func TestRender_FormatOverride(t *testing.T) {
	var out bytes.Buffer
	err := Render(context.Background(), discardLogger(), testConfig(), Options{
		Format: config.FormatYAML,
		Stdout: &out,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "title: Test API")
}

func TestRender_UnknownFormat(t *testing.T) {
	var out bytes.Buffer
	err := Render(context.Background(), discardLogger(), testConfig(), Options{
		Format: "xml",
		Stdout: &out,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"xml"`)
	assert.Zero(t, out.Len())
}

func TestRender_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.json")
	var stdout bytes.Buffer

	err := Render(context.Background(), discardLogger(), testConfig(), Options{
		Out:    path,
		Stdout: &stdout,
	})
	require.NoError(t, err)
	assert.Zero(t, stdout.Len(), "nothing should go to stdout when Out is set")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(b))
}

func TestRender_ToMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "api.json")
	err := Render(context.Background(), discardLogger(), testConfig(), Options{Out: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output")
}

func TestRun_LoadsConfigFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())
	t.Setenv("DOC_TITLE", "Env API")
	t.Setenv("DOC_COMPACT", "true")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), Options{Stdout: &out}))

	assert.Contains(t, out.String(), `"title":"Env API"`)
	assert.Equal(t, 1, bytes.Count(bytes.TrimSpace(out.Bytes()), []byte("\n"))+1, "compact output is one line")
}

func TestRun_ConfigError(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	err := Run(context.Background(), Options{Stdout: io.Discard})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config")
}

func TestRun_ConfigPathOption(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	path := filepath.Join(t.TempDir(), "apidoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\ndoc:\n  title: File API\n  format: yaml\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), Options{ConfigPath: path, Stdout: &out}))
	assert.Contains(t, out.String(), "title: File API")
}
