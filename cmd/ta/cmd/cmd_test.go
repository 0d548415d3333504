package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgFile, logLevel = "", ""
	reportSynthetic, reportSeed, reportStart, reportFormat = 0, 1, 100, ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ta version "+version)
}

func TestDemo(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "SMA:  1078.5714")
	assert.Contains(t, out, "EMA:  1057.1429")
	assert.Contains(t, out, "bollinger  upper 1546.5038")
	assert.Contains(t, out, "fast -64.2450")
	assert.Contains(t, out, "%K")
	assert.Contains(t, out, "ATR(3) 227.1605")
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indicators.yaml")

	out, err := run(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	out, err = run(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid")
}

func TestReportJSON(t *testing.T) {
	out, err := run(t, "report", "--synthetic", "40", "--seed", "3", "--format", "json")
	require.NoError(t, err)

	var r map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, float64(40), r["bars"])
	assert.Contains(t, r, "macd")
}

func TestReportWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\nlog:\n  level: debug\n  format: json\n"), 0644))

	out, err := run(t, "report", "-c", path)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestBadConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bollinger:\n  multiplier: 0\n"), 0644))

	_, err := run(t, "report", "-c", path)
	assert.Error(t, err)
}
