package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/sandwi/gs-collections-sub005/collections"
	"github.com/sandwi/gs-collections-sub005/parallel"
)

// run executes intervalctl with args in an empty home directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intervalctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "1", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Interval from: 1 to: 10 step: 1 size: 10")
	assert.Contains(t, out, "first: 1\nlast: 10")
	assert.Contains(t, out, "sum: 55")
	assert.Contains(t, out, "encoded: 4956")
}

func TestInfoRejectsInvalidStep(t *testing.T) {
	_, err := run(t, "info", "1", "10", "0")
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)

	_, err = run(t, "info", "1", "ten")
	assert.Error(t, err)
}

func TestSum(t *testing.T) {
	out, err := run(t, "sum", "1", "100000", "--batchSize", "1000", "--workers", "4")
	require.NoError(t, err)
	assert.Equal(t, "5000050000", out)

	out, err = run(t, "sum", "--", "10", "-10", "-5")
	require.NoError(t, err)
	assert.Equal(t, "0", out)

	out, err = run(t, "sum", "1", "10", "--mod", "3", "--batchSize", "4")
	require.NoError(t, err)
	assert.Equal(t, "0: 18\n1: 22\n2: 15\ntotal: 55", out)

	out, err = run(t, "sum", "--mod", "2", "-o", "yaml", "--", "-3", "3")
	require.NoError(t, err)
	var r sumReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, map[int64]int64{0: 0, 1: 0}, r.Groups)

	_, err = run(t, "sum", "1", "10", "--mod", "0")
	assert.Error(t, err)
}

func TestCount(t *testing.T) {
	out, err := run(t, "count", "1", "100", "--mod", "3", "--batchSize", "7")
	require.NoError(t, err)
	assert.Equal(t, "33", out)

	_, err = run(t, "count", "1", "100", "--mod", "0")
	assert.Error(t, err)
}

func TestFactorial(t *testing.T) {
	out, err := run(t, "factorial", "21")
	require.NoError(t, err)
	assert.Equal(t, "51090942171709440000", out)

	_, err = run(t, "factorial", "--", "-3")
	assert.ErrorIs(t, err, collections.ErrIllegalState)
}

func TestGroupByYAML(t *testing.T) {
	out, err := run(t, "groupby", "1", "10", "--mod", "3", "-o", "yaml")
	require.NoError(t, err)

	var r groupReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, int64(3), r.Mod)
	assert.Equal(t, map[int64]int{0: 3, 1: 4, 2: 3}, r.Groups)

	out, err = run(t, "groupby", "--mod", "2", "--", "-4", "4")
	require.NoError(t, err)
	assert.Equal(t, "0: 5\n1: 4", out)
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, "output: yaml\nbatchSize: 3\n")
	out, err := run(t, "sum", "1", "10", "--config", path)
	require.NoError(t, err)

	var r sumReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, int64(55), r.Sum)

	_, err = run(t, "sum", "1", "10", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("GSC_OUTPUT", "yaml")
	out, err := run(t, "factorial", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "value: \"120\"")

	t.Setenv("GSC_OUTPUT", "json")
	_, err = run(t, "factorial", "5")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "intervalctl v"+SEMVER))
}

func TestSettingsOptions(t *testing.T) {
	s := settings{BatchSize: 5, MinForkSize: 11, Parallelism: 3, Output: outputText}
	opts, err := s.options()
	require.NoError(t, err)

	var o parallel.Options
	for _, opt := range opts {
		opt(&o)
	}
	assert.Equal(t, 5, o.BatchSize)
	assert.Equal(t, 11, o.MinForkSize)
	assert.Equal(t, 3, o.Parallelism)
	assert.Nil(t, o.Executor)
}
