package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDefaults(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(nil, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Perimeter = 17,488.592 m  (~17.489 km)")
	assert.Contains(t, stdout.String(), "Area = 11,222,382.986 m²  (~11.222 km²)")
}

func TestRunJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{
		"-format", "json",
		"-lat1", "0", "-lon1", "0",
		"-lat2", "0", "-lon2", "90",
		"-lat3", "90", "-lon3", "0",
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var out struct {
		Result struct {
			Angles []float64 `json:"angles_deg"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out.Result.Angles, 3)
	for _, a := range out.Result.Angles {
		assert.InDelta(t, 90, a, 1e-6)
	}
}

func TestRunInvalidInput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-lat2", "north"}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Invalid input")
	assert.Contains(t, stderr.String(), "please enter numeric values")
}

func TestRunStrict(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 0, run([]string{"-lat1", "95"}, &stdout, &stderr))

	stdout.Reset()
	assert.Equal(t, 2, run([]string{"-strict", "-lat1", "95"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "out of range")
}

func TestRunUnknownArc(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run([]string{"-arc", "vincenty"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "vincenty")
}

func TestRunDegenerate(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{
		"-format", "json",
		"-lat1", "0", "-lon1", "0",
		"-lat2", "0", "-lon2", "0",
		"-lat3", "0", "-lon3", "90",
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), `"area_m2": null`)
	assert.Contains(t, stdout.String(), `"fallback": true`)
	assert.Contains(t, stderr.String(), "Degenerate triangle")
}

func TestRunConfigFile(t *testing.T) {
	config := filepath.Join(t.TempDir(), "triangle.conf")
	content := "lat1 0\nlon1 0\nlat2 0\nlon2 90\nlat3 90\nlon3 0\nformat yaml\n"
	require.NoError(t, os.WriteFile(config, []byte(content), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", config}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "fallback: false")
	assert.Contains(t, stdout.String(), "lon: 90")
}

func TestRunEnv(t *testing.T) {
	t.Setenv("FORMAT", "json")
	t.Setenv("ARC", "haversine")

	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.True(t, json.Valid(stdout.Bytes()))
}

func TestRunDebug(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-debug", "-log-format", "json"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), `"msg":"Spherical excess"`)
	assert.Contains(t, stderr.String(), "Solve took")
}
