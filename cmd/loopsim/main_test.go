package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/loopsim/internal/config"
	"github.com/san-kum/loopsim/internal/dynamo"
	"github.com/san-kum/loopsim/internal/export"
	"github.com/san-kum/loopsim/internal/loop"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func decode(t *testing.T, data []byte) export.Document {
	t.Helper()
	var doc export.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestGenerate_Stdout(t *testing.T) {
	out := execute(t, "generate", "--fps", "24", "--duration", "1")

	doc := decode(t, []byte(out))
	assert.Len(t, doc.Frames, 24)
	assert.Equal(t, 24, doc.Params.FPS)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestGenerate_LegacyFlags(t *testing.T) {
	out := execute(t, "generate", "--fluidez", "0.3", "--amolecimento=0", "--elasticidade", "0.7", "--inercia", "0.1")

	p := decode(t, []byte(out)).Params
	assert.Equal(t, 0.3, p.Fluidity)
	assert.Equal(t, 0.0, p.Softening)
	assert.Equal(t, 0.7, p.Elasticity)
	assert.Equal(t, 0.1, p.Inertia)
}

func TestGenerate_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("params:\n  radius: 150\n  loops: 2\n"), 0644))

	p := decode(t, []byte(execute(t, "generate", "--preset", "jelly", "--config", path, "--loops", "3"))).Params

	want := config.Presets["jelly"].Params
	want.Radius = 150
	want.Loops = 3
	assert.Equal(t, want, p)
}

func TestGenerate_OutDefaultIndependentOfExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.json")
	execute(t, "export", "--out", path)

	out := execute(t, "generate", "--fps", "10", "--duration", "1")
	assert.Len(t, decode(t, []byte(out)).Frames, 10)

	doc := decode(t, mustRead(t, path))
	assert.Equal(t, config.Presets["showcase"].Params, doc.Params)
}

func TestGenerate_NonFiniteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.json")

	root := newRootCmd()
	root.SetArgs([]string{"generate", "--radius", "1e308", "-o", path})
	err := root.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, dynamo.ErrInvalidState)
	assert.Empty(t, mustRead(t, path))
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestExport_DefaultsToShowcase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loop.json")
	execute(t, "export", "--out", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"params\""))

	doc := decode(t, data)
	assert.Equal(t, config.Presets["showcase"].Params, doc.Params)
	assert.Equal(t, loop.Generate(doc.Params), doc.Frames)
}

func TestExport_Formats(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "loop.csv")
	execute(t, "export", "-o", csvPath)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "index,time,x,y,"))

	svgPath := filepath.Join(dir, "loop.out")
	execute(t, "export", "-o", svgPath, "--format", "svg", "--preset", "default")
	data, err = os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestExport_UnknownFormat(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"export", "-o", filepath.Join(t.TempDir(), "x"), "--format", "gif"})
	root.SetOut(&bytes.Buffer{})
	assert.ErrorIs(t, root.Execute(), export.ErrUnknownFormat)
}

func TestUnknownPreset(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"generate", "--preset", "nope"})
	root.SetOut(&bytes.Buffer{})
	assert.ErrorIs(t, root.Execute(), config.ErrUnknownPreset)
}

func TestInspect(t *testing.T) {
	out := execute(t, "inspect")

	assert.Contains(t, out, "FRAMES")
	assert.Contains(t, out, "step_regularity")
	assert.Contains(t, out, "dominant frequency: 0.5000 hz (expected 0.5000 hz)")
	assert.Contains(t, out, "scale_tangent")
}

func TestPresets(t *testing.T) {
	out := execute(t, "presets")
	for _, name := range config.ListPresets() {
		assert.Contains(t, out, name)
	}

	out = execute(t, "presets", "--show", "showcase")
	assert.Contains(t, out, "preset: showcase")
	assert.Contains(t, out, "radius: 120")
}

func TestLegacyFlagNames(t *testing.T) {
	tests := map[string]string{
		"elasticidade":   "elasticity",
		"fluidez":        "fluidity",
		"inercia":        "inertia",
		"amolecimento":   "softening",
		"pre_roll_loops": "pre-roll-loops",
		"radius":         "radius",
	}
	for in, want := range tests {
		assert.Equal(t, pflag.NormalizedName(want), legacyFlagNames(nil, in))
	}
}

func TestListenAddr(t *testing.T) {
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")

	cmd := newRootCmd()
	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	addr, err := listenAddr(serve, config.DefaultConfig().Server)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8000", addr)

	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9001")
	addr, err = listenAddr(serve, config.DefaultConfig().Server)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9001", addr)

	require.NoError(t, serve.Flags().Set("port", "7000"))
	addr, err = listenAddr(serve, config.DefaultConfig().Server)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", addr)

	t.Setenv("PORT", "eighty")
	_, err = listenAddr(serve, config.DefaultConfig().Server)
	assert.Error(t, err)
}
