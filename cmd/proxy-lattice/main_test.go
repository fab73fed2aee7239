package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"proxy-lattice/internal/directory"
	"proxy-lattice/internal/operators"
	"proxy-lattice/internal/server"
	"proxy-lattice/lattice"
	"proxy-lattice/options"
)

const analysisSchema = "../../examples/analysis/lattice.yaml"

const brokenSchema = `
types:
  - name: SystemDeflection
    parent: AnalysisCas
`

// run invokes fn the way cobra would and returns what it printed.
func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()

	logger = zap.NewNop()

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	err := fn(cmd, args)

	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestValidateCmd(t *testing.T) {
	out, err := run(t, runValidate, analysisSchema)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (10 types)")

	out, err = run(t, runValidate, writeTemp(t, "broken.yaml", brokenSchema))
	require.Error(t, err)
	assert.Contains(t, out, "unknown_parent")
	assert.Contains(t, out, "AnalysisCas")
}

func TestGenCmd(t *testing.T) {
	dir := t.TempDir()

	genOut, genPackage, genOnly, genNoDocs, genFeatures = dir, "proxies", []string{"SystemDeflection"}, true, "properties,casts"
	genRuntimeModule = "proxy-lattice"
	t.Cleanup(func() { genOut, genPackage, genOnly, genNoDocs, genFeatures = ".", "", nil, false, "all" })

	out, err := run(t, runGen, analysisSchema)
	require.NoError(t, err)
	assert.Contains(t, out, "system_deflection_gen.go")
	assert.NotContains(t, out, "lattice_gen.go")

	src, err := os.ReadFile(filepath.Join(dir, "system_deflection_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package proxies")
	assert.Contains(t, string(src), "DO NOT EDIT")
	assert.Contains(t, string(src), "Source: ../../examples/analysis/lattice.yaml")

	// A second run finds nothing to rewrite.
	out, err = run(t, runGen, analysisSchema)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestParseFeatures(t *testing.T) {
	f, err := parseFeatures("properties|casts")
	require.NoError(t, err)
	assert.Equal(t, options.FeatureProperties|options.FeatureCasts, f)

	f, err = parseFeatures("all")
	require.NoError(t, err)
	assert.Equal(t, options.FeatureAll, f)

	_, err = parseFeatures("properties, magic")
	require.EqualError(t, err, `unknown feature "magic"`)
}

func TestPackageName(t *testing.T) {
	name, err := packageName("", "", "/tmp/generated-proxies")
	require.NoError(t, err)
	assert.Equal(t, "generatedproxies", name)

	name, err = packageName("", "analysis", "/tmp/out")
	require.NoError(t, err)
	assert.Equal(t, "analysis", name)

	name, err = packageName("proxies", "analysis", ".")
	require.NoError(t, err)
	assert.Equal(t, "proxies", name)

	_, err = packageName("1bad", "", ".")
	require.Error(t, err)
}

func TestDescribeCmd(t *testing.T) {
	describeDump = true
	t.Cleanup(func() { describeDump = false })

	out, err := run(t, runDescribe, analysisSchema, "AdvancedSystemDeflection")
	require.NoError(t, err)
	assert.Contains(t, out, "ancestors:   SystemDeflection, AnalysisCase")
	assert.Contains(t, out, "(inherited)")
	assert.Contains(t, out, "(lattice.TypeSpec)")

	_, err = run(t, runDescribe, analysisSchema, "Nope")
	require.EqualError(t, err, `unknown type "Nope"`)
}

func TestCastCmd(t *testing.T) {
	out, err := run(t, runCast, analysisSchema, "AdvancedSystemDeflection", "AnalysisCase")
	require.NoError(t, err)
	assert.Equal(t, "AdvancedSystemDeflection -> AnalysisCase: ok (upcast)\n", out)

	_, err = run(t, runCast, analysisSchema, "GearAnalysis", "SystemDeflection")
	require.ErrorIs(t, err, lattice.ErrInvalidCast)
	assert.Contains(t, err.Error(), "System Deflection")
}

func TestServe(t *testing.T) {
	path := writeTemp(t, "directory.yaml", `
users:
  - {id: b, fullname: ""}
  - {id: a, fullname: A}
groups:
  operatori_pratiche: [b, a]
`)

	dir, err := directory.Load(path)
	require.NoError(t, err)

	svc := operators.NewService(dir, operators.WithCache(0, 0))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- serve(ctx, server.New("", server.NewMux(svc, nil), nil), ln, dir, true) }()

	tr := &http.Transport{DisableKeepAlives: true}
	defer tr.CloseIdleConnections()

	resp, err := (&http.Client{Transport: tr}).Get("http://" + ln.Addr().String() + operators.Route)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var got operators.Response
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, []operators.Item{{Value: "a", Label: "A"}, {Value: "b", Label: "b"}}, got.Items)

	cancel()
	require.NoError(t, <-done)
}
