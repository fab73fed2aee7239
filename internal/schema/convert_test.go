package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proxy-lattice/handle"
	"proxy-lattice/lattice"
	"proxy-lattice/primitive"
)

func TestTypeSpecs(t *testing.T) {
	specs := mustParse(t, analysisYAML).TypeSpecs()
	require.Len(t, specs, 4)

	asd := specs[1]
	assert.Equal(t, "AdvancedSystemDeflection", asd.Name)
	assert.Equal(t, "AnalysisCase", asd.Parent)
	assert.Equal(t, []string{"AdvancedSystemDeflectionSubAnalysis"}, asd.Casts)
	assert.Equal(t, []lattice.Property{
		{Name: "TimeToComplete", Kind: lattice.PropertyScalar, Scalar: primitive.KindFloat64},
		{Name: "Iterations", Kind: lattice.PropertyScalar, Scalar: primitive.KindInt},
		{Name: "Results", Kind: lattice.PropertyList, Type: "ComponentResult"},
		{Name: "Design", Kind: lattice.PropertyObject, Type: "ComponentResult", Doc: "Root design component."},
	}, asd.Properties)

	assert.Equal(t, "SMT.MastaAPI.SystemModel", specs[3].Namespace)
}

func TestFile_Build(t *testing.T) {
	l, err := mustParse(t, analysisYAML).Build()
	require.NoError(t, err)

	sub, ok := l.Lookup("AdvancedSystemDeflectionSubAnalysis")
	require.True(t, ok)
	assert.Equal(t, handle.TypeName{Namespace: "SMT.MastaAPI.SystemModelAnalyses", Name: sub.Name()}, sub.External())

	cr, ok := l.ByExternal(handle.TypeName{Namespace: "SMT.MastaAPI.SystemModel", Name: "ComponentResult"})
	require.True(t, ok)
	assert.Equal(t, "ComponentResult", cr.Name())
}

func TestFile_BuildInferredCasts(t *testing.T) {
	f := mustParse(t, `
infer_casts: true
types:
  - name: Shaft
  - name: StraightShaft
    parent: Shaft
  - name: SteppedShaft
    parent: Shaft
`)

	l, err := f.Build()
	require.NoError(t, err)

	shaft, _ := l.Lookup("Shaft")
	stepped, _ := l.Lookup("SteppedShaft")
	assert.True(t, shaft.CanCast(stepped))
}

func TestFile_BuildReportsDiagnostics(t *testing.T) {
	_, err := mustParse(t, "types:\n  - name: A\n    parent: B\n").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[unknown_parent]")
}

func TestFile_BuildWithBridge(t *testing.T) {
	f := mustParse(t, "namespace: SMT\ntypes:\n  - name: Gear\n")

	_, err := f.Build(lattice.WithBridge(handle.NewMemoryBridge()))
	require.ErrorIs(t, err, handle.ErrTypeNotFound)

	_, err = f.Build(lattice.WithBridge(handle.NewMemoryBridge(handle.TypeName{Namespace: "SMT", Name: "Gear"})))
	require.NoError(t, err)
}
