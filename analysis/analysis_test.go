package analysis_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proxy-lattice/analysis"
	"proxy-lattice/handle"
	"proxy-lattice/lattice"
	"proxy-lattice/proxy"
)

const (
	analysesNS   = "SMT.MastaAPI.SystemModelAnalyses"
	componentsNS = "SMT.MastaAPI.SystemModelAnalyses.Components"
)

func object(ns, name string, fields map[string]any) *handle.Object {
	return handle.NewObject(handle.TypeName{Namespace: ns, Name: name}, fields)
}

func wrap(t *testing.T, h handle.Handle) *proxy.Proxy {
	t.Helper()

	p, err := analysis.Wrap(h)
	require.NoError(t, err)

	return p
}

func ExampleAnalysisCaseCastTo() {
	h := object(analysesNS, "AdvancedSystemDeflection", map[string]any{
		"Name":              "Drive cycle",
		"NumberOfTimeSteps": 64,
	})

	p, _ := analysis.Wrap(h)
	asd := analysis.WrapAdvancedSystemDeflection(p)

	base, _ := asd.CastTo().AnalysisCase()
	fmt.Println(base.Name())

	back, _ := base.CastTo().AdvancedSystemDeflection()
	fmt.Println(back.NumberOfTimeSteps())

	_, err := base.CastTo().SteadyStateSynchronousResponse()
	fmt.Println(err)
	// Output:
	// Drive cycle
	// 64
	// failed to cast Analysis Case to Steady State Synchronous Response: runtime type is Advanced System Deflection
}

func TestLattice(t *testing.T) {
	l := analysis.Lattice()
	require.Same(t, l, analysis.Lattice())

	assert.Equal(t, 10, l.Len())

	sub, ok := l.Lookup("AdvancedSystemDeflectionSubAnalysis")
	require.True(t, ok)
	assert.Equal(t, 3, sub.Depth())

	gear, ok := l.ByExternal(handle.TypeName{Namespace: componentsNS, Name: "GearAnalysis"})
	require.True(t, ok)
	assert.Equal(t, "ComponentAnalysis", gear.Parent().Name())
}

func TestEveryAncestorCastSucceeds(t *testing.T) {
	for _, n := range analysis.Lattice().Nodes() {
		if n.Abstract() {
			continue
		}

		p := wrap(t, object(n.External().Namespace, n.Name(), nil))

		for _, a := range n.Ancestors() {
			up, err := p.Cast().To(a.Name())
			require.NoError(t, err, "%s -> %s", n.Name(), a.Name())
			assert.Equal(t, a, up.Node())
			assert.True(t, up.SameHandle(p))
		}
	}
}

func TestProperties(t *testing.T) {
	pinion := object(componentsNS, "GearAnalysis", map[string]any{"Name": "Pinion", "NumberOfTeeth": 17})
	wheel := object(componentsNS, "GearAnalysis", map[string]any{"Name": "Wheel", "NumberOfTeeth": int32(53)})
	shaft := object(componentsNS, "ShaftAnalysis", map[string]any{"Name": "Input", "Mass": float32(2.5)})

	sd := object(analysesNS, "SystemDeflection", map[string]any{
		"Name":           "Static",
		"TimeToComplete": 1.25,
		"IterationCount": 12,
		"Converged":      true,
		"Results":        []handle.Handle{shaft, pinion, wheel},
	})

	pinion = object(componentsNS, "GearAnalysis", map[string]any{
		"Name":         "Pinion",
		"AnalysisCase": sd,
		"MeshedGears":  handle.Slice{wheel},
	})

	s := analysis.WrapSystemDeflection(wrap(t, sd))
	assert.Equal(t, "Static", s.Name())
	assert.InDelta(t, 1.25, s.TimeToComplete(), 1e-12)
	assert.Equal(t, int64(12), s.IterationCount())
	assert.True(t, s.Converged())

	results := s.Results()
	require.Len(t, results, 3)
	assert.Equal(t, []string{"Input", "Pinion", "Wheel"}, []string{results[0].Name(), results[1].Name(), results[2].Name()})
	assert.Equal(t, "ShaftAnalysis", results[0].Proxy().TypeName(), "elements wrap by runtime type")

	sa, err := results[0].CastTo().ShaftAnalysis()
	require.NoError(t, err)
	assert.InDelta(t, 2.5, sa.Mass(), 1e-6)

	g := analysis.WrapGearAnalysis(wrap(t, pinion))
	assert.Equal(t, "Static", g.AnalysisCase().Name())
	require.Len(t, g.MeshedGears(), 1)
	assert.Equal(t, int64(53), g.MeshedGears()[0].NumberOfTeeth())
}

func TestAbsentProperties(t *testing.T) {
	s := analysis.WrapSteadyStateSynchronousResponse(wrap(t, object(analysesNS, "SteadyStateSynchronousResponse", nil)))

	assert.Zero(t, s.RotationalSpeed())
	assert.Zero(t, s.NumberOfModes())
	assert.Empty(t, s.Name())
	assert.Nil(t, s.Results())

	g := analysis.WrapGearAnalysis(wrap(t, object(componentsNS, "GearAnalysis", nil)))
	assert.Nil(t, g.AnalysisCase())
	assert.Nil(t, g.MeshedGears())

	// A nil proxy reads as all defaults too.
	var none *analysis.GearAnalysis
	assert.Nil(t, none.Proxy())
	assert.Zero(t, none.NumberOfTeeth())
	assert.Nil(t, none.AnalysisCase())
}

func TestCastFailures(t *testing.T) {
	p := wrap(t, object(analysesNS, "DynamicAnalysis", nil))
	dyn := analysis.WrapDynamicAnalysis(p)

	_, err := dyn.CastTo().SteadyStateSynchronousResponse()
	require.ErrorIs(t, err, lattice.ErrInvalidCast)

	var ice *lattice.InvalidCastError
	require.True(t, errors.As(err, &ice))
	assert.Equal(t, lattice.CastRuntimeMismatch, ice.Reason)

	_, err = p.Cast().To("SystemDeflection")
	require.ErrorIs(t, err, lattice.ErrInvalidCast)
	assert.Contains(t, err.Error(), "System Deflection")
	assert.Contains(t, err.Error(), "not a declared cast target")

	var none *analysis.DynamicAnalysis
	_, err = none.CastTo().AnalysisCase()
	require.ErrorIs(t, err, lattice.ErrInvalidCast)
}
