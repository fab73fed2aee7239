package proxy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proxy-lattice/lattice"
	"proxy-lattice/proxy"
)

func TestCastUpAndBackDown(t *testing.T) {
	l := fixture(t)
	h := obj("AdvancedSystemDeflection", map[string]any{"Name": "asd"})
	p := proxy.MustWrap(l, h)

	up, err := p.Cast().To("SystemDeflection")
	require.NoError(t, err)
	assert.Equal(t, "SystemDeflection", up.TypeName())
	assert.True(t, up.SameHandle(p))
	assert.Equal(t, "asd", up.String("Name"))

	down, err := up.Cast().To("AdvancedSystemDeflection")
	require.NoError(t, err)
	assert.Equal(t, "AdvancedSystemDeflection", down.TypeName())
}

func TestCastDowncastRuntimeMismatch(t *testing.T) {
	l := fixture(t)
	p := proxy.MustWrap(l, obj("SystemDeflection", nil))

	_, err := p.Cast().To("AdvancedSystemDeflection")
	require.True(t, errors.Is(err, lattice.ErrInvalidCast))

	var castErr *lattice.InvalidCastError
	require.ErrorAs(t, err, &castErr)
	assert.Equal(t, lattice.CastRuntimeMismatch, castErr.Reason)
}

func TestCastUndeclaredTarget(t *testing.T) {
	l := fixture(t)
	p := proxy.MustWrap(l, obj("DynamicAnalysis", nil))

	_, err := p.Cast().To("SystemDeflection")
	require.ErrorIs(t, err, lattice.ErrInvalidCast)
	assert.Contains(t, err.Error(), "System Deflection")

	_, err = p.Cast().To("Gearbox")
	require.ErrorIs(t, err, lattice.ErrInvalidCast)
	assert.Contains(t, err.Error(), "Gearbox")
}

func TestCastTargets(t *testing.T) {
	l := fixture(t)
	p := proxy.MustWrap(l, obj("SystemDeflection", nil))

	assert.Equal(t, []string{"SystemDeflection", "AnalysisCase", "AdvancedSystemDeflection"}, p.Cast().Targets())

	var nilProxy *proxy.Proxy
	assert.Nil(t, nilProxy.Cast().Targets())

	_, err := nilProxy.Cast().To("AnalysisCase")
	require.ErrorIs(t, err, lattice.ErrInvalidCast)
}
