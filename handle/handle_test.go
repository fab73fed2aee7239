package handle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proxy-lattice/handle"
)

func TestParseTypeName(t *testing.T) {
	tests := []struct {
		in   string
		want handle.TypeName
	}{
		{"SMT.MastaAPI.Gear", handle.TypeName{Namespace: "SMT.MastaAPI", Name: "Gear"}},
		{"Gear", handle.TypeName{Name: "Gear"}},
		{"", handle.TypeName{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := handle.ParseTypeName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestObjectField(t *testing.T) {
	obj := handle.NewObject(handle.TypeName{Name: "Shaft"}, map[string]any{
		"Length": 1.5,
		"Label":  nil,
	})

	v, ok := obj.Field("Length")
	require.True(t, ok)
	assert.InDelta(t, 1.5, v, 1e-12)

	_, ok = obj.Field("Label")
	assert.False(t, ok, "nil values read as absent")

	_, ok = obj.Field("Missing")
	assert.False(t, ok)

	var nilObj *handle.Object
	_, ok = nilObj.Field("Length")
	assert.False(t, ok)
	assert.True(t, nilObj.Type().IsZero())
}

func TestObjectCopiesFields(t *testing.T) {
	fields := map[string]any{"Mass": 3.0}
	obj := handle.NewObject(handle.TypeName{Name: "Gear"}, fields)
	fields["Mass"] = 4.0

	v, _ := obj.Field("Mass")
	assert.InDelta(t, 3.0, v, 1e-12)
}

func TestMemoryBridge(t *testing.T) {
	gear := handle.TypeName{Namespace: "SMT.MastaAPI", Name: "Gear"}
	b := handle.NewMemoryBridge(gear)

	got, err := b.Import("SMT.MastaAPI", "Gear")
	require.NoError(t, err)
	assert.Equal(t, gear, got)

	_, err = b.Import("SMT.MastaAPI", "Bearing")
	require.ErrorIs(t, err, handle.ErrTypeNotFound)
	assert.Contains(t, err.Error(), "SMT.MastaAPI.Bearing")

	var zero handle.MemoryBridge
	zero.Register(handle.TypeName{Name: "B"}, handle.TypeName{Name: "A"})
	assert.Equal(t, []handle.TypeName{{Name: "A"}, {Name: "B"}}, zero.Types())
}
