package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"AdvancedSystemDeflection", []string{"Advanced", "System", "Deflection"}},
		{"FEModelPart", []string{"FE", "Model", "Part"}},
		{"gearMesh", []string{"gear", "Mesh"}},
		{"steady_state-response", []string{"steady", "state", "response"}},
		{"ID", []string{"ID"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Steady State Synchronous Response", Title("SteadyStateSynchronousResponse"))
	assert.Equal(t, "Gear Mesh", Title("gearMesh"))
	assert.Equal(t, "CVT Belt Connection", Title("CVTBeltConnection"))
	assert.Equal(t, "", Title(""))
}

func TestSnake(t *testing.T) {
	assert.Equal(t, "advanced_system_deflection", Snake("AdvancedSystemDeflection"))
	assert.Equal(t, "fe_model_part", Snake("FEModelPart"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Normalize("GearSet"), Normalize("gear_set"))
	assert.Equal(t, Normalize("GearSet"), Normalize("gear-set"))
	assert.Equal(t, "gearset", Normalize("GEAR_SET"))
}
