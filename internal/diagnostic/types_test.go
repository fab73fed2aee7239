package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Code:        "unknown_parent",
		Message:     `unknown parent "SystemDeflexion"`,
		TypeName:    "AdvancedSystemDeflection",
		Suggestions: []string{"SystemDeflection"},
	}
	assert.Equal(t,
		`[AdvancedSystemDeflection]: [unknown_parent] unknown parent "SystemDeflexion" (did you mean SystemDeflection?)`,
		d.String())

	d = Diagnostic{Code: "duplicate_property", Message: "declared twice", TypeName: "Gear", Property: "Mass"}
	assert.Equal(t, "[Gear] Mass: [duplicate_property] declared twice", d.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestDiagnosticsErr(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Err())

	d.AddWarning("abstract_leaf", "abstract type has no descendants", "Gear", "")
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Err())

	d.AddError("b_code", "second", "", "")
	d.AddError("a_code", "first", "", "")
	d.AddError("a_code", "again", "", "")

	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Err(), "[b_code] second; [a_code] first; [a_code] again")
	assert.Equal(t, []string{"a_code", "b_code"}, d.Codes())

	var other Diagnostics
	other.AddError("c_code", "third", "", "")
	d.Merge(other)
	assert.Len(t, d.Errors, 4)
	assert.Len(t, d.Warnings, 1)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(0).String())
}
