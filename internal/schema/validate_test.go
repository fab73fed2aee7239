package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proxy-lattice/internal/diagnostic"
)

func mustParse(t *testing.T, src string) *File {
	t.Helper()

	f, err := Parse([]byte(src))
	require.NoError(t, err)

	return f
}

func TestValidate_Valid(t *testing.T) {
	res := Validate(mustParse(t, analysisYAML))

	assert.False(t, res.HasErrors(), res.Err())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{CodeSchemaNil}, res.Codes())
}

func TestValidate_Version(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"1", true},
		{"1.4.2", true},
		{"2.0.0", false},
		{"0.9.0", false},
		{"latest", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			res := Validate(&File{Version: tt.version})
			if tt.ok {
				assert.False(t, res.HasErrors())
			} else {
				assert.Equal(t, []string{CodeUnsupportedVersion}, res.Codes())
			}
		})
	}
}

func TestValidate_Types(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want []string
	}{
		{
			name: "empty name",
			yaml: "types:\n  - parent: A\n",
			want: []string{CodeEmptyTypeName},
		},
		{
			name: "duplicate",
			yaml: "types:\n  - name: A\n  - name: A\n",
			want: []string{CodeDuplicateType},
		},
		{
			name: "unexported",
			yaml: "types:\n  - name: gear\n",
			want: []string{CodeInvalidIdentifier},
		},
		{
			name: "reserved",
			yaml: "types:\n  - name: Lattice\n",
			want: []string{CodeReservedTypeName},
		},
		{
			name: "cast helper clash",
			yaml: "types:\n  - name: Gear\n  - name: GearCastTo\n",
			want: []string{CodeReservedTypeName},
		},
		{
			name: "constructor clash",
			yaml: "types:\n  - name: Bar\n  - name: WrapBar\n",
			want: []string{CodeReservedTypeName},
		},
		{
			name: "cycle",
			yaml: "types:\n  - name: A\n    parent: B\n  - name: B\n    parent: A\n",
			want: []string{CodeParentCycle},
		},
		{
			name: "cast not descendant",
			yaml: "types:\n  - name: A\n    casts: B\n  - name: B\n",
			want: []string{CodeCastNotDescendant},
		},
		{
			name: "cast upward",
			yaml: "types:\n  - name: A\n  - name: B\n    parent: A\n    casts: A\n",
			want: []string{CodeCastNotDescendant},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(mustParse(t, tt.yaml))
			assert.Equal(t, tt.want, res.Codes(), res.Err())
		})
	}
}

func TestValidate_GeneratedNamesWithoutBase(t *testing.T) {
	res := Validate(mustParse(t, "types:\n  - name: WrapBar\n  - name: GearCastTo\n  - name: CastTo\n"))
	assert.Empty(t, res.Codes(), res.Err())

	res = Validate(mustParse(t, "types:\n  - name: Gear\n  - name: GearCastTo\n"))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "GearCastTo", res.Errors[0].TypeName)
	assert.Contains(t, res.Errors[0].Message, `cast helper of "Gear"`)
}

func TestValidate_UnknownReferencesSuggest(t *testing.T) {
	f := mustParse(t, `
types:
  - name: AnalysisCase
    casts: [SystemDeflexion]
  - name: SystemDeflection
    parent: AnalysisCas
  - name: Gear
    properties:
      - Analysis: SystemDeflektion
`)

	res := Validate(f)
	require.True(t, res.HasErrors())
	assert.Equal(t, []string{CodeUnknownCastTarget, CodeUnknownParent, CodeUnknownPropertyType}, res.Codes())

	byCode := map[string]diagnostic.Diagnostic{}
	for _, d := range res.Errors {
		byCode[d.Code] = d
	}

	assert.Equal(t, []string{"AnalysisCase"}, byCode[CodeUnknownParent].Suggestions)
	assert.Equal(t, "SystemDeflection", byCode[CodeUnknownCastTarget].Suggestions[0])
	assert.Equal(t, "SystemDeflection", byCode[CodeUnknownPropertyType].Suggestions[0])
	assert.Equal(t, "Analysis", byCode[CodeUnknownPropertyType].Property)
}

func TestValidate_Properties(t *testing.T) {
	f := mustParse(t, `
types:
  - name: Base
    properties:
      - Name: string
  - name: Gear
    parent: Base
    properties:
      - Name: string
      - Teeth: int
      - Teeth: int
      - Proxy: string
      - lower: string
      - Width: decimal
      - name: Mode
        kind: tensor
        type: float
`)

	res := Validate(f)

	assert.Equal(t, []string{
		CodeDuplicateProperty,
		CodeInvalidIdentifier,
		CodeInvalidPropertyKind,
		CodeReservedProperty,
		CodeUnknownPropertyType,
	}, res.Codes())

	var dups []string
	for _, d := range res.Errors {
		if d.Code == CodeDuplicateProperty {
			dups = append(dups, d.Message)
		}
	}

	assert.Equal(t, []string{"property is already declared by Base", "property is declared twice"}, dups)
}

func TestValidate_Warnings(t *testing.T) {
	f := mustParse(t, `
types:
  - name: Shaft
    abstract: true
    casts: Shaft
`)

	res := Validate(f)
	assert.False(t, res.HasErrors())

	codes := make([]string, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []string{CodeCastToSelf, CodeAbstractLeaf}, codes)
}
