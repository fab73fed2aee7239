package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureEnum(t *testing.T) {
	assert.True(t, FeatureAll.Has(FeatureCasts|FeatureDocs))
	assert.False(t, FeatureAll.Without(FeatureDocs).Has(FeatureDocs))
	assert.Equal(t, "properties|casts|registry", FeatureAll.Without(FeatureDocs).String())
	assert.Equal(t, "none", FeatureNone.String())
	assert.Equal(t, []string{"properties", "casts", "registry", "docs"}, FeatureAll.Names())
}

func TestParseFeature(t *testing.T) {
	f, ok := ParseFeature(" Casts ")
	assert.True(t, ok)
	assert.Equal(t, FeatureCasts, f)

	f, ok = ParseFeature("all")
	assert.True(t, ok)
	assert.Equal(t, FeatureAll, f)

	_, ok = ParseFeature("mutators")
	assert.False(t, ok)
}

func TestFeatureCombinations(t *testing.T) {
	assert.IsType(t, FeatureEnum(0), FeatureAll)
	assert.IsType(t, FeatureEnum(0), FeatureNone)

	f := FeatureNone
	f |= FeatureProperties
	f |= FeatureRegistry
	assert.Equal(t, "properties|registry", f.String())
}
