package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceSystem_KnownVendors(t *testing.T) {
	assert.Equal(t, "ccc", SourceSystem("CCC ONE"))
	assert.Equal(t, "ccc", SourceSystem("CCC Pathways"))
	assert.Equal(t, "mitchell", SourceSystem("Mitchell International"))
	assert.Equal(t, "audatex", SourceSystem("AUDATEX"))
	assert.Equal(t, "webest", SourceSystem("Web-Est"))
}

func TestSourceSystem_UnmappedPassesThrough(t *testing.T) {
	assert.Equal(t, "Garage Buddy 3000", SourceSystem("Garage Buddy 3000"))
	assert.Equal(t, "", SourceSystem(""))
}

func TestSourceSystem_CaseSensitive(t *testing.T) {
	// "ccc one" is not a listed capitalization; it passes through raw.
	assert.Equal(t, "ccc one", SourceSystem("ccc one"))
}

func TestIsMarkupRoot(t *testing.T) {
	assert.True(t, IsMarkupRoot("VehicleDamageEstimateAddRq"))
	assert.True(t, IsMarkupRoot("EstimateDocument"))
	assert.True(t, IsMarkupRoot("DamageEstimateUpload"))
	assert.False(t, IsMarkupRoot("Estimate"))
	assert.False(t, IsMarkupRoot(""))
}

func TestMarkupRoots_CoversTable(t *testing.T) {
	roots := MarkupRoots()
	assert.Len(t, roots, 3)
	for _, tag := range roots {
		assert.True(t, IsMarkupRoot(tag))
	}
}

func TestFlatRecord(t *testing.T) {
	spec, ok := FlatRecord("LIN")
	assert.True(t, ok)
	assert.Equal(t, 4, spec.MinFields)

	_, ok = FlatRecord("ZZZ")
	assert.False(t, ok)
}
