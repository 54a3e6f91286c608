package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_ChildHelpers(t *testing.T) {
	n := &Node{
		Tag: "VehicleInfo",
		Children: []*Node{
			{Tag: "VIN", Text: "1FTEX1EP4FKE12345"},
			{Tag: "ModelYear", Text: "2015"},
			{Tag: "Option", Text: "A"},
			{Tag: "Option", Text: "B"},
		},
	}

	assert.Equal(t, "2015", n.ChildText("ModelYear"))
	assert.Equal(t, "", n.ChildText("Missing"))
	assert.Nil(t, n.Child("Missing"))

	var seen []string
	n.EachChild("Option", func(c *Node) { seen = append(seen, c.Text) })
	assert.Equal(t, []string{"A", "B"}, seen)
}

func TestRow_FieldBounds(t *testing.T) {
	r := Row{Type: "TTL", Fields: []string{"Parts", "450.00"}}
	assert.Equal(t, "Parts", r.Field(0))
	assert.Equal(t, "450.00", r.Field(1))
	assert.Equal(t, "", r.Field(2))
	assert.Equal(t, "", r.Field(-1))
}

func TestTracker_AppendOnly(t *testing.T) {
	tr := NewTracker()
	assert.Empty(t, tr.Tags())

	tr.Add("EstimateDocument/Frobnicator")
	tr.Addf("flat record %s: short line: %q", "PRT", "PRT|7")

	tags := tr.Tags()
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, "EstimateDocument/Frobnicator", tags[0])
	assert.Contains(t, tags[1], "PRT|7")

	// Mutating the returned slice must not affect tracker state.
	tags[0] = "clobbered"
	assert.Equal(t, "EstimateDocument/Frobnicator", tr.Tags()[0])
}
