package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
)

func TestParseMarkup_EndToEnd(t *testing.T) {
	raw := []byte(`<EstimateDocument>
  <DocumentInfo><DocumentNum>EST-5</DocumentNum><VendorCode>Audatex</VendorCode></DocumentInfo>
  <DamageLineInfo>
    <LineNum>1</LineNum>
    <LineDesc>Grille</LineDesc>
    <PartInfo><PartNum>GR-9</PartNum><PartPrice>120.00</PartPrice><Quantity>1</Quantity></PartInfo>
  </DamageLineInfo>
</EstimateDocument>`)

	res, err := ParseMarkup(raw)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "EST-5", res.Identities.DocumentNumber)
	assert.Equal(t, "audatex", res.Meta.SourceSystem)
	require.Len(t, res.Lines, 1)
	require.Len(t, res.Parts, 1)
	assert.Equal(t, domain.CustomerTypePerson, res.Customer.Type)
	assert.Empty(t, res.Meta.UnknownTags)
}

func TestParseMarkup_EmptyInput(t *testing.T) {
	_, err := ParseMarkup(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestParseFlat_NilVersusEmptyAsymmetry(t *testing.T) {
	// nil input cannot be tokenized at all.
	_, err := ParseFlat(nil)
	assert.True(t, domain.IsMalformedDocument(err))

	// Empty text flows through to full defaults. Intentional vendor
	// compatibility behavior, not an oversight in the caller's favor.
	res, err := ParseFlat([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, "Unknown", res.Customer.FirstName)
	assert.Equal(t, "Customer", res.Customer.LastName)
}

func TestParser_UnknownTagsFromMostRecentParse(t *testing.T) {
	p := NewMarkupParser()

	_, err := p.Parse([]byte(`<EstimateDocument><Widget>x</Widget></EstimateDocument>`))
	require.NoError(t, err)
	require.Len(t, p.UnknownTags(), 1)
	assert.Contains(t, p.UnknownTags()[0], "Widget")

	_, err = p.Parse([]byte(`<EstimateDocument><DocumentInfo/></EstimateDocument>`))
	require.NoError(t, err)
	assert.Empty(t, p.UnknownTags())
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, domain.FormatMarkup, DetectFormat([]byte("  <EstimateDocument/>")))
	assert.Equal(t, domain.FormatFlat, DetectFormat([]byte("HDR|EST-1|CCC ONE")))
	assert.Equal(t, domain.FormatFlat, DetectFormat(nil))
}

func TestNewParser(t *testing.T) {
	assert.Equal(t, domain.FormatMarkup, NewParser(domain.FormatMarkup).Format())
	assert.Equal(t, domain.FormatFlat, NewParser(domain.FormatFlat).Format())
}
