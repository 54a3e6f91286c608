package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineConstructors_ExactlyOneDetail(t *testing.T) {
	part := NewPartLine(1, "Bumper", PartDetail{Price: decimal.RequireFromString("450")})
	labor := NewLaborLine(2, "Refinish", LaborDetail{Hours: decimal.RequireFromString("2.5")})
	other := NewOtherChargeLine(3, "Materials", OtherChargeDetail{Price: decimal.RequireFromString("50")})
	bare := NewBareLine(4, "Blend", LineTypeLabor)

	for _, tc := range []struct {
		line EstimateLine
		want LineType
	}{
		{part, LineTypePart},
		{labor, LineTypeLabor},
		{other, LineTypeOtherCharge},
		{bare, LineTypeLabor},
	} {
		assert.Equal(t, tc.want, tc.line.Type)

		present := 0
		if tc.line.Part != nil {
			present++
		}
		if tc.line.Labor != nil {
			present++
		}
		if tc.line.Other != nil {
			present++
		}
		assert.LessOrEqual(t, present, 1, "line %d", tc.line.LineNumber)
	}

	assert.True(t, part.HasDetail())
	assert.False(t, bare.HasDetail())
}

func TestMalformedDocumentError_WrapsCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NewMalformedDocumentError("markup", cause)

	assert.Contains(t, err.Error(), "markup")
	assert.Contains(t, err.Error(), "unexpected EOF")
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("importing: %w", err)
	assert.True(t, IsMalformedDocument(wrapped))

	var target *MalformedDocumentError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "markup", target.Format)
}

func TestIsMalformedDocument_OtherErrors(t *testing.T) {
	assert.False(t, IsMalformedDocument(ErrEmptyInput))
	assert.False(t, IsMalformedDocument(nil))
}
