package unit

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
)

func TestDescribeNamedUnit(t *testing.T) {
	d, err := Describe(Newton)
	require.NoError(t, err)

	assert.Equal(t, "1", d.Multiplier)
	assert.Equal(t, [7]string{"1/1", "1/1", "-2/1", "0/1", "0/1", "0/1", "0/1"}, d.Exponents)
	assert.Equal(t, DefaultLabels, d.Labels)
	assert.Equal(t, "force", d.Tag)
	assert.Equal(t, "N", d.Symbol)
	assert.Equal(t, "N", d.Display)

	id, err := uuid.Parse(d.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), id.Version())
}

func TestDescribeGeneric(t *testing.T) {
	d := MustDescribe(Of(0.5, dimension.Mass.Mul(dimension.Temperature)))
	assert.Equal(t, "0.5", d.Multiplier)
	assert.Equal(t, "uncategorized", d.Tag)
	assert.Empty(t, d.Symbol)
	assert.Equal(t, "0.5 kg·K", d.Display)
}

func TestDescribeIDIsDeterministic(t *testing.T) {
	a := MustDescribe(Joule)
	b := MustDescribe(Newton.Mul(Meter))
	assert.Equal(t, a.ID, b.ID)

	assert.NotEqual(t, MustDescribe(Newton).ID, MustDescribe(Joule).ID)
	assert.NotEqual(t, MustDescribe(Meter).ID, MustDescribe(Of(1000, dimension.Length)).ID)
}

func TestDescribeNilIsOne(t *testing.T) {
	assert.Equal(t, MustDescribe(One), MustDescribe(nil))
	assert.Equal(t, "1", MustDescribe(nil).Display)
}
