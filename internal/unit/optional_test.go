package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
	"github.com/geometryzen/multivectors-sub001/internal/rational"
)

func TestOptionalMul(t *testing.T) {
	assert.Nil(t, Mul(nil, nil))
	assert.Same(t, Meter, Mul(nil, Meter))
	assert.Same(t, Meter, Mul(Meter, nil))
	assert.Same(t, SquareMeter, Mul(Meter, Meter))
}

func TestOptionalDiv(t *testing.T) {
	assert.Nil(t, Div(nil, nil))
	assert.Same(t, Meter, Div(Meter, nil))
	assert.Same(t, Hertz, Div(nil, Second))
	assert.Same(t, MeterPerSecond, Div(Meter, Second))
}

func TestOptionalUnary(t *testing.T) {
	assert.Nil(t, Pow(nil, rational.Two))
	assert.Nil(t, Sqrt(nil))
	assert.Nil(t, Inv(nil))

	assert.Same(t, SquareMeter, Pow(Meter, rational.Two))
	assert.Same(t, Meter, Sqrt(SquareMeter))
	assert.Same(t, Hertz, Inv(Second))
}

func TestOptionalIsOne(t *testing.T) {
	assert.True(t, IsOne(nil))
	assert.True(t, IsOne(One))
	assert.False(t, IsOne(Meter))
}

func TestOptionalCompatible(t *testing.T) {
	got, err := Compatible(nil, nil, dimension.Strict)
	require.NoError(t, err)
	assert.Nil(t, got)

	scalar := Of(2, dimension.One)
	got, err = Compatible(nil, scalar, dimension.Strict)
	require.NoError(t, err)
	assert.Same(t, scalar, got)

	got, err = Compatible(scalar, nil, dimension.Strict)
	require.NoError(t, err)
	assert.Same(t, scalar, got)

	got, err = Compatible(Meter, Of(0.01, dimension.Length), dimension.Strict)
	require.NoError(t, err)
	assert.Same(t, Meter, got)
}

func TestOptionalCompatibleStrictErrors(t *testing.T) {
	_, err := Compatible(nil, Meter, dimension.Strict)
	assert.EqualError(t, err, "Dimensions must be equal (dimensionless, length)")

	_, err = Compatible(Meter, nil, dimension.Strict)
	assert.EqualError(t, err, "Dimensions must be equal (length, dimensionless)")

	_, err = Compatible(Meter, Kilogram, dimension.Strict)
	assert.EqualError(t, err, "Dimensions must be equal (length, mass)")
}

func TestOptionalCompatibleNone(t *testing.T) {
	got, err := Compatible(nil, Meter, dimension.None)
	require.NoError(t, err)
	assert.Same(t, Meter, got)

	got, err = Compatible(Meter, nil, dimension.None)
	require.NoError(t, err)
	assert.Same(t, Meter, got)
}

func TestOptionalIsCompatible(t *testing.T) {
	assert.True(t, IsCompatible(nil, nil, dimension.Strict))
	assert.True(t, IsCompatible(nil, One, dimension.Strict))
	assert.False(t, IsCompatible(nil, Meter, dimension.Strict))
	assert.True(t, IsCompatible(nil, Meter, dimension.None))
	assert.False(t, IsCompatible(Meter, Second, dimension.Strict))
}
