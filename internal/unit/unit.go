package unit

import (
	"math"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
	"github.com/geometryzen/multivectors-sub001/internal/intern"
)

// DefaultLabels are the SI base unit symbols, in M, L, T, Q, Θ, N, J order.
var DefaultLabels = [7]string{"kg", "m", "s", "C", "K", "mol", "cd"}

// Unit is an immutable, interned unit of measure.
type Unit struct {
	multiplier float64
	dims       *dimension.Vector
	labels     [7]string
}

// unitKey identifies a unit. dims is interned, so pointer equality is value
// equality.
type unitKey struct {
	bits uint64
	dims *dimension.Vector
}

var (
	cache      = intern.New[unitKey, *Unit]()
	predefined = buildPredefined()
)

// Predefined units, one per known dimension tag.
var (
	One                  = predefined[dimension.TagOne]
	Kilogram             = predefined[dimension.TagMass]
	Meter                = predefined[dimension.TagLength]
	Second               = predefined[dimension.TagTime]
	Coulomb              = predefined[dimension.TagCharge]
	Ampere               = predefined[dimension.TagCurrent]
	Kelvin               = predefined[dimension.TagTemperature]
	Mole                 = predefined[dimension.TagAmount]
	Candela              = predefined[dimension.TagIntensity]
	SquareMeter          = predefined[dimension.TagArea]
	CubicMeter           = predefined[dimension.TagVolume]
	MeterPerSecond       = predefined[dimension.TagVelocity]
	SquareMeterPerSecond = predefined[dimension.TagRateOfChangeOfArea]
	Newton               = predefined[dimension.TagForce]
	Joule                = predefined[dimension.TagEnergyOrTorque]
	JouleSecond          = predefined[dimension.TagAngularMomentum]
	Watt                 = predefined[dimension.TagPower]
	NewtonPerMeter       = predefined[dimension.TagStiffness]
	NewtonPerCoulomb     = predefined[dimension.TagElectricField]
	Volt                 = predefined[dimension.TagElectricPotential]
	InverseMeter         = predefined[dimension.TagInvLength]
	Hertz                = predefined[dimension.TagInvTime]
	InverseKilogram      = predefined[dimension.TagInvMass]
	SecondSquared        = predefined[dimension.TagTimeSquared]
	FaradMeter           = predefined[dimension.TagElectricPermittivityTimesArea]

	MeterPerSecondSquared                       = predefined[dimension.TagAcceleration]
	SquareMeterPerSecondSquared                 = predefined[dimension.TagVelocitySquared]
	KilogramMeterPerSecond                      = predefined[dimension.TagMomentum]
	KilogramSquaredMeterSquaredPerSecondSquared = predefined[dimension.TagMomentumSquared]
	SecondPerKilogramMeter                      = predefined[dimension.TagInvMomentum]
)

func buildPredefined() map[dimension.Tag]*Unit {
	units := make(map[dimension.Tag]*Unit)
	for _, t := range dimension.Tags() {
		dims, _ := dimension.FromTag(t)
		units[t] = &Unit{multiplier: 1, dims: dims, labels: DefaultLabels}
	}
	return units
}

// New returns the canonical unit multiplier * dims.
// labels must hold exactly seven entries, otherwise a *LabelArityError is
// returned. Labels only affect rendering; the first unit interned for a given
// (multiplier, dims) keeps its labels.
func New(multiplier float64, dims *dimension.Vector, labels []string) (*Unit, error) {
	if len(labels) != len(DefaultLabels) {
		return nil, &LabelArityError{Got: len(labels)}
	}
	var ls [7]string
	copy(ls[:], labels)
	return of(multiplier, dims, ls), nil
}

// Must is like New but panics on error.
// Use only in tests or when labels are known to be valid.
func Must(multiplier float64, dims *dimension.Vector, labels []string) *Unit {
	u, err := New(multiplier, dims, labels)
	if err != nil {
		panic(err)
	}
	return u
}

// Of returns the canonical unit with DefaultLabels.
func Of(multiplier float64, dims *dimension.Vector) *Unit {
	return of(multiplier, dims, DefaultLabels)
}

func of(multiplier float64, dims *dimension.Vector, labels [7]string) *Unit {
	if multiplier == 1 && dims.Tag().Known() {
		return predefined[dims.Tag()]
	}
	key := unitKey{bits: floatBits(multiplier), dims: dims}
	return cache.Get(key, func() *Unit {
		return &Unit{multiplier: multiplier, dims: dims, labels: labels}
	})
}

// floatBits folds -0 into +0 so both intern to one unit.
func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

// Multiplier returns the scale factor relative to the SI base units.
func (u *Unit) Multiplier() float64 { return u.multiplier }

// Dimensions returns the dimension vector.
func (u *Unit) Dimensions() *dimension.Vector { return u.dims }

// Labels returns a copy of the base-dimension labels.
func (u *Unit) Labels() []string {
	out := make([]string, len(u.labels))
	copy(out, u.labels[:])
	return out
}
