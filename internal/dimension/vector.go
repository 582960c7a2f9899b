package dimension

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/geometryzen/multivectors-sub001/internal/intern"
	"github.com/geometryzen/multivectors-sub001/internal/rational"
)

// Base dimension indices into a Vector's exponents.
const (
	IndexMass = iota
	IndexLength
	IndexTime
	IndexCharge
	IndexTemperature
	IndexAmount
	IndexIntensity
)

// baseNames label the base dimensions when rendering a Vector.
var baseNames = [7]string{"mass", "length", "time", "charge", "temperature", "amount", "intensity"}

// Key is the packed signature of a Vector: numer/denom pairs in M, L, T, Q,
// Θ, N, J order.
type Key [14]int64

// Vector is an immutable, interned dimension vector.
type Vector struct {
	exps [7]*rational.Rational
	tag  Tag
}

var (
	cache = intern.New[Key, *Vector]()

	// tagIndex resolves a signature to its tag; tagged holds the singleton
	// for each tag.
	tagIndex, tagged = buildTagTables()
)

// Singletons for every known tag.
var (
	One                           = tagged[TagOne]
	Mass                          = tagged[TagMass]
	Length                        = tagged[TagLength]
	Time                          = tagged[TagTime]
	Charge                        = tagged[TagCharge]
	Current                       = tagged[TagCurrent]
	Temperature                   = tagged[TagTemperature]
	Amount                        = tagged[TagAmount]
	Intensity                     = tagged[TagIntensity]
	Area                          = tagged[TagArea]
	Volume                        = tagged[TagVolume]
	Velocity                      = tagged[TagVelocity]
	VelocitySquared               = tagged[TagVelocitySquared]
	Acceleration                  = tagged[TagAcceleration]
	Momentum                      = tagged[TagMomentum]
	MomentumSquared               = tagged[TagMomentumSquared]
	AngularMomentum               = tagged[TagAngularMomentum]
	Force                         = tagged[TagForce]
	EnergyOrTorque                = tagged[TagEnergyOrTorque]
	Power                         = tagged[TagPower]
	Stiffness                     = tagged[TagStiffness]
	ElectricField                 = tagged[TagElectricField]
	ElectricPotential             = tagged[TagElectricPotential]
	InvLength                     = tagged[TagInvLength]
	InvTime                       = tagged[TagInvTime]
	InvMass                       = tagged[TagInvMass]
	InvMomentum                   = tagged[TagInvMomentum]
	TimeSquared                   = tagged[TagTimeSquared]
	RateOfChangeOfArea            = tagged[TagRateOfChangeOfArea]
	ElectricPermittivityTimesArea = tagged[TagElectricPermittivityTimesArea]
)

// buildTagTables builds the classification index and the tagged singletons.
// Panics if two rows share a signature: the table must be a partition.
func buildTagTables() (map[Key]Tag, [tagCount]*Vector) {
	index := make(map[Key]Tag, tagCount)
	var singletons [tagCount]*Vector
	for _, t := range Tags() {
		var exps [7]*rational.Rational
		for i, n := range tagTable[t].exps {
			exps[i] = rational.Int(n)
		}
		k := keyOf(exps)
		if prev, dup := index[k]; dup {
			panic(fmt.Sprintf("dimension: tags %s and %s share a signature", prev, t))
		}
		index[k] = t
		singletons[t] = &Vector{exps: exps, tag: t}
	}
	return index, singletons
}

func keyOf(exps [7]*rational.Rational) Key {
	var k Key
	for i, e := range exps {
		k[2*i] = e.Numer()
		k[2*i+1] = e.Denom()
	}
	return k
}

// Of returns the canonical Vector with the given exponents.
func Of(m, l, t, q, theta, n, j *rational.Rational) *Vector {
	return ofExps([7]*rational.Rational{m, l, t, q, theta, n, j})
}

// FromTag returns the singleton for a known tag.
func FromTag(t Tag) (*Vector, bool) {
	if !t.Known() {
		return nil, false
	}
	return tagged[t], true
}

// FromKey returns the Vector for a packed signature. Fails if any
// denominator is zero.
func FromKey(k Key) (*Vector, error) {
	var exps [7]*rational.Rational
	for i := range exps {
		e, err := rational.New(k[2*i], k[2*i+1])
		if err != nil {
			return nil, fmt.Errorf("%s exponent: %w", baseNames[i], err)
		}
		exps[i] = e
	}
	return ofExps(exps), nil
}

func ofExps(exps [7]*rational.Rational) *Vector {
	k := keyOf(exps)
	if t, ok := tagIndex[k]; ok {
		return tagged[t]
	}
	return cache.Get(k, func() *Vector {
		return &Vector{exps: exps, tag: Uncategorized}
	})
}

// M returns the mass exponent.
func (d *Vector) M() *rational.Rational { return d.exps[IndexMass] }

// L returns the length exponent.
func (d *Vector) L() *rational.Rational { return d.exps[IndexLength] }

// T returns the time exponent.
func (d *Vector) T() *rational.Rational { return d.exps[IndexTime] }

// Q returns the electric charge exponent.
func (d *Vector) Q() *rational.Rational { return d.exps[IndexCharge] }

// Theta returns the thermodynamic temperature exponent.
func (d *Vector) Theta() *rational.Rational { return d.exps[IndexTemperature] }

// N returns the amount-of-substance exponent.
func (d *Vector) N() *rational.Rational { return d.exps[IndexAmount] }

// J returns the luminous intensity exponent.
func (d *Vector) J() *rational.Rational { return d.exps[IndexIntensity] }

// Exponents returns all seven exponents in M, L, T, Q, Θ, N, J order.
func (d *Vector) Exponents() [7]*rational.Rational { return d.exps }

// Tag returns the classification tag, or Uncategorized.
func (d *Vector) Tag() Tag { return d.tag }

// Key returns the packed signature.
func (d *Vector) Key() Key { return keyOf(d.exps) }

func (d *Vector) apply(f func(i int, e *rational.Rational) *rational.Rational) *Vector {
	var out [7]*rational.Rational
	for i, e := range d.exps {
		out[i] = f(i, e)
	}
	return ofExps(out)
}

// Mul returns the dimensions of a product: exponents add.
func (d *Vector) Mul(rhs *Vector) *Vector {
	return d.apply(func(i int, e *rational.Rational) *rational.Rational {
		return e.Add(rhs.exps[i])
	})
}

// Div returns the dimensions of a quotient: exponents subtract.
func (d *Vector) Div(rhs *Vector) *Vector {
	return d.apply(func(i int, e *rational.Rational) *rational.Rational {
		return e.Sub(rhs.exps[i])
	})
}

// Pow scales every exponent by exp.
func (d *Vector) Pow(exp *rational.Rational) *Vector {
	return d.apply(func(_ int, e *rational.Rational) *rational.Rational {
		return e.Mul(exp)
	})
}

// Sqrt halves every exponent.
func (d *Vector) Sqrt() *Vector {
	return d.apply(func(_ int, e *rational.Rational) *rational.Rational {
		return e.Mul(rational.Half)
	})
}

// Inv negates every exponent.
func (d *Vector) Inv() *Vector {
	return d.apply(func(_ int, e *rational.Rational) *rational.Rational {
		return e.Neg()
	})
}

// IsOne reports whether d is dimensionless.
func (d *Vector) IsOne() bool {
	if d == One {
		return true
	}
	for _, e := range d.exps {
		if !e.IsZero() {
			return false
		}
	}
	return true
}

// Equals reports whether d and rhs have identical exponents.
func (d *Vector) Equals(rhs *Vector) bool {
	if d == rhs {
		return true
	}
	for i, e := range d.exps {
		if !e.Equals(rhs.exps[i]) {
			return false
		}
	}
	return true
}

// String renders the non-zero exponents as "label ** exponent" terms joined
// by " * ", e.g. "mass * length * time ** -2". Dimensionless renders empty.
func (d *Vector) String() string {
	terms := make([]string, 0, len(d.exps))
	for i, e := range d.exps {
		if e.IsZero() {
			continue
		}
		terms = append(terms, Term(baseNames[i], e))
	}
	return strings.Join(terms, " * ")
}

// Term renders one factor: the bare label for an exponent of exactly 1,
// "label ** n" for integral exponents and "label ** n/d" otherwise.
func Term(label string, exp *rational.Rational) string {
	switch {
	case exp.IsOne():
		return label
	case exp.Denom() == 1:
		return label + " ** " + strconv.FormatInt(exp.Numer(), 10)
	default:
		return label + " ** " + exp.String()
	}
}
