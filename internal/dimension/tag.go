package dimension

import "fmt"

// Tag identifies a well-known dimension signature.
// The zero value is Uncategorized.
type Tag int

// Known tags, in classification priority order.
const (
	Uncategorized Tag = iota
	TagOne
	TagMass
	TagLength
	TagTime
	TagCharge
	TagCurrent
	TagTemperature
	TagAmount
	TagIntensity
	TagArea
	TagVolume
	TagVelocity
	TagVelocitySquared
	TagAcceleration
	TagMomentum
	TagMomentumSquared
	TagAngularMomentum
	TagForce
	TagEnergyOrTorque
	TagPower
	TagStiffness
	TagElectricField
	TagElectricPotential
	TagInvLength
	TagInvTime
	TagInvMass
	TagInvMomentum
	TagTimeSquared
	TagRateOfChangeOfArea
	TagElectricPermittivityTimesArea

	tagCount
)

// tagInfo is one row of the classification table. Exponents are integral
// for every known signature and are listed in M, L, T, Q, Θ, N, J order.
type tagInfo struct {
	name string
	exps [7]int64
}

var tagTable = [tagCount]tagInfo{
	Uncategorized:                    {name: "uncategorized"},
	TagOne:                           {"one", [7]int64{0, 0, 0, 0, 0, 0, 0}},
	TagMass:                          {"mass", [7]int64{1, 0, 0, 0, 0, 0, 0}},
	TagLength:                        {"length", [7]int64{0, 1, 0, 0, 0, 0, 0}},
	TagTime:                          {"time", [7]int64{0, 0, 1, 0, 0, 0, 0}},
	TagCharge:                        {"charge", [7]int64{0, 0, 0, 1, 0, 0, 0}},
	TagCurrent:                       {"current", [7]int64{0, 0, -1, 1, 0, 0, 0}},
	TagTemperature:                   {"temperature", [7]int64{0, 0, 0, 0, 1, 0, 0}},
	TagAmount:                        {"amount", [7]int64{0, 0, 0, 0, 0, 1, 0}},
	TagIntensity:                     {"intensity", [7]int64{0, 0, 0, 0, 0, 0, 1}},
	TagArea:                          {"area", [7]int64{0, 2, 0, 0, 0, 0, 0}},
	TagVolume:                        {"volume", [7]int64{0, 3, 0, 0, 0, 0, 0}},
	TagVelocity:                      {"velocity", [7]int64{0, 1, -1, 0, 0, 0, 0}},
	TagVelocitySquared:               {"velocity_squared", [7]int64{0, 2, -2, 0, 0, 0, 0}},
	TagAcceleration:                  {"acceleration", [7]int64{0, 1, -2, 0, 0, 0, 0}},
	TagMomentum:                      {"momentum", [7]int64{1, 1, -1, 0, 0, 0, 0}},
	TagMomentumSquared:               {"momentum_squared", [7]int64{2, 2, -2, 0, 0, 0, 0}},
	TagAngularMomentum:               {"angular_momentum", [7]int64{1, 2, -1, 0, 0, 0, 0}},
	TagForce:                         {"force", [7]int64{1, 1, -2, 0, 0, 0, 0}},
	TagEnergyOrTorque:                {"energy_or_torque", [7]int64{1, 2, -2, 0, 0, 0, 0}},
	TagPower:                         {"power", [7]int64{1, 2, -3, 0, 0, 0, 0}},
	TagStiffness:                     {"stiffness", [7]int64{1, 0, -2, 0, 0, 0, 0}},
	TagElectricField:                 {"electric_field", [7]int64{1, 1, -2, -1, 0, 0, 0}},
	TagElectricPotential:             {"electric_potential", [7]int64{1, 2, -2, -1, 0, 0, 0}},
	TagInvLength:                     {"inv_length", [7]int64{0, -1, 0, 0, 0, 0, 0}},
	TagInvTime:                       {"inv_time", [7]int64{0, 0, -1, 0, 0, 0, 0}},
	TagInvMass:                       {"inv_mass", [7]int64{-1, 0, 0, 0, 0, 0, 0}},
	TagInvMomentum:                   {"inv_momentum", [7]int64{-1, -1, 1, 0, 0, 0, 0}},
	TagTimeSquared:                   {"time_squared", [7]int64{0, 0, 2, 0, 0, 0, 0}},
	TagRateOfChangeOfArea:            {"rate_of_change_of_area", [7]int64{0, 2, -1, 0, 0, 0, 0}},
	TagElectricPermittivityTimesArea: {"electric_permittivity_times_area", [7]int64{-1, -1, 2, 2, 0, 0, 0}},
}

// String returns the snake_case name of the tag.
func (t Tag) String() string {
	if t < 0 || t >= tagCount {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagTable[t].name
}

// Known reports whether t names one of the well-known signatures.
func (t Tag) Known() bool {
	return t > Uncategorized && t < tagCount
}

// Tags returns every known tag in priority order.
func Tags() []Tag {
	tags := make([]Tag, 0, tagCount-1)
	for t := TagOne; t < tagCount; t++ {
		tags = append(tags, t)
	}
	return tags
}
