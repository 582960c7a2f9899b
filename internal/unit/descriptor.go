package unit

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/geometryzen/multivectors-sub001/internal/canonical"
)

// descriptorNamespace scopes descriptor IDs (UUIDv5).
var descriptorNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:multivectors:unit-of-measure"))

// Descriptor is a serializable description of a unit.
type Descriptor struct {
	// ID is a deterministic UUIDv5 over the canonical JSON of the
	// multiplier, exponents and labels.
	ID         string    `json:"id"`
	Multiplier string    `json:"multiplier"`
	Exponents  [7]string `json:"exponents"`
	Labels     [7]string `json:"labels"`
	Tag        string    `json:"tag"`
	Symbol     string    `json:"symbol,omitempty"`
	Display    string    `json:"display"`
}

// Describe builds the Descriptor for u. A nil unit is described as One.
func Describe(u *Unit) (Descriptor, error) {
	if u == nil {
		u = One
	}

	d := Descriptor{
		Multiplier: strconv.FormatFloat(u.multiplier, 'g', -1, 64),
		Labels:     u.labels,
		Tag:        u.dims.Tag().String(),
		Display:    u.String(),
	}
	for i, e := range u.dims.Exponents() {
		d.Exponents[i] = e.String()
	}
	d.Symbol, _ = Symbol(u.dims)

	body, err := canonical.Marshal(map[string]any{
		"multiplier": d.Multiplier,
		"exponents":  d.Exponents[:],
		"labels":     d.Labels[:],
	})
	if err != nil {
		return Descriptor{}, fmt.Errorf("describe unit %s: %w", u, err)
	}
	d.ID = uuid.NewSHA1(descriptorNamespace, body).String()
	return d, nil
}

// MustDescribe is like Describe but panics on error.
// Use only in tests.
func MustDescribe(u *Unit) Descriptor {
	d, err := Describe(u)
	if err != nil {
		panic(err)
	}
	return d
}
