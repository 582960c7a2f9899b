package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
	"github.com/geometryzen/multivectors-sub001/internal/rational"
	"github.com/geometryzen/multivectors-sub001/internal/unit"
)

// Scenario defines a dimensional-analysis scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Policy is the checking policy for the whole run; empty means strict.
	Policy string `yaml:"policy,omitempty"`

	// Labels overrides the base labels used to render generic units.
	Labels []string `yaml:"labels,omitempty"`

	// Units declares the initial bindings.
	Units map[string]UnitDef `yaml:"units"`

	// Flow is applied in order.
	Flow []FlowStep `yaml:"flow"`

	// Assertions are evaluated after the flow.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// UnitDef declares a unit from its exponents and an optional multiplier.
type UnitDef struct {
	Exponents  string   `yaml:"exponents"`
	Multiplier *float64 `yaml:"multiplier,omitempty"`
}

// FlowStep applies one operation.
type FlowStep struct {
	Op  string `yaml:"op"`
	LHS string `yaml:"lhs"`
	RHS string `yaml:"rhs,omitempty"`

	// Exponent is a rational such as "2" or "1/2" (pow only).
	Exponent string `yaml:"exponent,omitempty"`

	// Factor scales the multiplier (scale only).
	Factor *float64 `yaml:"factor,omitempty"`

	// As binds a successful result under a new or existing name.
	As string `yaml:"as,omitempty"`

	// Expect validates the outcome. If nil the step must succeed.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a step.
type ExpectClause struct {
	// Display is the expected compact base-10 rendering.
	Display string `yaml:"display,omitempty"`

	// Tag is the expected dimension tag name.
	Tag string `yaml:"tag,omitempty"`

	// Error is "incompatible" for a dimension mismatch, or any other text
	// expected in the error message.
	Error string `yaml:"error,omitempty"`
}

// Assertion validates the trace or the final bindings.
type Assertion struct {
	Type  string `yaml:"type"`
	Op    string `yaml:"op,omitempty"`
	As    string `yaml:"as,omitempty"`
	Count int    `yaml:"count,omitempty"`
	Unit  string `yaml:"unit,omitempty"`
	Value string `yaml:"value,omitempty"`
}

// Operation names.
const (
	OpMul        = "mul"
	OpDiv        = "div"
	OpAdd        = "add"
	OpSub        = "sub"
	OpCompatible = "compatible"
	OpInv        = "inv"
	OpSqrt       = "sqrt"
	OpPow        = "pow"
	OpScale      = "scale"
)

// Assertion type constants.
const (
	AssertTraceContains = "trace_contains"
	AssertTraceCount    = "trace_count"
	AssertUnitDisplay   = "unit_display"
	AssertUnitTag       = "unit_tag"
)

// ExpectIncompatible matches a dimension mismatch in ExpectClause.Error.
const ExpectIncompatible = "incompatible"

func isBinary(op string) bool {
	switch op {
	case OpMul, OpDiv, OpAdd, OpSub, OpCompatible:
		return true
	}
	return false
}

func isUnary(op string) bool {
	switch op {
	case OpInv, OpSqrt, OpPow, OpScale:
		return true
	}
	return false
}

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected so typos surface as errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks required fields and that every unit and step is
// well formed. Unknown names in lhs/rhs are left to Run, since earlier
// steps may bind them.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Policy != "" {
		if _, err := dimension.ParsePolicy(s.Policy); err != nil {
			return err
		}
	}
	if len(s.Labels) != 0 && len(s.Labels) != len(unit.DefaultLabels) {
		return &unit.LabelArityError{Got: len(s.Labels)}
	}
	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}

	for name, def := range s.Units {
		if _, err := dimension.Parse(def.Exponents); err != nil {
			return fmt.Errorf("units[%s]: %w", name, err)
		}
	}

	for i, step := range s.Flow {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}
	return nil
}

func validateStep(index int, step *FlowStep) error {
	if step.LHS == "" {
		return fmt.Errorf("flow[%d]: lhs is required", index)
	}
	switch {
	case isBinary(step.Op):
		if step.RHS == "" {
			return fmt.Errorf("flow[%d]: rhs is required for %s", index, step.Op)
		}
	case isUnary(step.Op):
		if step.RHS != "" {
			return fmt.Errorf("flow[%d]: %s takes no rhs", index, step.Op)
		}
	default:
		return fmt.Errorf("flow[%d]: unknown op %q", index, step.Op)
	}

	switch step.Op {
	case OpPow:
		if step.Exponent == "" {
			return fmt.Errorf("flow[%d]: exponent is required for pow", index)
		}
		if _, err := rational.Parse(step.Exponent); err != nil {
			return fmt.Errorf("flow[%d]: %w", index, err)
		}
	case OpScale:
		if step.Factor == nil {
			return fmt.Errorf("flow[%d]: factor is required for scale", index)
		}
	}

	if step.Expect != nil && step.Expect.Error != "" && step.As != "" {
		return fmt.Errorf("flow[%d]: a step expected to fail cannot bind %q", index, step.As)
	}
	return nil
}

func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertTraceContains:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_contains", index)
		}
	case AssertTraceCount:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for trace_count", index)
		}
	case AssertUnitDisplay, AssertUnitTag:
		if a.Unit == "" {
			return fmt.Errorf("assertions[%d]: unit is required for %s", index, a.Type)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
