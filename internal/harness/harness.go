package harness

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
	"github.com/geometryzen/multivectors-sub001/internal/logging"
	"github.com/geometryzen/multivectors-sub001/internal/rational"
	"github.com/geometryzen/multivectors-sub001/internal/unit"
)

// Harness holds the state of one scenario run.
type Harness struct {
	name   string
	policy dimension.Policy
	units  map[string]*unit.Unit
	seq    int64
	logger *zap.Logger
}

// Run executes a scenario and returns the result.
//
// The returned error reports a scenario that cannot be executed, such as a
// step naming an unbound unit. Failed expectations and assertions are
// reported in Result.Errors instead.
func Run(scenario *Scenario) (*Result, error) {
	policy := dimension.Strict
	if scenario.Policy != "" {
		p, err := dimension.ParsePolicy(scenario.Policy)
		if err != nil {
			return nil, err
		}
		policy = p
	}

	labels := scenario.Labels
	if len(labels) == 0 {
		labels = unit.DefaultLabels[:]
	}

	h := &Harness{
		name:   scenario.Name,
		policy: policy,
		units:  make(map[string]*unit.Unit, len(scenario.Units)),
		logger: logging.L().With(zap.String("scenario", scenario.Name)),
	}

	for name, def := range scenario.Units {
		u, err := buildUnit(def, labels)
		if err != nil {
			return nil, fmt.Errorf("units[%s]: %w", name, err)
		}
		h.units[name] = u
	}

	result := NewResult()
	for i, step := range scenario.Flow {
		if err := h.executeStep(i, step, result); err != nil {
			return nil, fmt.Errorf("failed to execute flow: %w", err)
		}
	}

	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions, h.units) {
		result.AddError(errMsg)
	}

	for name, u := range h.units {
		result.Units[name] = u.String()
	}
	return result, nil
}

func buildUnit(def UnitDef, labels []string) (*unit.Unit, error) {
	dims, err := dimension.Parse(def.Exponents)
	if err != nil {
		return nil, err
	}
	multiplier := 1.0
	if def.Multiplier != nil {
		multiplier = *def.Multiplier
	}
	return unit.New(multiplier, dims, labels)
}

// executeStep applies one step, records it in the trace and checks its
// expect clause.
func (h *Harness) executeStep(index int, step FlowStep, result *Result) error {
	lhs, ok := h.units[step.LHS]
	if !ok {
		return fmt.Errorf("flow[%d]: unknown unit %q", index, step.LHS)
	}
	var rhs *unit.Unit
	if step.RHS != "" {
		if rhs, ok = h.units[step.RHS]; !ok {
			return fmt.Errorf("flow[%d]: unknown unit %q", index, step.RHS)
		}
	}

	h.seq++
	event := TraceEvent{
		Seq:  h.seq,
		Op:   step.Op,
		Args: stepArgs(step),
		As:   step.As,
	}

	out, opErr := h.apply(step, lhs, rhs)
	if opErr != nil {
		event.Outcome = OutcomeError
		event.Result = opErr.Error()
	} else {
		event.Outcome = OutcomeOK
		event.Result = out.String()
		event.Tag = out.Dimensions().Tag().String()
		if step.As != "" {
			h.units[step.As] = out
		}
	}
	result.addTrace(event)

	h.logger.Debug("scenario step",
		zap.Int64("seq", event.Seq),
		zap.String("op", event.Op),
		zap.String("outcome", event.Outcome),
		zap.String("result", event.Result),
	)

	for _, msg := range checkExpect(step, out, opErr) {
		result.AddError(fmt.Sprintf("flow[%d] %s: %s", index, step.Op, msg))
	}
	return nil
}

func (h *Harness) apply(step FlowStep, lhs, rhs *unit.Unit) (*unit.Unit, error) {
	switch step.Op {
	case OpMul:
		return lhs.Mul(rhs), nil
	case OpDiv:
		return lhs.Div(rhs), nil
	case OpAdd:
		return lhs.Add(rhs, h.policy)
	case OpSub:
		return lhs.Sub(rhs, h.policy)
	case OpCompatible:
		return lhs.Compatible(rhs, h.policy)
	case OpInv:
		return lhs.Inv(), nil
	case OpSqrt:
		return lhs.Sqrt(), nil
	case OpPow:
		exp, err := rational.Parse(step.Exponent)
		if err != nil {
			return nil, err
		}
		return lhs.Pow(exp), nil
	case OpScale:
		return lhs.Scale(*step.Factor), nil
	}
	return nil, fmt.Errorf("unknown op %q", step.Op)
}

func stepArgs(step FlowStep) map[string]string {
	args := map[string]string{"lhs": step.LHS}
	if step.RHS != "" {
		args["rhs"] = step.RHS
	}
	if step.Exponent != "" {
		args["exponent"] = step.Exponent
	}
	if step.Factor != nil {
		args["factor"] = strconv.FormatFloat(*step.Factor, 'g', -1, 64)
	}
	return args
}

// checkExpect compares a step outcome with its expect clause.
func checkExpect(step FlowStep, out *unit.Unit, opErr error) []string {
	expect := step.Expect
	if expect == nil {
		expect = &ExpectClause{}
	}

	if expect.Error != "" {
		switch {
		case opErr == nil:
			return []string{fmt.Sprintf("expected error %q, got %s", expect.Error, out)}
		case expect.Error == ExpectIncompatible:
			if !dimension.IsIncompatible(opErr) {
				return []string{fmt.Sprintf("expected incompatible dimensions, got %v", opErr)}
			}
		case !strings.Contains(opErr.Error(), expect.Error):
			return []string{fmt.Sprintf("expected error containing %q, got %v", expect.Error, opErr)}
		}
		return nil
	}

	if opErr != nil {
		return []string{fmt.Sprintf("unexpected error: %v", opErr)}
	}

	var msgs []string
	if expect.Display != "" && out.String() != expect.Display {
		msgs = append(msgs, fmt.Sprintf("expected display %q, got %q", expect.Display, out.String()))
	}
	if expect.Tag != "" && out.Dimensions().Tag().String() != expect.Tag {
		msgs = append(msgs, fmt.Sprintf("expected tag %q, got %q", expect.Tag, out.Dimensions().Tag()))
	}
	return msgs
}
