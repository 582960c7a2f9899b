package harness

import (
	"fmt"
	"strings"

	"github.com/geometryzen/multivectors-sub001/internal/unit"
)

// AssertionError is returned when an assertion fails.
// It includes the trace to help debug the failure.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Trace    []TraceEvent
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for _, event := range e.Trace {
		fmt.Fprintf(&buf, "  [%d] %s %v -> %s %s\n", event.Seq, event.Op, event.Args, event.Outcome, event.Result)
	}

	return buf.String()
}

// EvaluateAssertions checks every assertion against the result trace and
// the final bindings and returns the failure messages.
func EvaluateAssertions(result *Result, assertions []Assertion, units map[string]*unit.Unit) []string {
	var errs []string
	for _, a := range assertions {
		var err error
		switch a.Type {
		case AssertTraceContains:
			err = assertTraceContains(result.Trace, a)
		case AssertTraceCount:
			err = assertTraceCount(result.Trace, a)
		case AssertUnitDisplay:
			err = assertUnit(result.Trace, a, units, func(u *unit.Unit) string { return u.String() })
		case AssertUnitTag:
			err = assertUnit(result.Trace, a, units, func(u *unit.Unit) string { return u.Dimensions().Tag().String() })
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

func matchEvent(event TraceEvent, a Assertion) bool {
	return event.Op == a.Op && (a.As == "" || event.As == a.As)
}

func assertTraceContains(trace []TraceEvent, a Assertion) error {
	for _, event := range trace {
		if matchEvent(event, a) {
			return nil
		}
	}
	expected := "op " + a.Op
	if a.As != "" {
		expected += " as " + a.As
	}
	return &AssertionError{
		Type:     AssertTraceContains,
		Expected: expected,
		Actual:   "not found in trace",
		Trace:    trace,
	}
}

func assertTraceCount(trace []TraceEvent, a Assertion) error {
	count := 0
	for _, event := range trace {
		if matchEvent(event, a) {
			count++
		}
	}
	if count == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertTraceCount,
		Expected: fmt.Sprintf("op %s %d times", a.Op, a.Count),
		Actual:   fmt.Sprintf("%d times", count),
		Trace:    trace,
	}
}

func assertUnit(trace []TraceEvent, a Assertion, units map[string]*unit.Unit, get func(*unit.Unit) string) error {
	u, ok := units[a.Unit]
	if !ok {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("unit %s bound", a.Unit),
			Actual:   "unbound",
			Trace:    trace,
		}
	}
	if got := get(u); got != a.Value {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%s = %q", a.Unit, a.Value),
			Actual:   fmt.Sprintf("%q", got),
			Trace:    trace,
		}
	}
	return nil
}
