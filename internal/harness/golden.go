package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/geometryzen/multivectors-sub001/internal/canonical"
)

// Snapshot renders the deterministic part of a run as canonical JSON:
// the scenario name, the trace and the final bindings.
func Snapshot(name string, result *Result) ([]byte, error) {
	trace := make([]any, len(result.Trace))
	for i, event := range result.Trace {
		args := make(map[string]any, len(event.Args))
		for k, v := range event.Args {
			args[k] = v
		}
		m := map[string]any{
			"seq":     event.Seq,
			"op":      event.Op,
			"args":    args,
			"outcome": event.Outcome,
			"result":  event.Result,
		}
		if event.As != "" {
			m["as"] = event.As
		}
		if event.Tag != "" {
			m["tag"] = event.Tag
		}
		trace[i] = m
	}

	units := make(map[string]any, len(result.Units))
	for k, v := range result.Units {
		units[k] = v
	}

	return canonical.Marshal(map[string]any{
		"scenario_name": name,
		"trace":         trace,
		"units":         units,
	})
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	return result, AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	snapshot, err := Snapshot(name, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, snapshot)
	return nil
}
