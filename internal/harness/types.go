package harness

// Step outcomes recorded in the trace.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// TraceEvent records one applied operation.
type TraceEvent struct {
	Seq  int64             `json:"seq"`
	Op   string            `json:"op"`
	Args map[string]string `json:"args"`
	As   string            `json:"as,omitempty"`

	// Outcome is OutcomeOK or OutcomeError.
	Outcome string `json:"outcome"`

	// Result is the rendered unit on success, the error message otherwise.
	Result string `json:"result"`

	// Tag names the result's dimensions on success.
	Tag string `json:"tag,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every expect clause and assertion held.
	Pass bool `json:"pass"`

	// Trace contains one event per flow step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Units maps every final binding to its rendering.
	Units map[string]string `json:"units"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
		Units:  make(map[string]string),
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

func (r *Result) addTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}
