package reconcile

// Result is the uniform envelope every reconciliation outcome is reported
// in. The error channel is a single human-readable string; mapping onto
// transport-level status codes belongs to the HTTP layer.
type Result struct {
	// Success is true iff the whole operation committed.
	Success bool `json:"success"`

	// Data carries operation output on success (e.g. a created parent id).
	Data any `json:"data,omitempty"`

	// Error is the failure message. Empty on success.
	Error string `json:"error,omitempty"`
}

// defaultErrorMessage is used when a failure carries no message of its own.
const defaultErrorMessage = "operation failed"

// Normalize converts a (data, error) pair from the orchestration layer into
// a Result. Pure; partial success is never representable.
func Normalize(data any, err error) Result {
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = defaultErrorMessage
		}
		return Result{Success: false, Error: msg}
	}
	return Result{Success: true, Data: data}
}

// OK builds a success Result with the given data.
func OK(data any) Result {
	return Result{Success: true, Data: data}
}
