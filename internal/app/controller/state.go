package controller

// State is the request lifecycle of the form. Exactly one state holds at a
// time.
type State int

const (
	// StateIdle means nothing has been submitted yet.
	StateIdle State = iota
	// StateLoading means a request is outstanding and the trigger is disabled.
	StateLoading
	// StateSuccess means the last request returned organization metadata.
	StateSuccess
	// StateError means the last request failed.
	StateError
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
