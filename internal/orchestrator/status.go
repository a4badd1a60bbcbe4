package orchestrator

// Kind is the state of the submission state machine:
//
//	idle -> validating -> loading -> success | error
//	             \-> error
type Kind int

const (
	KindIdle Kind = iota
	KindValidating
	KindLoading
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindValidating:
		return "validating"
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Status is what the operator sees. Message is empty for idle, validating and loading.
type Status struct {
	Kind    Kind
	Message string
}

func idle() Status { return Status{Kind: KindIdle} }

func errorStatus(msg string) Status { return Status{Kind: KindError, Message: msg} }

func successStatus(msg string) Status { return Status{Kind: KindSuccess, Message: msg} }

// Busy reports whether a request is outstanding.
func (s Status) Busy() bool {
	return s.Kind == KindValidating || s.Kind == KindLoading
}
