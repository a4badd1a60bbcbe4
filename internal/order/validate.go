package order

const (
	ReasonMenuRequired   = "List menu required for first-touch mode"
	ReasonOrdersRequired = "Current orders is required"
)

// ValidationError is a local rejection; no request is made when it is returned.
type ValidationError struct {
	Mode   Mode
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validate gates a submission for the given mode. It must run right before
// every submission since the inputs may have changed after classification.
func Validate(mode Mode, listMenu, currentOrders string) error {
	switch mode {
	case ModeFirstTouch:
		if isBlank(listMenu) {
			return &ValidationError{Mode: mode, Reason: ReasonMenuRequired}
		}
	case ModeNormal, ModeNitro:
		if isBlank(currentOrders) {
			return &ValidationError{Mode: mode, Reason: ReasonOrdersRequired}
		}
	}
	return nil
}
