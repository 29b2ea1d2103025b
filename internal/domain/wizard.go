package domain

// Step is a position of the booking wizard
type Step int

const (
	StepDate Step = iota
	StepSlot
	StepGround
	StepDetails
	StepConfirmed
)

var stepNames = map[Step]string{
	StepDate:      "date",
	StepSlot:      "slot",
	StepGround:    "ground",
	StepDetails:   "details",
	StepConfirmed: "confirmed",
}

// String returns the wire name of the step
func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// CanGoBack returns true if the step has a predecessor reachable by the back action
func (s Step) CanGoBack() bool {
	return s == StepSlot || s == StepGround || s == StepDetails
}

// Previous returns the step reached by the back action
func (s Step) Previous() Step {
	if !s.CanGoBack() {
		return s
	}
	return s - 1
}
