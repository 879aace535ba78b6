package checkout

// Step is one of the four ordered checkout steps.
type Step int

const (
	StepCartReview Step = iota
	StepShipping
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepCartReview:
		return "cart_review"
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// Flow sequences the checkout wizard. It holds only the active step and the
// completed-step set: no business data, no persistence, no network I/O.
// Routing to Confirmation only after a successful order is the caller's job.
type Flow struct {
	current   Step
	completed map[Step]bool
}

func NewFlow() *Flow {
	return &Flow{
		current:   StepCartReview,
		completed: make(map[Step]bool),
	}
}

func (f *Flow) Current() Step { return f.current }

func (f *Flow) IsCompleted(s Step) bool { return f.completed[s] }

// Advance marks the current step completed and moves forward. Past the last
// step it is a no-op apart from the completion mark.
func (f *Flow) Advance() {
	f.completed[f.current] = true
	if f.current < StepConfirmation {
		f.current++
	}
}

// Retreat moves one step back without un-marking completion.
func (f *Flow) Retreat() {
	if f.current > StepCartReview {
		f.current--
	}
}

// JumpTo moves to step when it is a revisit (step <= current) or at most one
// step past the furthest completed step. Returns whether the move happened.
func (f *Flow) JumpTo(step Step) bool {
	if step < StepCartReview || step > StepConfirmation {
		return false
	}
	if step <= f.current || f.completed[step-1] {
		f.current = step
		return true
	}
	return false
}

// Reset returns to the first step and clears all completion marks, so a new
// order can start after a finished one.
func (f *Flow) Reset() {
	f.current = StepCartReview
	f.completed = make(map[Step]bool)
}
