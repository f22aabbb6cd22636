package task

// Warm marks a task ready to work on. Valid from Thawing and Frozen; a
// Frozen task may be warmed directly without waiting for the sweep.
func Warm(t *Task) error {
	switch t.State {
	case StateThawing, StateFrozen:
		t.State = StateActive
		t.ThawDate = nil
		return nil
	default:
		return &TransitionError{ID: t.ID, State: t.State, Op: "warm"}
	}
}

// Burn completes a task. Valid from Active and Frozen; completing a Frozen
// task resolves it without ever surfacing it.
func Burn(t *Task) error {
	switch t.State {
	case StateActive, StateFrozen:
		t.State = StateDone
		return nil
	default:
		return &TransitionError{ID: t.ID, State: t.State, Op: "burn"}
	}
}

// Cool reopens a completed task. Valid from Done only.
func Cool(t *Task) error {
	switch t.State {
	case StateDone:
		t.State = StateActive
		t.ThawDate = nil
		return nil
	default:
		return &TransitionError{ID: t.ID, State: t.State, Op: "cool"}
	}
}

// Freeze defers a task until the given thaw date. Valid from any state, so
// a Done task can be snoozed back into the queue.
func Freeze(t *Task, thaw Date) {
	t.State = StateFrozen
	t.ThawDate = &thaw
}
