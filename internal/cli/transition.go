package cli

import (
	"github.com/x-color/kelvin/internal/task"
)

// runTransition is the shared flow for warm, burn, and cool: load, sweep,
// find, apply one transition, save. Nothing is written when the transition
// is rejected.
func runTransition(idArg, verb string, apply func(*task.Task) error) error {
	id, err := parseID(idArg)
	if err != nil {
		return err
	}

	e, err := newCommandEnv()
	if err != nil {
		return err
	}

	tasks, _, err := e.loadSwept()
	if err != nil {
		return err
	}

	t, err := task.Find(tasks, id)
	if err != nil {
		return err
	}

	if err := apply(t); err != nil {
		return err
	}

	if err := e.store.Save(tasks); err != nil {
		return err
	}

	printTaskLine(verb, t)
	return nil
}
