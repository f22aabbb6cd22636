package task

// State is the lifecycle phase of a task. The set is closed; every switch
// over it in this package is exhaustive.
type State string

const (
	StateFrozen  State = "frozen"
	StateThawing State = "thawing"
	StateActive  State = "active"
	StateDone    State = "done"
)

// String returns the capitalized display form.
func (s State) String() string {
	switch s {
	case StateFrozen:
		return "Frozen"
	case StateThawing:
		return "Thawing"
	case StateActive:
		return "Active"
	case StateDone:
		return "Done"
	}
	return string(s)
}

// Task is a single tracked task.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	State       State  `json:"state"`
	ThawDate    *Date  `json:"thaw_date"`
	DueDate     *Date  `json:"due_date"`
	CreatedAt   Date   `json:"created_at"`
}

// New assembles a task in its initial state: Frozen when a thaw date is
// given, Active otherwise. This is initial assignment, not a transition.
func New(id int, title, description string, thaw, due *Date, createdAt Date) Task {
	state := StateActive
	if thaw != nil {
		state = StateFrozen
	}
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		State:       state,
		ThawDate:    thaw,
		DueDate:     due,
		CreatedAt:   createdAt,
	}
}

// Find returns a pointer to the task with the given id, so callers can
// mutate it in place.
func Find(tasks []Task, id int) (*Task, error) {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, &NotFoundError{ID: id}
}
