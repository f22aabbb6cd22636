package task

import (
	"testing"
	"time"
)

// Walks a task through its whole lifecycle: created frozen, promoted by the
// sweep, warmed, burned, reopened, and refrozen with the default offset.
func TestLifecycleEndToEnd(t *testing.T) {
	created := NewDate(2026, time.January, 1)

	thaw, err := ResolveDateSpec("7d", created)
	if err != nil {
		t.Fatalf("ResolveDateSpec returned error: %v", err)
	}
	if want := NewDate(2026, time.January, 8); !thaw.Equal(want) {
		t.Fatalf("thaw = %s, want %s", thaw, want)
	}

	tasks := []Task{New(1, "Ship release", "", &thaw, nil, created)}
	if tasks[0].State != StateFrozen {
		t.Fatalf("initial state = %s, want Frozen", tasks[0].State)
	}

	if count := Sweep(tasks, NewDate(2026, time.January, 8)); count != 1 {
		t.Fatalf("sweep count = %d, want 1", count)
	}
	if tasks[0].State != StateThawing {
		t.Fatalf("state after sweep = %s, want Thawing", tasks[0].State)
	}

	if err := Warm(&tasks[0]); err != nil {
		t.Fatalf("Warm returned error: %v", err)
	}
	if tasks[0].State != StateActive || tasks[0].ThawDate != nil {
		t.Fatalf("after warm: state = %s, thaw = %v", tasks[0].State, tasks[0].ThawDate)
	}

	if err := Burn(&tasks[0]); err != nil {
		t.Fatalf("Burn returned error: %v", err)
	}
	if tasks[0].State != StateDone {
		t.Fatalf("after burn: state = %s, want Done", tasks[0].State)
	}

	if err := Cool(&tasks[0]); err != nil {
		t.Fatalf("Cool returned error: %v", err)
	}
	if tasks[0].State != StateActive {
		t.Fatalf("after cool: state = %s, want Active", tasks[0].State)
	}

	// Freeze with the default offset, as the freeze command does when no
	// date spec is supplied.
	today := NewDate(2026, time.February, 1)
	Freeze(&tasks[0], today.AddDays(7))

	if tasks[0].State != StateFrozen {
		t.Fatalf("after freeze: state = %s, want Frozen", tasks[0].State)
	}
	if want := NewDate(2026, time.February, 8); !tasks[0].ThawDate.Equal(want) {
		t.Fatalf("after freeze: thaw = %s, want %s", tasks[0].ThawDate, want)
	}
}
