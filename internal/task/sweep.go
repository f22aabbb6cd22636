package task

// Sweep promotes every Frozen task whose thaw date has arrived to Thawing
// and returns the number of tasks changed. The thaw date stays populated;
// Warm and Cool clear it later. All other tasks are left untouched, so
// running the sweep twice on the same day is a no-op the second time.
//
// Callers must run Sweep before inspecting or mutating the collection,
// and persist it whenever the returned count is non-zero.
func Sweep(tasks []Task, today Date) int {
	changed := 0
	for i := range tasks {
		t := &tasks[i]
		if t.State != StateFrozen || t.ThawDate == nil {
			continue
		}
		if today.Before(*t.ThawDate) {
			continue
		}
		t.State = StateThawing
		changed++
	}
	return changed
}
