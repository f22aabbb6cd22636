package task

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-01-08")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if want := NewDate(2026, time.January, 8); !got.Equal(want) {
		t.Errorf("ParseDate = %s, want %s", got, want)
	}

	if _, err := ParseDate("2026-02-30"); err == nil {
		t.Error("Expected error for impossible date")
	}
}

func TestDateAddDaysCrossesBoundaries(t *testing.T) {
	d := NewDate(2026, time.January, 30)

	if got, want := d.AddDays(3), NewDate(2026, time.February, 2); !got.Equal(want) {
		t.Errorf("AddDays(3) = %s, want %s", got, want)
	}
	if got, want := d.AddDays(-30), NewDate(2025, time.December, 31); !got.Equal(want) {
		t.Errorf("AddDays(-30) = %s, want %s", got, want)
	}
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		When *Date `json:"when"`
	}

	d := NewDate(2026, time.January, 8)
	data, err := json.Marshal(wrapper{When: &d})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(data) != `{"when":"2026-01-08"}` {
		t.Errorf("Marshal = %s", data)
	}

	var back wrapper
	if err := json.Unmarshal([]byte(`{"when":null}`), &back); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if back.When != nil {
		t.Errorf("null decoded to %v, want nil", back.When)
	}

	if err := json.Unmarshal([]byte(`{"when":"not-a-date"}`), &back); err == nil {
		t.Error("Expected error for malformed date")
	}
}
