package diagnostic

import "testing"

func TestEventLogAddAndAll(t *testing.T) {
	l := NewEventLog()
	l.Add("info", "shift 1 -> 2")
	l.Add("warn", "limp mode set")

	all := l.All()
	if len(all) != 2 {
		t.Fatalf("All() returned %d events, want 2", len(all))
	}
	if all[0].Message != "shift 1 -> 2" || all[1].Level != "warn" {
		t.Errorf("unexpected event order/content: %+v", all)
	}
}

func TestEventLogDropsOldestBeyondCapacity(t *testing.T) {
	l := NewEventLog()
	for i := 0; i < maxEvents+10; i++ {
		l.Add("info", "event")
	}
	all := l.All()
	if len(all) != maxEvents {
		t.Errorf("All() returned %d events, want capped at %d", len(all), maxEvents)
	}
}

func TestEventLogAllReturnsACopy(t *testing.T) {
	l := NewEventLog()
	l.Add("info", "first")

	all := l.All()
	all[0].Message = "mutated"

	again := l.All()
	if again[0].Message != "first" {
		t.Errorf("mutating the result of All() affected the log's internal state")
	}
}
