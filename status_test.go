package shimmer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStatus_MeasurementCommutes(t *testing.T) {
	container := ContainerMeasured{Bounds: NewRect(10, 0, 300, 20)}
	shine := ShineMeasured{Bounds: NewRect(-1000, 0, 50, 20)}

	type tc struct {
		events []Event
	}

	tests := map[string]tc{
		"container then shine": {events: []Event{container, shine}},
		"shine then container": {events: []Event{shine, container}},
		"repeated container":   {events: []Event{container, container, shine, container}},
		"repeated shine":       {events: []Event{shine, shine, container, shine}},
		"stale then fresh": {events: []Event{
			ContainerMeasured{Bounds: NewRect(0, 0, 100, 20)}, shine, container,
		}},
	}

	want := Status{
		Container:         container.Bounds,
		Shine:             shine.Bounds,
		ContainerMeasured: true,
		ShineMeasured:     true,
		Start:             -60,
		Stop:              360,
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var s Status
			var last Command
			for _, ev := range tt.events {
				s, last = s.Apply(ev)
			}
			if diff := cmp.Diff(want, s); diff != "" {
				t.Errorf("status mismatch (-want +got):\n%s", diff)
			}
			if last != CommandRestart {
				t.Errorf("last command = %s, want restart", last)
			}
		})
	}
}

func TestStatus_DefersUntilBothMeasured(t *testing.T) {
	var s Status
	s, cmd := s.Apply(ContainerMeasured{Bounds: NewRect(5, 0, 40, 3)})
	if cmd != CommandNone {
		t.Errorf("command after one measurement = %s, want none", cmd)
	}
	if s.Ready() {
		t.Error("Ready() = true with one measurement")
	}
	if s.Start != 0 || s.Stop != 0 {
		t.Errorf("offsets computed early: start=%v stop=%v", s.Start, s.Stop)
	}
}

func TestStatus_GatedAfterResolution(t *testing.T) {
	var s Status
	s, _ = s.Apply(ContainerMeasured{Bounds: NewRect(0, 0, 40, 3)})
	s, _ = s.Apply(ShineMeasured{Bounds: NewRect(0, 0, 8, 1)})

	s, cmd := s.Apply(ContentResolved{})
	if cmd != CommandStop {
		t.Errorf("resolution command = %s, want stop", cmd)
	}

	s, cmd = s.Apply(ContainerMeasured{Bounds: NewRect(2, 0, 60, 3)})
	if cmd != CommandNone {
		t.Errorf("re-measure after resolution = %s, want none", cmd)
	}
	if s.Stop != 70 {
		t.Errorf("offsets still recomputed: Stop = %v, want 70", s.Stop)
	}

	again, cmd := s.Apply(ContentResolved{})
	if cmd != CommandNone || again != s {
		t.Errorf("second resolution changed state or issued %s", cmd)
	}
}

func TestStatus_Target(t *testing.T) {
	if got := (Status{Stop: 0}).Target(120); got != 120 {
		t.Errorf("Target() with zero stop = %v, want fallback 120", got)
	}
	if got := (Status{Stop: 90}).Target(120); got != 90 {
		t.Errorf("Target() = %v, want 90", got)
	}
}
