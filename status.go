package shimmer

// Status is the measurement and resolution state of a container. It is a
// plain value; Apply returns the next Status instead of mutating.
//
// Start and Stop are only meaningful once both ContainerMeasured and
// ShineMeasured are true.
type Status struct {
	Container Rect
	Shine     Rect

	ContainerMeasured bool
	ShineMeasured     bool

	Start float64
	Stop  float64

	// Resolved is set once whole-subtree content replaced the placeholders.
	Resolved bool
}

// Event is an input to Status.Apply.
type Event interface {
	isEvent()
}

// ContainerMeasured reports the container's laid-out bounds.
type ContainerMeasured struct{ Bounds Rect }

// ShineMeasured reports the off-screen shine element's bounds.
type ShineMeasured struct{ Bounds Rect }

// ContentResolved reports that the loader's node replaced the placeholders.
type ContentResolved struct{}

func (ContainerMeasured) isEvent() {}
func (ShineMeasured) isEvent()     {}
func (ContentResolved) isEvent()   {}

// Command tells the owner of a Status what to do with its driver.
type Command uint8

const (
	CommandNone    Command = iota // Nothing to do
	CommandRestart                // Snap the driver to Start and start a new loop
	CommandStop                   // Stop the driver
)

func (c Command) String() string {
	switch c {
	case CommandRestart:
		return "restart"
	case CommandStop:
		return "stop"
	default:
		return "none"
	}
}

// Ready reports whether both measurements have arrived.
func (s Status) Ready() bool {
	return s.ContainerMeasured && s.ShineMeasured
}

// Apply returns the state after ev and the driver command it implies.
//
// Measurements may arrive in any order and any number of times; offsets are
// recomputed from the latest bounds whenever both are known. No restart is
// issued once content has resolved.
func (s Status) Apply(ev Event) (Status, Command) {
	switch ev := ev.(type) {
	case ContainerMeasured:
		s.Container = ev.Bounds
		s.ContainerMeasured = true
		return s.finalize()
	case ShineMeasured:
		s.Shine = ev.Bounds
		s.ShineMeasured = true
		return s.finalize()
	case ContentResolved:
		if s.Resolved {
			return s, CommandNone
		}
		s.Resolved = true
		return s, CommandStop
	}
	return s, CommandNone
}

func (s Status) finalize() (Status, Command) {
	if !s.Ready() {
		return s, CommandNone
	}
	s.Start = -float64(s.Container.X + s.Shine.Width)
	s.Stop = float64(s.Container.X + s.Container.Width + s.Shine.Width)
	if s.Resolved {
		return s, CommandNone
	}
	return s, CommandRestart
}

// Target returns the sweep target: Stop, or fallback when Stop is zero.
func (s Status) Target(fallback float64) float64 {
	if s.Stop == 0 {
		return fallback
	}
	return s.Stop
}
