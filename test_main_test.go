package shimmer

import (
	"testing"

	"go.uber.org/goleak"
)

// Watchers, loaders started with Go and the event loop all spawn goroutines;
// every test must leave none behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
