package shimmer

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ContainerOption is a functional option for configuring a Container.
type ContainerOption func(*Container) error

// WithDuration sets how long one sweep from start to stop takes. Required.
func WithDuration(d time.Duration) ContainerOption {
	return func(c *Container) error {
		if d <= 0 {
			return fmt.Errorf("sweep duration must be positive, got %s", d)
		}
		c.duration = d
		return nil
	}
}

// WithDelay sets the pause at the stop position before snapping back.
// Default is 0.
func WithDelay(d time.Duration) ContainerOption {
	return func(c *Container) error {
		if d < 0 {
			return fmt.Errorf("sweep delay cannot be negative, got %s", d)
		}
		c.delay = d
		return nil
	}
}

// WithLoader sets the eventual content of the container.
func WithLoader(p *Promise[Node]) ContainerOption {
	return func(c *Container) error {
		c.loader = p
		return nil
	}
}

// WithReplace selects replace mode: on resolution every registered shape is
// revealed in place instead of swapping the whole subtree.
func WithReplace(replace bool) ContainerOption {
	return func(c *Container) error {
		c.replace = replace
		return nil
	}
}

// WithEasing sets the easing of each sweep. Default is EaseInOut.
func WithEasing(e Easing) ContainerOption {
	return func(c *Container) error {
		if e == nil {
			return fmt.Errorf("easing cannot be nil")
		}
		c.easing = e
		return nil
	}
}

// WithScreenWidth overrides the fallback sweep target used when the stop
// offset is zero. By default the host's screen width is used.
func WithScreenWidth(cells int) ContainerOption {
	return func(c *Container) error {
		if cells < 0 {
			return fmt.Errorf("screen width cannot be negative, got %d", cells)
		}
		c.screenWidth = cells
		return nil
	}
}

// WithOnError registers a hook called on the UI goroutine when the loader is
// rejected, or in replace mode when revealing some shapes failed. The
// container keeps showing the unrevealed placeholders either way.
func WithOnError(fn func(error)) ContainerOption {
	return func(c *Container) error {
		c.onError = fn
		return nil
	}
}

// WithContainerLogger overrides the host logger for this container.
func WithContainerLogger(l *zap.Logger) ContainerOption {
	return func(c *Container) error {
		c.logger = l
		return nil
	}
}

// WithStyle applies layout and appearance options to the container box.
func WithStyle(opts ...Option) ContainerOption {
	return func(c *Container) error {
		for _, opt := range opts {
			opt(&c.props)
		}
		return nil
	}
}
