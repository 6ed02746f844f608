package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	shimmer "github.com/grindlemire/go-shimmer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type framesOptions struct {
	count    int
	interval time.Duration
	width    int
	height   int
	fps      int
	plain    bool
}

func newFramesCmd(root *rootOptions) *cobra.Command {
	opts := &framesOptions{}
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Render a scene headlessly and print frames",
		Long: `Runs the scene on the event loop without a terminal UI and prints a
snapshot every --interval until -n frames were printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := root.loadScene(cmd)
			if err != nil {
				return err
			}
			return runFrames(cmd.Context(), cmd.OutOrStdout(), root, scene, opts)
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&opts.count, "count", "n", 5, "Number of frames to print")
	flags.DurationVar(&opts.interval, "interval", 200*time.Millisecond, "Time between printed frames")
	flags.IntVar(&opts.width, "width", 60, "Screen width in cells")
	flags.IntVar(&opts.height, "height", 30, "Screen height in cells")
	flags.IntVar(&opts.fps, "fps", 30, "Animation frame rate")
	flags.BoolVar(&opts.plain, "plain", false, "Print text only, without colours")
	return cmd
}

// framePrinter writes numbered snapshots of one screen.
type framePrinter struct {
	out     io.Writer
	plain   bool
	printed int
}

// print renders s first so the header reflects the measurements that
// rendering delivered.
func (p *framePrinter) print(s *shimmer.Screen, containers []*shimmer.Container) error {
	p.printed++
	var body strings.Builder
	if p.plain {
		buf := s.Frame()
		for y := 0; y < buf.Height(); y++ {
			body.WriteString(strings.TrimRight(buf.Line(y), " "))
			body.WriteByte('\n')
		}
	} else {
		body.WriteString(s.Render())
		body.WriteByte('\n')
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- frame %d", p.printed)
	for i, c := range containers {
		if f := c.Snapshot(); f.Running {
			fmt.Fprintf(&sb, " | card %d x=%.0f", i, f.Value)
		} else {
			fmt.Fprintf(&sb, " | card %d idle", i)
		}
	}
	sb.WriteString(" ---\n")
	sb.WriteString(body.String())

	_, err := io.WriteString(p.out, sb.String())
	return err
}

func runFrames(ctx context.Context, out io.Writer, root *rootOptions, scene Scene, opts *framesOptions) error {
	if opts.count < 1 {
		return fmt.Errorf("frame count must be at least 1, got %d", opts.count)
	}
	if opts.interval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %s", opts.interval)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt)
	defer stopSignals()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop, err := shimmer.NewEventLoop(shimmer.WithFrameRate(opts.fps))
	if err != nil {
		return err
	}

	var (
		screen  *shimmer.Screen
		built   *Built
		cancelB context.CancelFunc
	)
	mount := func(scene Scene) error {
		bctx, bcancel := context.WithCancel(ctx)
		b, err := scene.Build(bctx, root.logger)
		if err != nil {
			bcancel()
			return err
		}
		s, err := shimmer.NewScreen(b.Root,
			shimmer.WithScreenSize(opts.width, opts.height),
			shimmer.WithDispatcher(loop),
			shimmer.WithLogger(root.logger),
		)
		if err != nil {
			bcancel()
			return err
		}
		if screen != nil {
			screen.Unmount()
			cancelB()
		}
		s.Mount()
		screen, built, cancelB = s, b, bcancel
		return nil
	}
	if err := mount(scene); err != nil {
		return err
	}
	defer func() { cancelB() }()

	loop.OnFrame(func(dt time.Duration) { screen.Advance(dt) })

	printer := &framePrinter{out: out, plain: opts.plain}
	var printErr error
	loop.AddWatcher(shimmer.OnTimer(opts.interval, func() {
		if err := printer.print(screen, built.Containers); err != nil {
			printErr = err
			loop.Stop()
			return
		}
		if printer.printed >= opts.count {
			loop.Stop()
		}
	}))

	g, gctx := errgroup.WithContext(ctx)
	if root.watch && root.scenePath != "" {
		sw, err := newSceneWatcher(root.scenePath, root.logger)
		if err != nil {
			return err
		}
		loop.AddWatcher(shimmer.Watch(sw.Changes(), func(struct{}) {
			next, err := LoadScene(root.scenePath)
			if err == nil {
				err = next.Validate()
			}
			if err == nil {
				err = mount(next)
			}
			if err != nil {
				root.logger.Warn("scene reload failed", zap.Error(err))
			}
		}))
		g.Go(func() error { return sw.Run(gctx) })
	}
	g.Go(func() error {
		defer cancel()
		return loop.Run(gctx)
	})
	g.Go(func() error {
		select {
		case <-loop.Done():
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	err = g.Wait()
	screen.Unmount()
	if printErr != nil {
		return printErr
	}
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
