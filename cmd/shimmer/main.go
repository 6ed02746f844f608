// Package main provides the shimmer command for previewing placeholder
// scenes in a terminal.
//
// Usage:
//
//	shimmer demo [--scene file.yaml] [--watch]     Interactive preview
//	shimmer frames [--scene file.yaml] -n 10       Print rendered frames
//	shimmer scene                                  Print the default scene
//
// Examples:
//
//	shimmer demo --replace --resolve-after 5s
//	shimmer frames -n 3 --interval 250ms --plain
//	SHIMMER_DEBUG=/tmp/shimmer.log shimmer demo
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/grindlemire/go-shimmer/internal/debug"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

// rootOptions holds flags shared by every subcommand. Zero values mean the
// scene file decides.
type rootOptions struct {
	scenePath    string
	duration     time.Duration
	delay        time.Duration
	resolveAfter time.Duration
	replace      bool
	watch        bool
	debugLog     string
	verbose      bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:     "shimmer",
		Short:   "Preview skeleton placeholders with a shared shimmer",
		Version: version,
		Long: `shimmer renders placeholder scenes: containers of skeleton shapes swept
by one continuous shine until their content loads.

Scenes are YAML files; without --scene the built-in profile-card scene is
used. Timing flags override the scene.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.debugLog != "" {
				if err := debug.Init(opts.debugLog); err != nil {
					return fmt.Errorf("failed to open debug log: %w", err)
				}
			}
			logger, err := newLogger(opts.debugLog, opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
			_ = debug.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.scenePath, "scene", "s", "", "Scene file (default: built-in profile cards)")
	flags.DurationVar(&opts.duration, "duration", 0, "Sweep duration (overrides the scene)")
	flags.DurationVar(&opts.delay, "delay", 0, "Pause at the end of each sweep (overrides the scene)")
	flags.DurationVar(&opts.resolveAfter, "resolve-after", 0, "Time until loaders resolve (overrides the scene)")
	flags.BoolVar(&opts.replace, "replace", false, "Reveal shapes in place instead of swapping the whole card")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "Reload the scene file when it changes")
	flags.StringVar(&opts.debugLog, "debug-log", "", "Write debug and warning logs to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(newDemoCmd(opts))
	root.AddCommand(newFramesCmd(opts))
	root.AddCommand(newSceneCmd(opts))
	return root
}

// newLogger logs to path, or discards everything when path is empty so the
// interactive demo's screen stays clean.
func newLogger(path string, verbose bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// loadScene reads the scene and applies flag overrides.
func (o *rootOptions) loadScene(cmd *cobra.Command) (Scene, error) {
	scene := DefaultScene()
	if o.scenePath != "" {
		var err error
		scene, err = LoadScene(o.scenePath)
		if err != nil {
			return Scene{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("duration") {
		scene.Duration = o.duration
	}
	if flags.Changed("delay") {
		scene.Delay = o.delay
	}
	if flags.Changed("resolve-after") {
		scene.ResolveAfter = o.resolveAfter
	}
	if flags.Changed("replace") {
		scene.Replace = o.replace
	}
	if err := scene.Validate(); err != nil {
		return Scene{}, err
	}
	return scene, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
