package main

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	shimmer "github.com/grindlemire/go-shimmer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const demoFrameRate = 30

func newDemoCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Preview a scene interactively",
		Long: `Shows the scene full screen. Loaders resolve after --resolve-after.
Press r to rebuild the scene (re-reading --scene), ? for help, q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := root.loadScene(cmd); err != nil {
				return err
			}
			return runDemo(cmd, root)
		},
	}
}

type keyMap struct {
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Reload, k.Help, k.Quit} }

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func defaultKeyMap() keyMap {
	return keyMap{
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload scene")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

type (
	frameMsg  time.Time
	runMsg    func()
	reloadMsg struct{}
)

// programDispatcher delivers callbacks into the bubbletea update loop.
// Callbacks posted before the program is attached are held until it is.
type programDispatcher struct {
	mu      sync.Mutex
	program *tea.Program
	pending []func()
}

func (d *programDispatcher) attach(p *tea.Program) {
	d.mu.Lock()
	d.program = p
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()
	for _, fn := range pending {
		go p.Send(runMsg(fn))
	}
}

// Post never blocks: loaders may settle before the program reads messages.
func (d *programDispatcher) Post(fn func()) {
	d.mu.Lock()
	p := d.program
	if p == nil {
		d.pending = append(d.pending, fn)
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()
	go p.Send(runMsg(fn))
}

// demoModel hosts a shimmer.Screen inside bubbletea. Every screen method is
// called from Update or View, which bubbletea runs on one goroutine.
type demoModel struct {
	load       func() (Scene, error)
	dispatcher shimmer.Dispatcher
	logger     *zap.Logger

	screen *shimmer.Screen
	built  *Built
	cancel context.CancelFunc

	keys     keyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
	last     time.Time
	err      error
}

func newDemoModel(load func() (Scene, error), d shimmer.Dispatcher, logger *zap.Logger) *demoModel {
	m := &demoModel{
		load:       load,
		dispatcher: d,
		logger:     logger,
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
	}
	m.rebuild()
	return m
}

// rebuild tears the current scene down and mounts a fresh one. A failed
// load keeps the previous scene and shows the error.
func (m *demoModel) rebuild() {
	scene, err := m.load()
	if err != nil {
		m.err = err
		m.logger.Warn("scene load failed", zap.Error(err))
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	built, err := scene.Build(ctx, m.logger)
	if err == nil {
		var s *shimmer.Screen
		s, err = shimmer.NewScreen(built.Root,
			shimmer.WithScreenSize(m.width, m.contentHeight()),
			shimmer.WithDispatcher(m.dispatcher),
			shimmer.WithLogger(m.logger),
		)
		if err == nil {
			m.teardown()
			m.screen, m.built, m.cancel = s, built, cancel
			m.err = nil
			m.screen.Mount()
			return
		}
	}
	cancel()
	m.err = err
	m.logger.Warn("scene build failed", zap.Error(err))
}

func (m *demoModel) teardown() {
	if m.screen != nil {
		m.screen.Unmount()
	}
	if m.cancel != nil {
		m.cancel()
	}
	m.screen, m.built, m.cancel = nil, nil, nil
}

func (m *demoModel) contentHeight() int {
	return max(1, m.height-1)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/demoFrameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *demoModel) Init() tea.Cmd {
	m.last = time.Now()
	return tick()
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.teardown()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.rebuild()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.screen != nil {
			m.screen.Resize(m.width, m.contentHeight())
		}
	case frameMsg:
		now := time.Time(msg)
		if m.screen != nil {
			m.screen.Advance(now.Sub(m.last))
		}
		m.last = now
		return m, tick()
	case runMsg:
		msg()
	case reloadMsg:
		m.rebuild()
	}
	return m, nil
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))

func (m *demoModel) View() string {
	footer := m.help.View(m.keys)
	if m.err != nil {
		footer = errorStyle.Render(m.err.Error()) + "  " + footer
	}
	if m.screen == nil {
		return footer
	}
	return m.screen.Render() + "\n" + footer
}

func runDemo(cmd *cobra.Command, root *rootOptions) error {
	d := &programDispatcher{}
	m := newDemoModel(func() (Scene, error) { return root.loadScene(cmd) }, d, root.logger)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	d.attach(p)

	if root.watch && root.scenePath != "" {
		sw, err := newSceneWatcher(root.scenePath, root.logger)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go func() { _ = sw.Run(ctx) }()
		go func() {
			for range sw.Changes() {
				p.Send(reloadMsg{})
			}
		}()
	}

	_, err := p.Run()
	m.teardown()
	return err
}
