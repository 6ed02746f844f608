package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	shimmer "github.com/grindlemire/go-shimmer"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Scene describes a page of placeholder cards.
type Scene struct {
	Shine        ShineConfig   `yaml:"shine"`
	Duration     time.Duration `yaml:"duration"`
	Delay        time.Duration `yaml:"delay,omitempty"`
	ResolveAfter time.Duration `yaml:"resolveAfter,omitempty"`
	Replace      bool          `yaml:"replace,omitempty"`
	Easing       string        `yaml:"easing,omitempty"`
	Background   string        `yaml:"background,omitempty"`
	Cards        []CardConfig  `yaml:"cards"`
	Page         *PageConfig   `yaml:"page,omitempty"`
}

// ShineConfig is the gradient swept across every shape.
type ShineConfig struct {
	Width  int      `yaml:"width,omitempty"`
	Colors []string `yaml:"colors,omitempty"`
}

// PageConfig wraps all cards in an async page that resolves after After.
type PageConfig struct {
	After time.Duration `yaml:"after"`
	Text  string        `yaml:"text,omitempty"`
}

// CardConfig is one placeholder container.
type CardConfig struct {
	Width      string        `yaml:"width,omitempty"`
	Height     string        `yaml:"height,omitempty"`
	Padding    []int         `yaml:"padding,omitempty"`
	Margin     []int         `yaml:"margin,omitempty"`
	Background string        `yaml:"background,omitempty"`
	Content    string        `yaml:"content,omitempty"`
	Shapes     []ShapeConfig `yaml:"shapes"`
}

// ShapeConfig is one skeleton shape. Setting Top or Left positions it
// absolutely inside the card.
type ShapeConfig struct {
	Width  string `yaml:"width,omitempty"`
	Height string `yaml:"height,omitempty"`
	Margin []int  `yaml:"margin,omitempty"`
	Top    string `yaml:"top,omitempty"`
	Left   string `yaml:"left,omitempty"`
	Color  string `yaml:"color,omitempty"`
	Text   string `yaml:"text,omitempty"`
}

// DefaultScene is the profile-card page: two cards of an avatar, two
// absolutely placed name bars and three text lines.
func DefaultScene() Scene {
	card := func(name, bio string) CardConfig {
		return CardConfig{
			Width:      "90%",
			Height:     "12",
			Padding:    []int{0, 1},
			Margin:     []int{1, 0, 0, 2},
			Background: "#ffffff",
			Content:    name + "\n" + bio,
			Shapes: []ShapeConfig{
				{Width: "5", Height: "3", Margin: []int{1, 0, 0, 0}, Text: "(o_o)"},
				{Top: "1", Left: "17%", Width: "50%", Height: "1", Text: name},
				{Top: "3", Left: "17%", Width: "35%", Height: "1", Text: "@" + name},
				{Width: "80%", Height: "1", Margin: []int{2, 0, 1, 0}, Text: bio},
				{Width: "90%", Height: "1", Margin: []int{0, 0, 1, 0}, Text: "Joined 2019"},
				{Width: "50%", Height: "1", Text: "42 followers"},
			},
		}
	}
	return Scene{
		Shine: ShineConfig{
			Width:  12,
			Colors: []string{"#eeeeee", "#dddddd", "#eeeeee"},
		},
		Duration:     time.Second,
		ResolveAfter: 4 * time.Second,
		Background:   "#f6f7f8",
		Cards: []CardConfig{
			card("Ada Lovelace", "Wrote the first program."),
			card("Grace Hopper", "Found the first bug."),
		},
		Page: &PageConfig{After: 60 * time.Second, Text: "Resolved"},
	}
}

// LoadScene reads a YAML scene. Fields missing from the file keep their
// zero value; Validate reports what is required.
func LoadScene(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to read scene: %w", err)
	}
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return Scene{}, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	return scene, nil
}

var errNoCards = errors.New("scene has no cards")

// Validate checks the scene can be built.
func (s Scene) Validate() error {
	if s.Duration <= 0 {
		return fmt.Errorf("scene duration must be positive, got %s", s.Duration)
	}
	if s.Shine.Width < 1 {
		return fmt.Errorf("shine width must be at least 1, got %d", s.Shine.Width)
	}
	if len(s.Cards) == 0 {
		return errNoCards
	}
	if _, err := easingByName(s.Easing); err != nil {
		return err
	}
	return nil
}

func easingByName(name string) (shimmer.Easing, error) {
	switch name {
	case "", "ease-in-out":
		return shimmer.EaseInOut, nil
	case "linear":
		return shimmer.Linear, nil
	case "spring":
		return shimmer.Spring(8, 60), nil
	default:
		return nil, fmt.Errorf("unknown easing %q", name)
	}
}

// Built is a mounted-ready tree with handles for inspection.
type Built struct {
	Root       shimmer.Node
	Containers []*shimmer.Container
	Page       *shimmer.Async
}

// Build turns the scene into a node tree. Loaders start immediately and are
// cancelled with ctx.
func (s Scene) Build(ctx context.Context, logger *zap.Logger) (*Built, error) {
	easing, err := easingByName(s.Easing)
	if err != nil {
		return nil, err
	}
	colors := make([]lipgloss.Color, len(s.Shine.Colors))
	for i, c := range s.Shine.Colors {
		colors[i] = lipgloss.Color(c)
	}

	built := &Built{}
	pageOpts := []shimmer.Option{shimmer.WithPaddingTRBL(1, 0, 0, 0)}
	if s.Background != "" {
		pageOpts = append(pageOpts, shimmer.WithBackground(lipgloss.Color(s.Background)))
	}
	page := shimmer.NewColumn(pageOpts...)

	for i, card := range s.Cards {
		shine, err := shimmer.Gradient(s.Shine.Width, colors...)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		style, err := card.options()
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		opts := []shimmer.ContainerOption{
			shimmer.WithDuration(s.Duration),
			shimmer.WithDelay(s.Delay),
			shimmer.WithEasing(easing),
			shimmer.WithReplace(s.Replace),
			shimmer.WithStyle(style...),
			shimmer.WithOnError(func(err error) {
				logger.Warn("card failed to load", zap.Int("card", i), zap.Error(err))
			}),
		}
		if card.Content != "" || s.Replace {
			opts = append(opts, shimmer.WithLoader(delayed(ctx, s.ResolveAfter, card.Content)))
		}

		c, err := shimmer.NewContainer(shine, opts...)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		for j, sc := range card.Shapes {
			shape, err := sc.build()
			if err != nil {
				return nil, fmt.Errorf("card %d shape %d: %w", i, j, err)
			}
			c.AddChild(shape)
		}
		built.Containers = append(built.Containers, c)
		page.AddChild(c)
	}

	built.Root = page
	if s.Page != nil {
		built.Page = shimmer.NewAsync(delayed(ctx, s.Page.After, s.Page.Text)).AddChild(page)
		built.Root = built.Page
	}
	return built, nil
}

// delayed resolves to a text node after d, or is rejected when ctx ends
// first.
func delayed(ctx context.Context, d time.Duration, text string) *shimmer.Promise[shimmer.Node] {
	return shimmer.Go(ctx, func(ctx context.Context) (shimmer.Node, error) {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return shimmer.Text(text, shimmer.WithPaddingTRBL(0, 1, 0, 1)), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
}

func (c CardConfig) options() ([]shimmer.Option, error) {
	width, err := shimmer.ParseValue(c.Width)
	if err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	height, err := shimmer.ParseValue(c.Height)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	opts := []shimmer.Option{shimmer.WithDimensions(width, height)}
	if len(c.Padding) > 0 {
		e, err := shimmer.ParseEdges(c.Padding)
		if err != nil {
			return nil, fmt.Errorf("padding: %w", err)
		}
		opts = append(opts, shimmer.WithPaddingTRBL(e.Top, e.Right, e.Bottom, e.Left))
	}
	if len(c.Margin) > 0 {
		e, err := shimmer.ParseEdges(c.Margin)
		if err != nil {
			return nil, fmt.Errorf("margin: %w", err)
		}
		opts = append(opts, shimmer.WithMarginTRBL(e.Top, e.Right, e.Bottom, e.Left))
	}
	if c.Background != "" {
		opts = append(opts, shimmer.WithBackground(lipgloss.Color(c.Background)))
	}
	return opts, nil
}

func (s ShapeConfig) build() (*shimmer.Shape, error) {
	width, err := shimmer.ParseValue(s.Width)
	if err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	height, err := shimmer.ParseValue(s.Height)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	if height.IsAuto() {
		height = shimmer.Fixed(1)
	}
	opts := []shimmer.Option{shimmer.WithDimensions(width, height)}
	if len(s.Margin) > 0 {
		e, err := shimmer.ParseEdges(s.Margin)
		if err != nil {
			return nil, fmt.Errorf("margin: %w", err)
		}
		opts = append(opts, shimmer.WithMarginTRBL(e.Top, e.Right, e.Bottom, e.Left))
	}
	if s.Top != "" || s.Left != "" {
		top, err := shimmer.ParseValue(s.Top)
		if err != nil {
			return nil, fmt.Errorf("top: %w", err)
		}
		left, err := shimmer.ParseValue(s.Left)
		if err != nil {
			return nil, fmt.Errorf("left: %w", err)
		}
		opts = append(opts, shimmer.WithAbsolute(top, left))
	}
	if s.Color != "" {
		opts = append(opts, shimmer.WithBackground(lipgloss.Color(s.Color)))
	}

	shape := shimmer.NewShape(opts...)
	if s.Text != "" {
		shape.AddChild(shimmer.Text(s.Text))
	}
	return shape, nil
}

// String renders the scene back to YAML.
func (s Scene) String() string {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Sprintf("# invalid scene: %v\n", err)
	}
	return string(data)
}
