package demo

import (
	"os"

	"github.com/go-theft-auto/widget"
)

// Layout is the component tree built from a Config.
type Layout struct {
	Windows []*widget.Container
	Groups  []*widget.TabGroup
}

// Window returns the window with the given name, or nil.
func (l *Layout) Window(name string) *widget.Container {
	for _, w := range l.Windows {
		if w.Name() == name {
			return w
		}
	}
	return nil
}

// Default returns the built-in layout: an inventory window with tabs on top
// and a smaller panel with tabs on its left edge.
func Default() *Config {
	return &Config{
		Display: Display{Width: 800, Height: 600},
		Theme:   "default",
		Windows: []Window{
			{
				Name: "inventory", X: 120, Y: 120, Width: 320, Height: 220, Padding: 4,
				Groups: []Group{{
					Edge: "top", Style: "window", Displace: true, Active: "items",
					Tabs: []TabSpec{
						{Name: "items", Width: 28, Height: 24, Tooltip: "Items"},
						{Name: "tools", Width: 28, Height: 24, Tooltip: "Tools"},
						{Name: "blocks", Width: 28, Height: 24, Tooltip: "Blocks"},
						{Name: "locked", Width: 28, Height: 24, Tooltip: "Locked", Disabled: true},
					},
				}},
			},
			{
				Name: "stats", X: 500, Y: 140, Width: 200, Height: 160, Padding: 4,
				Groups: []Group{{
					Edge: "left", Style: "panel", Spacing: 2, Active: "health",
					Tabs: []TabSpec{
						{Name: "health", Width: 24, Height: 24, Tooltip: "Health"},
						{Name: "armor", Width: 24, Height: 24, Tooltip: "Armor"},
					},
				}},
			},
		},
	}
}

// ScreenOptions returns the screen options the config selects.
func (c *Config) ScreenOptions() ([]widget.ScreenOption, error) {
	theme, ok := widget.ThemeByName(c.Theme)
	if !ok {
		return nil, widget.NewConfigError("theme", "unknown theme "+c.Theme, nil)
	}
	icons, err := c.LoadIcons()
	if err != nil {
		return nil, err
	}
	return []widget.ScreenOption{
		widget.WithTheme(theme),
		widget.WithIcons(icons),
		widget.WithDisplaySize(c.Display.Width, c.Display.Height),
	}, nil
}

// LoadIcons loads the configured icon atlas, or returns the built-in one.
func (c *Config) LoadIcons() (*widget.IconSet, error) {
	if c.Icons == "" {
		return widget.DefaultIcons(), nil
	}
	f, err := os.Open(c.Icons)
	if err != nil {
		return nil, widget.NewConfigError("icons", "open atlas", err)
	}
	defer f.Close()
	return widget.LoadIcons(f)
}

// Build adds the configured windows and tab groups to the screen.
func Build(screen *widget.Screen, c *Config) (*Layout, error) {
	theme := screen.Theme()
	layout := &Layout{}

	for _, wc := range c.Windows {
		win := widget.NewContainer(
			widget.WithName(wc.Name),
			widget.WithPosition(widget.Pos(wc.X, wc.Y)),
			widget.WithSize(widget.Sz(wc.Width, wc.Height)),
			widget.WithPadding(widget.Padding{Top: wc.Padding, Right: wc.Padding, Bottom: wc.Padding, Left: wc.Padding}),
			widget.WithBackground(widget.ContainerPainter(theme)),
		)
		screen.Add(win)
		layout.Windows = append(layout.Windows, win)

		for _, gc := range wc.Groups {
			g, err := buildGroup(gc, theme)
			if err != nil {
				return nil, err
			}
			g.AttachTo(win, gc.Displace)
			layout.Groups = append(layout.Groups, g)
		}
	}
	return layout, nil
}

func buildGroup(gc Group, theme widget.Theme) (*widget.TabGroup, error) {
	edge, err := widget.ParseEdge(gc.Edge)
	if err != nil {
		return nil, widget.NewConfigError("edge", err.Error(), err)
	}
	style := widget.StyleWindow
	if gc.Style != "" {
		if style, err = widget.ParseTabStyle(gc.Style); err != nil {
			return nil, widget.NewConfigError("style", err.Error(), err)
		}
	}

	g := widget.NewTabGroup(edge, style)
	if gc.Offset != nil {
		g.SetOffset(*gc.Offset)
	}
	g.SetSpacing(gc.Spacing)

	for _, tc := range gc.Tabs {
		tab := widget.NewTab(tc.Name, tc.Width, tc.Height, widget.WithTooltip(tc.Tooltip))
		page := widget.NewContainer(
			widget.WithName(tc.Name+"-page"),
			widget.WithBackground(widget.ColorPainter(theme.ContainerColor)),
		)
		g.AddTab(tab, page)
		if tc.Disabled {
			tab.SetEnabled(false)
		}
	}
	if gc.Active != "" {
		g.SetActiveTabByName(gc.Active)
	}
	return g, nil
}
