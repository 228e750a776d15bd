package widget

// Theme defines the colors the built-in painters use. Colors are 0xRRGGBB;
// alpha always comes from the component being drawn.
type Theme struct {
	// Tab tints, applied to the group's icon.
	TabColor         int
	TabActiveColor   int
	TabHoveredColor  int
	TabDisabledColor int

	// Container colors
	ContainerColor   int
	ContainerBorder  int
	FocusColor       int
	FocusBorderWidth int
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	return Theme{
		TabColor:         ColorLightGray,
		TabActiveColor:   ColorWhite,
		TabHoveredColor:  0xE0E0FF,
		TabDisabledColor: ColorGray,

		ContainerColor:   ColorLightGray,
		ContainerBorder:  ColorDarkGray,
		FocusColor:       0x00C8FF,
		FocusBorderWidth: 1,
	}
}

// DarkTheme returns a dark variant with a cyan accent.
func DarkTheme() Theme {
	return Theme{
		TabColor:         0x505050,
		TabActiveColor:   0x8C8C8C,
		TabHoveredColor:  0x3C5064,
		TabDisabledColor: 0x1E1E1E,

		ContainerColor:   0x141414,
		ContainerBorder:  0x646464,
		FocusColor:       0x0096C8,
		FocusBorderWidth: 1,
	}
}

// ThemeByName returns "default" or "dark". Unknown names report false.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	}
	return Theme{}, false
}

// ContainerPainter draws a themed panel: a filled body with a border.
// Focused components get the focus border instead.
func ContainerPainter(theme Theme) Painter {
	return PainterFunc(func(r Renderer) {
		e := r.Current()
		if e == nil {
			return
		}
		n := e.Node()
		b := n.Bounds()
		r.DrawRect(b, theme.ContainerColor, n.Alpha())
		border := theme.ContainerBorder
		if n.IsFocused() {
			border = theme.FocusColor
		}
		w := maxi(1, theme.FocusBorderWidth)
		r.DrawRect(Rect{X: b.X, Y: b.Y, W: b.W, H: w}, border, n.Alpha())
		r.DrawRect(Rect{X: b.X, Y: b.Y + b.H - w, W: b.W, H: w}, border, n.Alpha())
		r.DrawRect(Rect{X: b.X, Y: b.Y + w, W: w, H: b.H - 2*w}, border, n.Alpha())
		r.DrawRect(Rect{X: b.X + b.W - w, Y: b.Y + w, W: w, H: b.H - 2*w}, border, n.Alpha())
	})
}
