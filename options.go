package widget

// Option configures a component at construction time.
//
// Options receive the outer element so that container-only options can
// reach their target:
//
//	panel := widget.NewContainer(
//	    widget.WithName("inventory"),
//	    widget.WithPosition(widget.Pos(10, 10)),
//	    widget.WithSize(widget.Sz(176, 166)),
//	    widget.WithPadding(widget.Padding{Top: 4, Right: 4, Bottom: 4, Left: 4}),
//	)
type Option func(Element)

// WithName sets the component name.
func WithName(name string) Option {
	return func(e Element) { e.Node().SetName(name) }
}

// WithPosition sets the position expression.
func WithPosition(p Position) Option {
	return func(e Element) { e.Node().SetPosition(p) }
}

// WithSize sets the size expression.
func WithSize(s Size) Option {
	return func(e Element) { e.Node().SetSize(s) }
}

// WithZIndex sets the z-index.
func WithZIndex(z int) Option {
	return func(e Element) { e.Node().SetZIndex(z) }
}

// WithColor sets the 0xRRGGBB color.
func WithColor(color int) Option {
	return func(e Element) { e.Node().SetColor(color) }
}

// WithAlpha sets the local alpha.
func WithAlpha(alpha int) Option {
	return func(e Element) { e.Node().SetAlpha(alpha) }
}

// WithTooltip sets the tooltip text.
func WithTooltip(text string) Option {
	return func(e Element) { e.Node().SetTooltip(text) }
}

// WithBackground sets the background painter.
func WithBackground(p Painter) Option {
	return func(e Element) { e.Node().SetBackground(p) }
}

// WithPadding sets the padding of elements that support it. It is ignored
// by plain components.
func WithPadding(p Padding) Option {
	return func(e Element) {
		if ps, ok := e.(interface{ SetPadding(Padding) }); ok {
			ps.SetPadding(p)
		}
	}
}

// WithClipContent sets whether a container clips its children.
func WithClipContent(clip bool) Option {
	return func(e Element) {
		if cs, ok := e.(interface{ SetClipContent(bool) }); ok {
			cs.SetClipContent(clip)
		}
	}
}
