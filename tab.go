package widget

// Tab is the handle of one page of a TabGroup. Activating a tab shows its
// content container; deactivating it hides it.
type Tab struct {
	Component

	active  bool
	content *Container
	group   *TabGroup
}

// NewTab creates a tab handle with a fixed size. Tabs need an explicit size
// because the group's own size is computed from them.
func NewTab(name string, width, height int, opts ...Option) *Tab {
	t := &Tab{}
	base := []Option{WithName(name), WithSize(Sz(width, height)), WithBackground(tabPainter{t})}
	t.Init(t, append(base, opts...)...)
	return t
}

// IsActive reports whether the tab's content is the one shown.
func (t *Tab) IsActive() bool { return t.active }

// SetActive toggles the tab and the visibility of its content container.
// Use TabGroup.SetActiveTab to switch pages; this only changes the tab itself.
func (t *Tab) SetActive(active bool) {
	if t.active == active {
		return
	}
	t.active = active
	if t.content != nil {
		t.content.SetVisible(active)
	}
}

// Content returns the container linked to this tab.
func (t *Tab) Content() *Container { return t.content }

// Group returns the tab group the tab was added to.
func (t *Tab) Group() *TabGroup { return t.group }

// OnClick activates the tab through its group.
func (t *Tab) OnClick() bool {
	if t.group == nil || !t.IsEnabled() {
		return false
	}
	t.group.SetActiveTab(t)
	return true
}

// tabPainter draws a tab with its group's icon, tinted by state.
type tabPainter struct {
	t *Tab
}

func (p tabPainter) Paint(r Renderer) {
	t := p.t
	theme := DefaultTheme()
	if t.screen != nil {
		theme = t.screen.Theme()
	}

	color := theme.TabColor
	switch {
	case t.IsDisabled():
		color = theme.TabDisabledColor
	case t.active:
		color = theme.TabActiveColor
	case t.hovered:
		color = theme.TabHoveredColor
	}

	icon := DefaultIcons().Full()
	if t.group != nil {
		icon = t.group.Icon()
	}
	r.DrawIcon(icon, t.Bounds(), color, t.Alpha())
}
