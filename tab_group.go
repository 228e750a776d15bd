package widget

// TabGroup manages tabs docked to one edge of a container. Each tab controls
// a content container; only the active tab's content is visible.
//
// Usage:
//
//	group := widget.NewTabGroup(widget.EdgeTop, widget.StyleWindow)
//	group.AddTab(widget.NewTab("items", 24, 20), itemsPanel)
//	group.AddTab(widget.NewTab("stats", 24, 20), statsPanel)
//	group.SetActiveTab(group.Tab("items"))
//	group.AttachTo(window, true)
//
// Once attached, the group sits against the window's docking edge with a
// 2-pixel overlap, the tab contents fill the window, and (with displace)
// the window shrinks to make room for the tabs.
type TabGroup struct {
	Container

	// tabs in insertion order; each tab links its content container.
	tabs []*Tab

	// active is the shown tab, or the pending one before attachment.
	active *Tab

	edge  Edge
	style TabStyle

	// attached is the foreign container the group docks to.
	attached *Container

	// original geometry of attached, kept while it is displaced.
	displaced    bool
	origPosition Position
	origSize     Size

	offset  int
	spacing int
}

const (
	// DefaultTabOffset is the gap before the first tab.
	DefaultTabOffset = 3
	// attachOverlap is how far the group overlaps the attached container.
	attachOverlap = 2
)

// NewTabGroup creates a detached tab group docking on edge.
func NewTabGroup(edge Edge, style TabStyle, opts ...Option) *TabGroup {
	g := &TabGroup{
		edge:   edge,
		style:  style,
		offset: DefaultTabOffset,
	}
	g.InitContainer(g, opts...)
	g.clipContent = false
	g.SetSize(tabGroupSize{g})
	return g
}

// Edge returns the docking edge.
func (g *TabGroup) Edge() Edge { return g.edge }

// Style returns the visual style.
func (g *TabGroup) Style() TabStyle { return g.style }

// Icon returns the tab icon for this group's style and edge, looked up in
// the screen's icon set when the group is on a screen.
func (g *TabGroup) Icon() Icon {
	icons := DefaultIcons()
	if g.screen != nil {
		icons = g.screen.Icons()
	}
	return icons.Lookup(g.style, g.edge)
}

// AttachedContainer returns the container the group is attached to, or nil.
func (g *TabGroup) AttachedContainer() *Container { return g.attached }

// Offset returns the gap before the first tab.
func (g *TabGroup) Offset() int { return g.offset }

// SetOffset sets the gap before the first tab and relays out the tabs.
func (g *TabGroup) SetOffset(offset int) *TabGroup {
	g.offset = offset
	g.layoutTabs()
	return g
}

// Spacing returns the gap between tabs.
func (g *TabGroup) Spacing() int { return g.spacing }

// SetSpacing sets the gap between tabs and relays out the tabs.
func (g *TabGroup) SetSpacing(spacing int) *TabGroup {
	g.spacing = spacing
	g.layoutTabs()
	return g
}

// Tabs returns the tabs in insertion order.
func (g *TabGroup) Tabs() []*Tab {
	out := make([]*Tab, len(g.tabs))
	copy(out, g.tabs)
	return out
}

// TabCount returns the number of tabs.
func (g *TabGroup) TabCount() int { return len(g.tabs) }

// Tab returns the tab with the given name, or nil.
func (g *TabGroup) Tab(name string) *Tab {
	if t, ok := g.Child(name).(*Tab); ok {
		return t
	}
	return nil
}

// ActiveTab returns the active tab. Before attachment this is the tab that
// will be activated by AttachTo.
func (g *TabGroup) ActiveTab() *Tab { return g.active }

// AddTab adds a tab and the container it controls. A tab that is already
// active when added becomes the group's active tab.
func (g *TabGroup) AddTab(tab *Tab, content *Container) *Tab {
	if tab == nil || content == nil {
		panic("widget: AddTab needs a tab and a content container")
	}

	wasActive := tab.IsActive()
	if wasActive && g.attached == nil {
		g.active = tab
	}

	g.Add(tab)
	tab.group = g
	tab.content = content
	// the tab is shown inactive until the activation pass runs
	tab.active = true
	tab.SetActive(false)
	g.tabs = append(g.tabs, tab)

	if g.attached != nil {
		g.setupTabContent(content)
		g.layoutTabs()
		if wasActive {
			g.SetActiveTab(tab)
		}
	} else {
		g.layoutTabs()
	}
	return tab
}

// RemoveTab removes a tab and detaches its content container.
// Returns true if the tab belonged to the group.
func (g *TabGroup) RemoveTab(tab *Tab) bool {
	idx := -1
	for i, t := range g.tabs {
		if t == tab {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	g.tabs = append(g.tabs[:idx], g.tabs[idx+1:]...)
	if g.active == tab {
		g.active = nil
	}
	tab.SetActive(false)
	if g.attached != nil && tab.content != nil {
		g.attached.Remove(tab.content)
	}
	g.Remove(tab)
	tab.group = nil
	tab.content = nil
	g.layoutTabs()
	return true
}

func (g *TabGroup) setupTabContent(content *Container) {
	g.attached.Add(content)
	content.SetPosition(TopLeftOf(content))
	content.SetSize(Inherited(content))
}

// layoutTabs places the tabs along the docking axis in insertion order,
// starting at offset and separated by spacing. The cross axis is pinned to
// the group's origin.
func (g *TabGroup) layoutTabs() {
	var last *Tab
	for _, t := range g.tabs {
		switch {
		case last != nil && g.edge.Horizontal():
			t.SetPosition(RightOfRef(t, last, g.spacing))
		case last != nil:
			t.SetPosition(BelowOf(t, last, g.spacing))
		case g.edge.Horizontal():
			t.SetPosition(Pos(g.offset, 0))
		default:
			t.SetPosition(Pos(0, g.offset))
		}
		last = t
	}
}

// SetActiveTab activates tab and deactivates the current one, firing a
// cancellable TabChange first. Before the group is attached the tab is only
// recorded and activated by AttachTo. A nil tab deactivates the current one.
func (g *TabGroup) SetActiveTab(tab *Tab) {
	if tab != nil && tab.group != g {
		return
	}
	if g.attached == nil {
		g.active = tab
		return
	}
	if g.active == tab {
		return
	}

	e := &TabChange{BaseEvent: NewBaseEvent(g), Group: g, Old: g.active, New: tab}
	if !g.Fire(e) {
		logger.Debug().
			Str("group", describe(g)).
			Str("tab", describe(tabElement(tab))).
			Msg("tab change vetoed")
		return
	}

	if g.active != nil {
		g.active.SetActive(false)
	}
	g.active = tab
	if tab == nil {
		return
	}
	tab.SetActive(true)
	logger.Debug().Str("group", describe(g)).Str("tab", tab.name).Msg("tab activated")
}

// SetActiveTabByName activates the tab with the given name.
// Returns true if such a tab exists.
func (g *TabGroup) SetActiveTabByName(name string) bool {
	t := g.Tab(name)
	if t == nil {
		return false
	}
	g.SetActiveTab(t)
	return true
}

// NextTab activates the tab after the active one (wraps around).
func (g *TabGroup) NextTab() {
	g.cycle(1)
}

// PrevTab activates the tab before the active one (wraps around).
func (g *TabGroup) PrevTab() {
	g.cycle(-1)
}

func (g *TabGroup) cycle(step int) {
	n := len(g.tabs)
	if n == 0 {
		return
	}
	idx := -1
	for i, t := range g.tabs {
		if t == g.active {
			idx = i
			break
		}
	}
	if idx < 0 {
		if step > 0 {
			idx = n - 1
		} else {
			idx = 0
		}
	}
	g.SetActiveTab(g.tabs[((idx+step)%n+n)%n])
}

// OnKeyTyped cycles tabs with PgUp/PgDown while a tab or the group has focus.
func (g *TabGroup) OnKeyTyped(ch rune, key Key) bool {
	switch key {
	case KeyPageUp:
		g.PrevTab()
		return true
	case KeyPageDown:
		g.NextTab()
		return true
	}
	return false
}

// AttachTo docks the group to container. The group positions itself against
// the container's docking edge, moves the tab contents into the container,
// and activates the pending active tab. With displace, the container's
// position and size become live functions of the group's size so the tabs
// and the container never overlap beyond the fixed 2-pixel seam.
//
// A detached group is added to the container's parent so both share the
// coordinate space the relative positions are computed in.
func (g *TabGroup) AttachTo(container *Container, displace bool) *TabGroup {
	if container == nil {
		panic("widget: AttachTo needs a container")
	}
	if g.attached != nil && g.attached != container {
		g.restoreAttached()
	}
	g.attached = container

	if g.parent == nil {
		if p, ok := container.parent.(interface{ Add(...Element) }); ok {
			p.Add(g)
		}
	}

	switch g.edge {
	case EdgeTop:
		g.SetPosition(AboveOf(g, container, -attachOverlap))
	case EdgeBottom:
		g.SetPosition(BelowOf(g, container, -attachOverlap))
	case EdgeLeft:
		g.SetPosition(LeftOfRef(g, container, -attachOverlap))
	case EdgeRight:
		g.SetPosition(RightOfRef(g, container, -attachOverlap))
	}

	for _, t := range g.tabs {
		g.setupTabContent(t.content)
	}
	g.layoutTabs()

	if g.active != nil {
		t := g.active
		g.active = nil
		g.SetActiveTab(t)
	}

	if displace && !g.displaced {
		g.displace()
	}

	logger.Debug().
		Str("group", describe(g)).
		Str("container", describe(container)).
		Stringer("edge", g.edge).
		Bool("displace", displace).
		Msg("tab group attached")
	return g
}

// displace wraps the attached container's current geometry. The wrappers
// hold the original expressions, not the container, so reading them never
// recurses into the wrapped values.
func (g *TabGroup) displace() {
	c := g.attached
	g.origPosition = c.Position()
	g.origSize = c.Size()
	g.displaced = true

	by := tabGroupSize{g}
	c.SetPosition(ShiftedPosition{
		Original: g.origPosition,
		By:       by,
		ShiftX:   g.edge == EdgeLeft,
		ShiftY:   g.edge == EdgeTop,
	})
	c.SetSize(ShrunkSize{
		Original:     g.origSize,
		By:           by,
		ShrinkWidth:  !g.edge.Horizontal(),
		ShrinkHeight: g.edge.Horizontal(),
	})
}

// restoreAttached gives the previously attached container back its own
// geometry and content before docking elsewhere.
func (g *TabGroup) restoreAttached() {
	c := g.attached
	if g.displaced {
		c.SetPosition(g.origPosition)
		c.SetSize(g.origSize)
		g.displaced = false
		g.origPosition, g.origSize = nil, nil
	}
	for _, t := range g.tabs {
		c.Remove(t.content)
	}
}

// tabGroupSize is the bounding box of a group's tabs: along the docking
// axis, offset plus every tab and its trailing spacing; across it, the
// largest tab.
type tabGroupSize struct {
	g *TabGroup
}

func (s tabGroupSize) Width() int {
	w, _ := s.eval()
	return w
}

func (s tabGroupSize) Height() int {
	_, h := s.eval()
	return h
}

func (s tabGroupSize) eval() (int, int) {
	g := s.g
	along, across := g.offset, 0
	for _, t := range g.tabs {
		tw, th := valueW(t.size), valueH(t.size)
		if !g.edge.Horizontal() {
			tw, th = th, tw
		}
		along += tw + g.spacing
		across = maxi(across, th)
	}
	if g.edge.Horizontal() {
		return along, across
	}
	return across, along
}

func (s tabGroupSize) String() string { return FormatSize(s) }

// tabElement converts a possibly nil tab to an Element without producing a
// typed nil interface.
func tabElement(t *Tab) Element {
	if t == nil {
		return nil
	}
	return t
}
