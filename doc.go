/*
Package widget provides a retained-mode component tree with tab groups that
dock onto the edges of containers.

# Overview

Components are long-lived values arranged in a tree. Their position and size
are expressions evaluated on every read, so geometry that depends on other
components never goes stale: moving a window moves every tab docked to it in
the same frame.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(800, 600, atlasPixels)
	screen := widget.NewScreen(renderer, widget.WithDisplaySize(800, 600))

	window := widget.NewContainer(
	    widget.WithPosition(widget.Pos(100, 100)),
	    widget.WithSize(widget.Sz(240, 160)),
	)
	screen.Add(window)

	group := widget.NewTabGroup(widget.EdgeTop, widget.StyleWindow)
	group.AddTab(widget.NewTab("items", 24, 20), widget.NewContainer())
	group.AddTab(widget.NewTab("stats", 24, 20), widget.NewContainer())
	group.SetActiveTabByName("items")
	group.AttachTo(window, true)

	// Game loop
	for !win.ShouldClose() {
	    screen.Update(input)
	    screen.Render()
	    win.SwapBuffers()
	}

# Geometry

A Position has X and Y, a Size has Width and Height. The built-in
expressions are:

	Pos(x, y), Sz(w, h)         constants
	Inherited(c)                the parent's inner size
	TopLeftOf(c)                the parent's padding origin
	AboveOf, BelowOf,
	LeftOfRef, RightOfRef       next to a sibling, with an offset
	ScreenPosition(c)           the absolute position of c
	ShiftedPosition, ShrunkSize another expression adjusted by a size

References that are missing (no parent, nil sibling) evaluate to 0.
Expressions must not form cycles.

# States and Events

Every component carries visible, enabled, hovered and focused flags. Each
transition fires a StateChange on the component's EventBus first; a handler
may Cancel it to keep the old state:

	widget.Subscribe(button, func(e *widget.StateChange) {
	    if e.Kind == widget.StateFocused && e.New {
	        e.Cancel()
	    }
	})

Hover and focus are exclusive per screen. When a component claims either,
the previous holder loses it through a forced StateChange that cannot be
cancelled.

# Tab Groups

A TabGroup lays its tabs out along its edge, starting at Offset and
separated by Spacing. AttachTo places the group against a container with a
2-pixel overlap and moves each tab's content container into it. Only the
active tab's content is visible; switching tabs fires a cancellable
TabChange on the group.

With displacement, the container's position and size become wrappers of
their previous expressions that make room for the group:

	Edge    position      size
	top     y + group.h   h - group.h
	bottom  unchanged     h - group.h
	left    x + group.w   w - group.w
	right   unchanged     w - group.w

# Input

Screen.Update reads an Input once per frame. Handlers are optional
interfaces on elements (ClickHandler, KeyHandler, ...). Events start at the
component under the pointer, or the focused one for keys, and bubble to the
parents until one handles them. Control components get scroll and key
events before the component they belong to and keep them.

	PgUp    previous tab (focused tab or group)
	PgDn    next tab

# Debugging

SetVerbose(true) logs vetoed transitions, hover and focus evictions, and tab
group activity through zerolog. Component.String prints the evaluated
geometry of a component.
*/
package widget
