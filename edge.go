package widget

import (
	"fmt"
	"strings"
)

// Edge is the side of a container a tab group docks to.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Horizontal reports whether tabs docked on this edge are laid out left to right.
func (e Edge) Horizontal() bool {
	return e == EdgeTop || e == EdgeBottom
}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// ParseEdge converts "top", "bottom", "left" or "right" to an Edge.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return EdgeTop, nil
	case "bottom":
		return EdgeBottom, nil
	case "left":
		return EdgeLeft, nil
	case "right":
		return EdgeRight, nil
	}
	return EdgeTop, fmt.Errorf("unknown edge %q", s)
}

// TabStyle selects the visual family of a tab group's icons.
type TabStyle int

const (
	// StyleWindow tabs look like the raised border of a window.
	StyleWindow TabStyle = iota
	// StylePanel tabs look like the flat border of an inset panel.
	StylePanel
)

func (s TabStyle) String() string {
	switch s {
	case StyleWindow:
		return "window"
	case StylePanel:
		return "panel"
	}
	return fmt.Sprintf("TabStyle(%d)", int(s))
}

// ParseTabStyle converts "window" or "panel" to a TabStyle.
func ParseTabStyle(s string) (TabStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "window":
		return StyleWindow, nil
	case "panel":
		return StylePanel, nil
	}
	return StyleWindow, fmt.Errorf("unknown tab style %q", s)
}
