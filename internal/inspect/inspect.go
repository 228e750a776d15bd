// Package inspect prints a component tree with its evaluated geometry.
package inspect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/go-theft-auto/widget"
)

// Options controls the dump.
type Options struct {
	// Hidden includes invisible components and their subtrees.
	Hidden bool
	// Plain disables colors.
	Plain bool
}

var (
	nameStyle  = lipgloss.NewStyle().Bold(true)
	typeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	flagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	enumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginRight(1)
	plainStyle = lipgloss.NewStyle()
)

type parent interface {
	Children() []widget.Element
}

// Tree renders the subtree rooted at e.
func Tree(e widget.Element, opts Options) string {
	t := build(e, opts)
	if t == nil {
		return ""
	}
	es := enumStyle
	if opts.Plain {
		es = plainStyle.MarginRight(1)
	}
	return t.Enumerator(tree.RoundedEnumerator).EnumeratorStyle(es).String()
}

func build(e widget.Element, opts Options) *tree.Tree {
	n := e.Node()
	if !n.IsVisible() && !opts.Hidden {
		return nil
	}
	t := tree.Root(Label(e, opts))

	if p, ok := e.(parent); ok {
		for _, child := range p.Children() {
			if sub := build(child, opts); sub != nil {
				t.Child(sub)
			}
		}
	}
	for _, ctl := range n.Controls() {
		if sub := build(ctl, opts); sub != nil {
			t.Child(sub)
		}
	}
	return t
}

// Label describes one component: name, type, screen bounds and state flags.
func Label(e widget.Element, opts Options) string {
	n := e.Node()
	name := n.Name()
	if name == "" {
		name = "-"
	}
	typ := strings.TrimPrefix(fmt.Sprintf("%T", e), "*widget.")
	b := n.Bounds()
	geom := fmt.Sprintf("%d,%d %dx%d", b.X, b.Y, b.W, b.H)

	var flags []string
	if !n.IsVisible() {
		flags = append(flags, "hidden")
	}
	if n.IsDisabled() {
		flags = append(flags, "disabled")
	}
	if n.IsHovered() {
		flags = append(flags, "hovered")
	}
	if n.IsFocused() {
		flags = append(flags, "focused")
	}
	if n.IsControl() {
		flags = append(flags, "control")
	}
	if t, ok := e.(*widget.Tab); ok && t.IsActive() {
		flags = append(flags, "active")
	}
	if g, ok := e.(*widget.TabGroup); ok {
		flags = append(flags, "edge="+g.Edge().String(), "style="+g.Style().String())
	}

	ns, ts, fs := nameStyle, typeStyle, flagStyle
	if opts.Plain {
		ns, ts, fs = plainStyle, plainStyle, plainStyle
	}
	s := ns.Render(name) + " " + ts.Render("("+typ+")") + " " + geom
	if len(flags) > 0 {
		s += " " + fs.Render("["+strings.Join(flags, " ")+"]")
	}
	return s
}
