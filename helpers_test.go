package widget

import "fmt"

// recordingRenderer logs every renderer call as a short string.
type recordingRenderer struct {
	current Element
	ops     []string
}

func (r *recordingRenderer) Current() Element     { return r.current }
func (r *recordingRenderer) SetCurrent(e Element) { r.current = e }
func (r *recordingRenderer) Next()                {}

func (r *recordingRenderer) StartClipping(a ClipArea) {
	r.ops = append(r.ops, fmt.Sprintf("clip %d,%d %d,%d", a.X1, a.Y1, a.X2, a.Y2))
}

func (r *recordingRenderer) EndClipping(ClipArea) {
	r.ops = append(r.ops, "unclip")
}

func (r *recordingRenderer) DrawRect(rect Rect, color, alpha int) {
	r.ops = append(r.ops, fmt.Sprintf("rect %s %06x a%d", r.name(), color, alpha))
}

func (r *recordingRenderer) DrawIcon(icon Icon, rect Rect, color, alpha int) {
	r.ops = append(r.ops, fmt.Sprintf("icon %s %s %d,%d %dx%d", r.name(), icon.Name, rect.X, rect.Y, rect.W, rect.H))
}

func (r *recordingRenderer) name() string {
	if r.current == nil {
		return "-"
	}
	return r.current.Node().Name()
}

// stateLog records every StateChange fired on a component.
type stateLog struct {
	changes []string
}

func (l *stateLog) watch(e Element) {
	Subscribe(e, func(ev *StateChange) {
		l.changes = append(l.changes, e.Node().Name()+" "+ev.String())
	})
}
