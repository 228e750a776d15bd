package widget

// Renderer is the drawing capability components render through. The current
// component gives painters the element they are drawing for.
type Renderer interface {
	// Current returns the component being drawn, or nil.
	Current() Element
	// SetCurrent sets the component being drawn.
	SetCurrent(e Element)
	// Next marks the end of the current component's background layer.
	Next()
	// StartClipping restricts drawing to the area until the matching EndClipping.
	StartClipping(a ClipArea)
	// EndClipping restores the clipping active before StartClipping(a).
	EndClipping(a ClipArea)
	// DrawRect fills r with a 0xRRGGBB color at the given alpha.
	DrawRect(r Rect, color, alpha int)
	// DrawIcon draws an atlas icon stretched over r, tinted by color.
	DrawIcon(icon Icon, r Rect, color, alpha int)
}

// Painter draws a background or foreground visual for the renderer's
// current component.
type Painter interface {
	Paint(r Renderer)
}

// PainterFunc adapts a function to a Painter.
type PainterFunc func(r Renderer)

// Paint calls f(r).
func (f PainterFunc) Paint(r Renderer) { f(r) }

// ColorPainter fills the current component's bounds with a solid color,
// using the component's effective alpha.
func ColorPainter(color int) Painter {
	return PainterFunc(func(r Renderer) {
		e := r.Current()
		if e == nil {
			return
		}
		n := e.Node()
		r.DrawRect(n.Bounds(), color, n.Alpha())
	})
}

// IconPainter stretches an icon over the current component's bounds, tinted
// with the component's color.
func IconPainter(icon Icon) Painter {
	return PainterFunc(func(r Renderer) {
		e := r.Current()
		if e == nil {
			return
		}
		n := e.Node()
		r.DrawIcon(icon, n.Bounds(), n.Color(), n.Alpha())
	})
}

// DrawListRenderer records drawing into a DrawList.
type DrawListRenderer struct {
	dl      *DrawList
	atlas   uint32
	current Element
	layers  int
}

// NewDrawListRenderer creates a renderer writing into dl. Icons are drawn
// from the texture atlasTex.
func NewDrawListRenderer(dl *DrawList, atlasTex uint32) *DrawListRenderer {
	return &DrawListRenderer{dl: dl, atlas: atlasTex}
}

// DrawList returns the list being recorded.
func (r *DrawListRenderer) DrawList() *DrawList { return r.dl }

// Layers returns how many background layers were closed with Next.
func (r *DrawListRenderer) Layers() int { return r.layers }

func (r *DrawListRenderer) Current() Element { return r.current }

func (r *DrawListRenderer) SetCurrent(e Element) { r.current = e }

func (r *DrawListRenderer) Next() { r.layers++ }

func (r *DrawListRenderer) StartClipping(a ClipArea) { r.dl.PushClip(a) }

func (r *DrawListRenderer) EndClipping(ClipArea) { r.dl.PopClip() }

func (r *DrawListRenderer) DrawRect(rect Rect, color, alpha int) {
	r.dl.SetTexture(0)
	r.dl.AddRect(rect, PackRGBA(color, alpha))
}

func (r *DrawListRenderer) DrawIcon(icon Icon, rect Rect, color, alpha int) {
	r.dl.SetTexture(r.atlas)
	r.dl.AddImage(rect, icon, PackRGBA(color, alpha))
}
