package widget

import "sync"

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are split on texture and clip changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // Texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates the quads of one frame, split into commands by
// texture and clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // Vertex offset of the current command
	idxCmdOffset uint32 // Index offset of the current command
}

// Clear resets the DrawList for a new frame, keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = clipCorners(NoClip())
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

func clipCorners(a ClipArea) [4]float32 {
	return [4]float32{float32(a.X1), float32(a.Y1), float32(a.X2), float32(a.Y2)}
}

// PushClip restricts subsequent primitives to the area.
func (dl *DrawList) PushClip(a ClipArea) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = clipCorners(a)
	dl.Split()
}

// PopClip restores the previous clip area.
func (dl *DrawList) PopClip() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.Split()
}

// ClipDepth returns the number of pushed clip areas.
func (dl *DrawList) ClipDepth() int {
	return len(dl.clipStack)
}

// SetTexture sets the texture for subsequent primitives, starting a new
// command when it changes.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID && len(dl.CmdBuffer) > 0 {
		return
	}
	dl.textureID = textureID
	dl.Split()
}

// Split finalizes the current command and starts a new one with the
// current texture and clip.
func (dl *DrawList) Split() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	if len(dl.CmdBuffer) == 0 {
		dl.Split()
	}
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle. Fully transparent colors are skipped.
func (dl *DrawList) AddRect(r Rect, color uint32) {
	if color&0xFF000000 == 0 || r.Empty() {
		return
	}
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	dl.addQuad(
		Vertex{Pos: [2]float32{x0, y0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, Color: color},
	)
}

// AddImage draws a textured rectangle using the icon's texture coordinates.
// The texture must have been selected with SetTexture.
func (dl *DrawList) AddImage(r Rect, icon Icon, color uint32) {
	if color&0xFF000000 == 0 || r.Empty() {
		return
	}
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	dl.addQuad(
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{icon.U0, icon.V0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{icon.U1, icon.V0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{icon.U1, icon.V1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{icon.U0, icon.V1}, Color: color},
	)
}

// Finalize closes the last command and drops empty ones.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
