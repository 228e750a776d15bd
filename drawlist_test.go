package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawList_RectsShareCommand(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(Rect{X: 0, Y: 0, W: 10, H: 10}, PackRGBA(0xFF0000, 255))
	dl.AddRect(Rect{X: 10, Y: 0, W: 10, H: 10}, PackRGBA(0x00FF00, 255))
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(12), dl.CmdBuffer[0].ElemCount)
	assert.Len(t, dl.VtxBuffer, 8)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}, dl.IdxBuffer)
}

func TestDrawList_TransparentAndEmptySkipped(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(Rect{W: 10, H: 10}, PackRGBA(0xFFFFFF, 0))
	dl.AddRect(Rect{W: 0, H: 10}, PackRGBA(0xFFFFFF, 255))
	dl.AddImage(Rect{W: 10, H: 10}, Icon{}, 0)
	dl.Finalize()

	assert.Empty(t, dl.VtxBuffer)
	assert.Empty(t, dl.CmdBuffer)
}

func TestDrawList_TextureAndClipSplit(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	white := PackRGBA(0xFFFFFF, 255)
	dl.AddRect(Rect{W: 4, H: 4}, white)

	dl.SetTexture(3)
	dl.AddImage(Rect{W: 4, H: 4}, Icon{U0: 0.25, V0: 0.5, U1: 0.75, V1: 1}, white)
	dl.SetTexture(3)

	dl.PushClip(ClipRect(Rect{X: 1, Y: 2, W: 3, H: 4}))
	assert.Equal(t, 1, dl.ClipDepth())
	dl.AddImage(Rect{W: 4, H: 4}, Icon{}, white)
	dl.PopClip()
	dl.PopClip()
	assert.Equal(t, 0, dl.ClipDepth())
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 3)
	assert.Equal(t, uint32(0), dl.CmdBuffer[0].TextureID)
	assert.Equal(t, uint32(3), dl.CmdBuffer[1].TextureID)
	assert.Equal(t, uint32(3), dl.CmdBuffer[2].TextureID)
	assert.Equal(t, [4]float32{1, 2, 4, 6}, dl.CmdBuffer[2].ClipRect)
	assert.Equal(t, uint32(8), dl.CmdBuffer[2].VertexOffset)

	v := dl.VtxBuffer[4:8]
	assert.Equal(t, [2]float32{0.25, 0.5}, v[0].TexCoord)
	assert.Equal(t, [2]float32{0.75, 1}, v[2].TexCoord)
}

func TestDrawList_ClearResets(t *testing.T) {
	dl := AcquireDrawList()
	dl.SetTexture(5)
	dl.PushClip(ClipRect(Rect{W: 1, H: 1}))
	dl.AddRect(Rect{W: 1, H: 1}, PackRGBA(0, 255))
	ReleaseDrawList(dl)

	dl = AcquireDrawList()
	defer ReleaseDrawList(dl)
	assert.Empty(t, dl.CmdBuffer)
	assert.Empty(t, dl.VtxBuffer)
	assert.Equal(t, 0, dl.ClipDepth())
}

func TestDrawListRenderer_DrawsThroughList(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	r := NewDrawListRenderer(dl, 9)

	c := NewComponent(WithPosition(Pos(2, 3)), WithSize(Sz(4, 5)))
	r.SetCurrent(c)
	assert.Equal(t, Element(c), r.Current())

	r.DrawRect(c.Bounds(), 0x102030, 128)
	r.DrawIcon(DefaultIcons().Full(), c.Bounds(), ColorWhite, 255)
	r.Next()
	dl.Finalize()

	assert.Same(t, dl, r.DrawList())
	assert.Equal(t, 1, r.Layers())
	require.Len(t, dl.CmdBuffer, 2)
	assert.Equal(t, uint32(9), dl.CmdBuffer[1].TextureID)
	assert.Equal(t, PackRGBA(0x102030, 128), dl.VtxBuffer[0].Color)
	assert.Equal(t, [2]float32{6, 8}, dl.VtxBuffer[2].Pos)
}
