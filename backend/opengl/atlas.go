package opengl

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"github.com/go-theft-auto/widget"
)

// Atlas colors. The shader multiplies them by the tint of the tab state.
var (
	atlasFill      = color.RGBA{0xC6, 0xC6, 0xC6, 0xFF}
	atlasHighlight = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	atlasShadow    = color.RGBA{0x55, 0x55, 0x55, 0xFF}
	atlasPanelFill = color.RGBA{0x8B, 0x8B, 0x8B, 0xFF}
	atlasOutline   = color.RGBA{0x00, 0x00, 0x00, 0xFF}
)

// LoadAtlasImage decodes a PNG icon atlas. Its size must match the icon set.
func LoadAtlasImage(path string, icons *widget.IconSet) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, widget.NewAtlasError("", "open texture", err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, widget.NewAtlasError("", "decode texture", err)
	}
	b := src.Bounds()
	if b.Dx() != icons.Width || b.Dy() != icons.Height {
		return nil, widget.NewAtlasError("", fmt.Sprintf("texture is %dx%d, atlas declares %dx%d",
			b.Dx(), b.Dy(), icons.Width, icons.Height), nil)
	}

	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return img, nil
}

// DefaultAtlasImage paints a texture for an icon set without one. Each tab
// icon is a bordered tile left open on the side that faces its container.
func DefaultAtlasImage(icons *widget.IconSet) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, icons.Width, icons.Height))
	for _, name := range icons.Names() {
		icon, _ := icons.Get(name)
		r := iconPixels(icon, icons.Width, icons.Height)
		style, open, hasOpen := parseIconName(name)
		paintTile(img, r, style, open, hasOpen)
	}
	return img
}

func iconPixels(icon widget.Icon, w, h int) image.Rectangle {
	return image.Rect(
		int(icon.U0*float32(w)+0.5), int(icon.V0*float32(h)+0.5),
		int(icon.U1*float32(w)+0.5), int(icon.V1*float32(h)+0.5),
	)
}

// parseIconName splits "<style>_<edge>" and returns the side of the tile
// facing the container: the opposite of the docking edge.
func parseIconName(name string) (widget.TabStyle, widget.Edge, bool) {
	s, e, ok := strings.Cut(name, "_")
	if !ok {
		return widget.StyleWindow, widget.EdgeTop, false
	}
	style, err := widget.ParseTabStyle(s)
	if err != nil {
		return widget.StyleWindow, widget.EdgeTop, false
	}
	edge, err := widget.ParseEdge(e)
	if err != nil {
		return style, widget.EdgeTop, false
	}
	return style, opposite(edge), true
}

func opposite(e widget.Edge) widget.Edge {
	switch e {
	case widget.EdgeTop:
		return widget.EdgeBottom
	case widget.EdgeBottom:
		return widget.EdgeTop
	case widget.EdgeLeft:
		return widget.EdgeRight
	default:
		return widget.EdgeLeft
	}
}

func paintTile(img *image.RGBA, r image.Rectangle, style widget.TabStyle, open widget.Edge, hasOpen bool) {
	fill, light, dark := atlasFill, atlasHighlight, atlasShadow
	if style == widget.StylePanel {
		fill, light, dark = atlasPanelFill, atlasShadow, atlasShadow
	}
	draw.Draw(img, r, image.NewUniform(fill), image.Point{}, draw.Src)

	side := func(e widget.Edge, c color.Color) {
		if hasOpen && e == open {
			return
		}
		var line image.Rectangle
		switch e {
		case widget.EdgeTop:
			line = image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1)
		case widget.EdgeBottom:
			line = image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y)
		case widget.EdgeLeft:
			line = image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y)
		case widget.EdgeRight:
			line = image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y)
		}
		draw.Draw(img, line, image.NewUniform(c), image.Point{}, draw.Src)
		// second, inner line gives the bevel
		inner := line.Add(insetDir(e)).Intersect(r.Inset(1))
		draw.Draw(img, inner, image.NewUniform(bevel(e, light, dark)), image.Point{}, draw.Src)
	}
	side(widget.EdgeTop, atlasOutline)
	side(widget.EdgeBottom, atlasOutline)
	side(widget.EdgeLeft, atlasOutline)
	side(widget.EdgeRight, atlasOutline)
}

func insetDir(e widget.Edge) image.Point {
	switch e {
	case widget.EdgeTop:
		return image.Pt(0, 1)
	case widget.EdgeBottom:
		return image.Pt(0, -1)
	case widget.EdgeLeft:
		return image.Pt(1, 0)
	default:
		return image.Pt(-1, 0)
	}
}

func bevel(e widget.Edge, light, dark color.Color) color.Color {
	if e == widget.EdgeTop || e == widget.EdgeLeft {
		return light
	}
	return dark
}
