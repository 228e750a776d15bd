// Command gen renders a window with a docked tab group for every edge and
// style, captures framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/widget"
	"github.com/go-theft-auto/widget/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name     string // filename without extension
	width    int    // viewport width
	height   int    // viewport height
	edge     widget.Edge
	style    widget.TabStyle
	displace bool
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600, nil)
	if err != nil {
		return fmt.Errorf("widget renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection; the hidden window stays at
	// 800x600, larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh screen per screenshot to avoid state leaking between captures.
	screen := widget.NewScreen(renderer, widget.WithDisplaySize(s.width, s.height))
	buildScene(screen, s)

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := screen.Render(); err != nil {
		return err
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScene places a window in the middle of the viewport with three tabs
// docked to the screenshot's edge, the second one active.
func buildScene(screen *widget.Screen, s screenshot) {
	theme := screen.Theme()
	win := widget.NewContainer(
		widget.WithName("window"),
		widget.WithPosition(widget.Pos(40, 40)),
		widget.WithSize(widget.Sz(s.width-80, s.height-80)),
		widget.WithBackground(widget.ContainerPainter(theme)),
	)
	screen.Add(win)

	group := widget.NewTabGroup(s.edge, s.style).SetSpacing(2)
	for _, name := range []string{"first", "second", "third"} {
		group.AddTab(widget.NewTab(name, 28, 24), widget.NewContainer(widget.WithName(name+"-page")))
	}
	group.SetActiveTabByName("second")
	group.AttachTo(win, s.displace)
}

// buildScreenshots returns every edge and style combination, displaced.
func buildScreenshots() []screenshot {
	var shots []screenshot
	for _, style := range []widget.TabStyle{widget.StyleWindow, widget.StylePanel} {
		for _, edge := range []widget.Edge{widget.EdgeTop, widget.EdgeBottom, widget.EdgeLeft, widget.EdgeRight} {
			shots = append(shots, screenshot{
				name:     fmt.Sprintf("tabs_%s_%s", style, edge),
				width:    320,
				height:   240,
				edge:     edge,
				style:    style,
				displace: true,
			})
		}
	}
	shots = append(shots, screenshot{
		name: "tabs_overlay", width: 320, height: 240,
		edge: widget.EdgeTop, style: widget.StyleWindow,
	})
	return shots
}
