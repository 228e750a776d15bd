package main

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/widget"
	"github.com/go-theft-auto/widget/backend/opengl"
	"github.com/go-theft-auto/widget/internal/demo"
)

const windowTitle = "tabdemo"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type runOptions struct {
	texture string
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window with the layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runWindow(cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.texture, "texture", "", "PNG for the icon atlas (default: generated)")

	return cmd
}

func runWindow(cfg *demo.Config, opts *runOptions) error {
	screenOpts, err := cfg.ScreenOptions()
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Display.Width, cfg.Display.Height, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	icons, err := cfg.LoadIcons()
	if err != nil {
		return err
	}
	atlas := opengl.DefaultAtlasImage(icons)
	if opts.texture != "" {
		if atlas, err = opengl.LoadAtlasImage(opts.texture, icons); err != nil {
			return err
		}
	}

	renderer, err := opengl.NewRenderer(cfg.Display.Width, cfg.Display.Height, atlas)
	if err != nil {
		return fmt.Errorf("widget renderer: %w", err)
	}
	defer renderer.Delete()

	screen := widget.NewScreen(renderer, screenOpts...)
	if _, err := demo.Build(screen, cfg); err != nil {
		return err
	}

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	title := windowTitle

	for !window.ShouldClose() {
		inputAdapter.Update()
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		screen.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		screen.Update(inputAdapter.Input())
		want := windowTitle
		if tip := screen.Tooltip(); tip != "" {
			want += " - " + tip
		}
		if want != title {
			title = want
			window.SetTitle(title)
		}

		if err := screen.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
